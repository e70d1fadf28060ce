package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTraits_EmptyList(t *testing.T) {
	raw, err := MarshalTraits(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	raw, err = MarshalTraits([]string{})
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestTraits_RoundTrip(t *testing.T) {
	traits := []string{"quiet", "organized", "social"}

	raw, err := MarshalTraits(traits)
	require.NoError(t, err)

	decoded, err := UnmarshalTraits(raw)
	require.NoError(t, err)
	assert.Equal(t, traits, decoded)
}

func TestUnmarshalTraits_EmptyColumn(t *testing.T) {
	decoded, err := UnmarshalTraits("")
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)

	decoded, err = UnmarshalTraits("[]")
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestUnmarshalTraits_Malformed(t *testing.T) {
	_, err := UnmarshalTraits("{not json")
	assert.Error(t, err)
}
