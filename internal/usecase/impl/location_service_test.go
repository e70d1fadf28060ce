package impl

import (
	"context"
	"testing"

	"sakny/internal/domain/entity"
	mockRepo "sakny/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ListGovernorates(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

	ctx := context.Background()
	expected := []*entity.Governorate{
		{ID: 1, NameEn: "Cairo", NameAr: "القاهرة"},
		{ID: 2, NameEn: "Giza", NameAr: "الجيزة"},
	}

	locationRepo.EXPECT().ListGovernorates(ctx).Return(expected, nil)

	governorates, err := service.ListGovernorates(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, governorates)
}

func TestLocationService_ListCities(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

	ctx := context.Background()
	expected := []*entity.City{
		{ID: 10, GovernorateID: 1, NameEn: "Nasr City", NameAr: "مدينة نصر"},
		{ID: 11, GovernorateID: 1, NameEn: "Maadi", NameAr: "المعادي"},
	}

	locationRepo.EXPECT().ListCities(ctx, 1).Return(expected, nil)

	cities, err := service.ListCities(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, expected, cities)
}

func TestLocationService_ListCities_Error(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(LocationServiceParams{LocationRepo: locationRepo})

	ctx := context.Background()

	locationRepo.EXPECT().ListCities(ctx, 99).Return(nil, errors.New("db error"))

	cities, err := service.ListCities(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, cities)
	assert.Contains(t, err.Error(), "failed to list cities")
}
