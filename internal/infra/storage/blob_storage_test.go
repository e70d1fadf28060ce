package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestUpload_WritesWholeBuffer(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	s := &blobPhotoStorage{
		bucket:     bucket,
		bucketName: "sakny-photos",
		publicURL:  "http://localhost:9000",
	}

	ctx := context.Background()
	data := []byte("fake image bytes")

	// A declared size out of step with the buffer must not truncate or panic.
	url, err := s.Upload(ctx, data, int64(len(data))+10, "image/png", "profile-photos/user-1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/sakny-photos/profile-photos/user-1/a.png", url)

	stored, err := bucket.ReadAll(ctx, "profile-photos/user-1/a.png")
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestFileURL(t *testing.T) {
	s := &blobPhotoStorage{
		bucketName: "sakny-photos",
		publicURL:  "http://localhost:9000",
	}

	url := s.FileURL("profile-photos/user-123/abc.jpg")
	assert.Equal(t, "http://localhost:9000/sakny-photos/profile-photos/user-123/abc.jpg", url)
}

func TestObjectKeyFromURL_RoundTrip(t *testing.T) {
	s := &blobPhotoStorage{
		bucketName: "sakny-photos",
		publicURL:  "http://localhost:9000/",
	}

	key := "profile-photos/user-123/abc.jpg"
	assert.Equal(t, key, s.ObjectKeyFromURL(s.FileURL(key)))
}

func TestExtractObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		fileURL  string
		bucket   string
		expected string
	}{
		{
			name:     "plain url",
			fileURL:  "http://host/bucket/a/b.jpg",
			bucket:   "bucket",
			expected: "a/b.jpg",
		},
		{
			name:     "nested key",
			fileURL:  "https://minio.internal:9000/sakny-photos/profile-photos/user-1/x.webp",
			bucket:   "sakny-photos",
			expected: "profile-photos/user-1/x.webp",
		},
		{
			name:     "missing bucket segment",
			fileURL:  "http://host/other/a.jpg",
			bucket:   "bucket",
			expected: "",
		},
		{
			name:     "empty url",
			fileURL:  "",
			bucket:   "bucket",
			expected: "",
		},
		{
			name:     "empty bucket",
			fileURL:  "http://host/bucket/a.jpg",
			bucket:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractObjectKey(tt.fileURL, tt.bucket))
		})
	}
}
