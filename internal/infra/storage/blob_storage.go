// Package storage implements the profile photo gateway on top of an
// S3-compatible object store, accessed through the gocloud.dev blob portability
// layer so local MinIO and real S3 share one code path.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sakny/config"
	"sakny/internal/domain/lifecycle"
	"sakny/internal/domain/service"
	"sakny/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // Register the s3:// bucket scheme.
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobPhotoStorage implements service.PhotoStorage against a blob bucket.
type blobPhotoStorage struct {
	bucket     *blob.Bucket
	bucketName string
	publicURL  string
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket is not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Check the bucket so a misconfigured store fails the boot
			// instead of the first upload.
			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "photo bucket is not accessible")
			}

			params.Logger.LogAttrs(ctx, slog.LevelInfo, "photo bucket ready",
				slog.String("bucket", cfg.BucketName),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobPhotoStorage{
		bucket:     bucket,
		bucketName: cfg.BucketName,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload writes the object under the given key and returns its public URL.
// The size argument is informational; the whole buffer is written.
func (s *blobPhotoStorage) Upload(ctx context.Context, data []byte, size int64, contentType, objectKey string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, objectKey, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open object writer")
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish object upload")
	}

	return s.FileURL(objectKey), nil
}

// Delete removes the object under the given key.
func (s *blobPhotoStorage) Delete(ctx context.Context, objectKey string) error {
	if err := s.bucket.Delete(ctx, objectKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}

// FileURL returns the public URL for an object key.
func (s *blobPhotoStorage) FileURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucketName, objectKey)
}

// ObjectKeyFromURL extracts the object key from a public URL produced by
// FileURL by locating the bucket path segment.
func (s *blobPhotoStorage) ObjectKeyFromURL(fileURL string) string {
	return ExtractObjectKey(fileURL, s.bucketName)
}

// ExtractObjectKey finds the "/<bucket>/" segment inside the URL and returns
// everything after it. It returns the empty string when the segment is absent.
func ExtractObjectKey(fileURL, bucketName string) string {
	if fileURL == "" || bucketName == "" {
		return ""
	}

	marker := "/" + bucketName + "/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return ""
	}

	return fileURL[idx+len(marker):]
}
