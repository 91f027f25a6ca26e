// Package minio implements attachment storage on a MinIO (or any
// S3-compatible) bucket.
package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/itemvault/internal/model"
)

// objectAPI is the slice of the MinIO client the storage needs.
// Tests substitute it with an in-memory fake.
type objectAPI interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

type clientAdapter struct{ c *minio.Client }

func (a clientAdapter) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return a.c.BucketExists(ctx, bucket)
}

func (a clientAdapter) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	return a.c.MakeBucket(ctx, bucket, opts)
}

func (a clientAdapter) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return a.c.PutObject(ctx, bucket, key, reader, size, opts)
}

func (a clientAdapter) GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return a.c.GetObject(ctx, bucket, key, opts)
}

func (a clientAdapter) RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error {
	return a.c.RemoveObject(ctx, bucket, key, opts)
}

func (a clientAdapter) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return a.c.StatObject(ctx, bucket, key, opts)
}

var _ model.Storage = (*Storage)(nil)

// Storage keeps attachments as objects in a single bucket.
type Storage struct {
	api    objectAPI
	bucket string
}

// NewStorage wraps a connected *minio.Client. The bucket is created on
// first use if it does not exist yet.
func NewStorage(ctx context.Context, client *minio.Client, bucket string) (*Storage, error) {
	return newStorage(ctx, clientAdapter{c: client}, bucket)
}

func newStorage(ctx context.Context, api objectAPI, bucket string) (*Storage, error) {
	s := &Storage{api: api, bucket: bucket}

	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return s, nil
}

// Upload streams the object into the bucket. Size is unknown up front,
// so the client falls back to multipart upload.
func (s *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	_, err := s.api.PutObject(ctx, s.bucket, key, reader, -1, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// Download opens the object for reading. GetObject is lazy, so a
// missing key is detected with a stat first and mapped to
// model.ErrNotFound.
func (s *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if _, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	obj, err := s.api.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return obj, nil
}

// Delete removes the object. Removing a missing key is not an error on
// the MinIO side, which matches the disk backend.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// Exists reports whether the object is present in the bucket.
func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

// Locate returns the bucket-scoped address recorded alongside the item.
func (s *Storage) Locate(key string) string {
	return s.bucket + "/" + key
}
