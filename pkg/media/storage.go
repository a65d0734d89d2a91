// Package media holds the collaborators the API consumes around publishing:
// object storage for uploaded files and an ffprobe-based duration probe.
package media

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Upload describes a stored object: its public URL and the ID needed to
// delete it later.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// StorageConfig configures the MinIO-backed object storage.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Storage stores media files in a MinIO bucket.
type Storage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewStorage connects to MinIO and makes sure the bucket exists.
func NewStorage(ctx context.Context, cfg StorageConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "connect to object storage")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.WithMessage(err, "check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.WithMessage(err, "create bucket")
		}
	}

	return &Storage{client: client, bucket: cfg.Bucket, useSSL: cfg.UseSSL}, nil
}

// Store uploads a local file under a fresh object key and returns its public
// URL and ID. A nil result never accompanies a nil error.
func (s *Storage) Store(ctx context.Context, localPath string) (*Upload, error) {
	ext := strings.ToLower(filepath.Ext(localPath))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := uuid.NewString() + ext
	_, err := s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "upload object")
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return &Upload{
		URL:      fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, objectName),
		PublicID: objectName,
	}, nil
}

// Remove deletes a previously stored object by its public ID.
func (s *Storage) Remove(ctx context.Context, publicID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{})
	return errors.WithMessage(err, "remove object")
}
