package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"liebrero-server/internal/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// pdfPrefix namespaces every uploaded object inside the bucket.
const pdfPrefix = "pdfs/"

// SpacesStorage implements domain.FileStorage against an S3-compatible
// bucket (DigitalOcean Spaces, MinIO, S3).
type SpacesStorage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	logger   domain.Logger
}

// NewSpacesStorage builds the object-storage client from configuration.
func NewSpacesStorage(config domain.Config, logger domain.Logger) (*SpacesStorage, error) {
	endpoint := config.GetStorageEndpoint()
	if endpoint == "" || config.GetStorageBucket() == "" {
		return nil, fmt.Errorf("object storage endpoint and bucket must be provided")
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.GetStorageKey(), config.GetStorageSecret(), ""),
		Secure: config.GetStorageSSL(),
		Region: config.GetStorageRegion(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &SpacesStorage{
		client:   client,
		bucket:   config.GetStorageBucket(),
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

// Upload stores one object under the pdfs/ prefix. The key embeds an upload
// timestamp so original filenames never collide.
func (s *SpacesStorage) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*domain.UploadResult, error) {
	key := fmt.Sprintf("%s%d-%s", pdfPrefix, time.Now().UnixMilli(), name)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}
	s.logger.Info("pdf uploaded", "key", key, "size", size)
	return &domain.UploadResult{Key: key, URL: s.publicURL(key)}, nil
}

// Fetch returns the object content and metadata. Existence is checked first
// so a missing key maps to a clean not-found.
func (s *SpacesStorage) Fetch(ctx context.Context, key string) (*domain.StoredFile, error) {
	key = normalizeKey(key)
	stat, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, mapStorageError(err)
	}
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object: %w", err)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return &domain.StoredFile{
		Key:          key,
		Content:      content,
		ContentType:  stat.ContentType,
		Size:         stat.Size,
		LastModified: stat.LastModified,
	}, nil
}

// Delete removes the object after checking it exists.
func (s *SpacesStorage) Delete(ctx context.Context, key string) error {
	key = normalizeKey(key)
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		return mapStorageError(err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	s.logger.Info("pdf deleted", "key", key)
	return nil
}

// List enumerates every object under the pdfs/ prefix.
func (s *SpacesStorage) List(ctx context.Context) ([]domain.FileInfo, error) {
	var files []domain.FileInfo
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: pdfPrefix, Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		files = append(files, domain.FileInfo{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return files, nil
}

func (s *SpacesStorage) publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
}

// normalizeKey accepts keys with or without the pdfs/ prefix; route params
// usually carry only the object name.
func normalizeKey(key string) string {
	if strings.HasPrefix(key, pdfPrefix) {
		return key
	}
	return pdfPrefix + key
}

func mapStorageError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
		return domain.ErrFileNotFound
	}
	return fmt.Errorf("storage request failed: %w", err)
}
