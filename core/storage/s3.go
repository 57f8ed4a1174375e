package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage uploads user-provided files (profile avatars) to object storage.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type s3Storage struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Storage(cfg config.StorageConfig) Storage {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	})
	return &s3Storage{client: client, bucket: cfg.Bucket, region: cfg.Region}
}

func (s *s3Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("S3Storage:Upload", "bucket", s.bucket, "key", key, "error", err)
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	logger.Info("S3Storage:Upload:OK", "key", key, "url", url)
	return url, nil
}
