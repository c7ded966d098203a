package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"weav-api/core/config"
	"weav-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage stores uploaded objects and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	api           putObjectAPI
	bucket        string
	publicBaseURL string
}

// NewS3Storage builds a client for AWS S3 or any S3-compatible endpoint.
func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return newS3Storage(s3.New(opts), cfg)
}

func newS3Storage(api putObjectAPI, cfg config.StorageConfig) *S3Storage {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		switch {
		case cfg.Endpoint != "":
			base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		default:
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	return &S3Storage{api: api, bucket: cfg.Bucket, publicBaseURL: base}
}

func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("storage bucket not configured")
	}

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"upload-id": uuid.NewString(),
		},
	})
	if err != nil {
		logger.Error("Storage:Upload:PutObject", "bucket", s.bucket, "key", key, err)
		return "", err
	}

	return s.publicBaseURL + "/" + key, nil
}
