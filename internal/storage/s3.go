package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/config"
)

type S3 struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewS3(cfg config.StorageConfig) (*S3, error) {
	if cfg.AWSBucket == "" {
		return nil, errors.New("s3 bucket name is required")
	}
	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		return nil, errors.New("aws credentials are required")
	}

	region := cfg.AWSRegion
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}
	// S3-compatible endpoints (minio, localstack) need path-style addressing.
	if cfg.AWSEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		opts.UsePathStyle = true
	}

	return &S3{
		client:   s3.New(opts),
		bucket:   cfg.AWSBucket,
		region:   region,
		endpoint: strings.TrimSuffix(cfg.AWSEndpoint, "/"),
	}, nil
}

func (s *S3) Upload(ctx context.Context, r io.Reader, path, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}

	key := strings.TrimPrefix(path, "/")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", errors.Wrap(err, "upload to s3")
	}

	return s.publicURL(key), nil
}

func (s *S3) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(path, "/")),
	})
	return errors.Wrap(err, "delete from s3")
}

func (s *S3) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
