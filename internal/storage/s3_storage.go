package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/google/uuid"
)

// Uploader stores book cover images and returns their public URL
type Uploader interface {
	UploadCover(ctx context.Context, filename string, body io.Reader, size int64) (string, error)
}

type s3Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

// NewS3Uploader builds an uploader against the configured bucket. Fails
// fast when AWS credentials cannot be resolved.
func NewS3Uploader(cfg config.S3Config) (Uploader, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: cfg.BaseURL,
	}, nil
}

func (u *s3Uploader) UploadCover(ctx context.Context, filename string, body io.Reader, size int64) (string, error) {
	key := fmt.Sprintf("covers/%s%s", uuid.NewString(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.Error("Failed to upload cover image", err, map[string]interface{}{
			"bucket": u.bucket,
			"key":    key,
		})
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	if u.baseURL != "" {
		url = fmt.Sprintf("%s/%s", u.baseURL, key)
	}

	logger.Info("Cover image uploaded", map[string]interface{}{
		"key": key,
	})
	return url, nil
}
