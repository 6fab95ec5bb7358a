package storage

import (
	"Balance-Eat/internal/utils"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const schemeS3 = "s3://"

type (
	AwsS3 interface {
		Download(ctx context.Context, bucket, key string) ([]byte, error)
		Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error
	}

	awsS3 struct {
		client *s3.Client
	}
)

// NewAwsS3 builds a client from AWS_S3_REGION. Static credentials are used
// when AWS_ACCESS_KEY and AWS_SECRET_KEY are set, otherwise the default
// provider chain applies.
func NewAwsS3(ctx context.Context) (AwsS3, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
	}
	accessKey, secretKey := utils.GetConfig("AWS_ACCESS_KEY"), utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &awsS3{client: s3.NewFromConfig(cfg)}, nil
}

func (a *awsS3) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (a *awsS3) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

func IsS3URL(location string) bool {
	return strings.HasPrefix(location, schemeS3)
}

// ParseS3URL splits s3://bucket/key.
func ParseS3URL(location string) (bucket, key string, err error) {
	if !IsS3URL(location) {
		return "", "", fmt.Errorf("not an s3 url: %q", location)
	}
	rest := strings.TrimPrefix(location, schemeS3)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url needs bucket and key: %q", location)
	}
	return bucket, key, nil
}
