// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pdiddy/contentspark/pkg/types"
)

// putObjectAPI is the slice of the S3 client the exporter needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Exporter uploads files to an S3 or S3-compatible bucket.
type S3Exporter struct {
	client putObjectAPI
	bucket string
	prefix string
}

var _ Exporter = (*S3Exporter)(nil)

// NewS3Exporter builds an exporter from cfg. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain
// applies. A custom endpoint switches to path-style addressing.
func NewS3Exporter(ctx context.Context, cfg types.S3Config) (*S3Exporter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 export bucket is not configured")
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3ExporterWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewS3ExporterWithClient wraps an existing client.
func NewS3ExporterWithClient(client putObjectAPI, bucket, prefix string) *S3Exporter {
	return &S3Exporter{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object key for name.
func (e *S3Exporter) Key(name string) string {
	if e.prefix == "" {
		return name
	}
	return path.Join(e.prefix, name)
}

func (e *S3Exporter) Put(ctx context.Context, name string, body []byte) error {
	contentType := FormatText.ContentType()
	if strings.HasSuffix(name, "."+string(FormatMarkdown)) {
		contentType = FormatMarkdown.ContentType()
	}

	key := e.Key(name)
	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("uploading s3://%s/%s: %w", e.bucket, key, err)
	}
	return nil
}
