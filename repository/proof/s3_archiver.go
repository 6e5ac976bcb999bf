package proof

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const archivePrefix = "payment-proofs"

// Archiver keeps a durable copy of a proof for the reviewer.
type Archiver interface {
	Archive(ctx context.Context, fileName, contentType string, content []byte) (string, error)
}

// S3API is the part of the S3 client the archiver needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Archiver struct {
	client S3API
	bucket string
}

// NewS3Archiver loads AWS credentials from the default chain (env, shared config, task role).
func NewS3Archiver(ctx context.Context, region, bucket string) (Archiver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3ArchiverWithClient(s3.NewFromConfig(cfg), bucket), nil
}

func NewS3ArchiverWithClient(client S3API, bucket string) Archiver {
	return &s3Archiver{client: client, bucket: bucket}
}

func (a *s3Archiver) Archive(ctx context.Context, fileName, contentType string, content []byte) (string, error) {
	key := path.Join(archivePrefix, path.Base(fileName))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
