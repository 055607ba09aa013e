package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oklog/ulid/v2"

	appConfig "github.com/filehaven/filehaven/internal/config"
)

// S3BlobStore implements domain.BlobStore against an S3-compatible
// endpoint (SeaweedFS, MinIO, AWS) using AWS SDK v2
type S3BlobStore struct {
	client *s3.Client
	bucket string
}

// NewS3BlobStore creates a new S3 blob store
func NewS3BlobStore(ctx context.Context, cfg appConfig.S3Config) (*S3BlobStore, error) {
	// For SeaweedFS/MinIO we override endpoint resolution and use static
	// credentials, as those stores still require request signatures
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("any", "any", "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true // Required for many S3-compatible stores
	})

	store := &S3BlobStore{
		client: client,
		bucket: cfg.Bucket,
	}

	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// Write stores data under a generated object key and returns the key
func (s *S3BlobStore) Write(ctx context.Context, data []byte) (string, error) {
	ref := ulid.Make().String()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(ref),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob to S3: %w", err)
	}
	return ref, nil
}

// Read fetches the object stored under ref
func (s *S3BlobStore) Read(ctx context.Context, ref string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob from S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob body: %w", err)
	}
	return data, nil
}

// ensureBucket checks if the bucket exists, creating it if necessary
func (s *S3BlobStore) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})

	if err != nil {
		_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(s.bucket),
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}
