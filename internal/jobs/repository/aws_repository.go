package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sajidbaba1/yt/internal/jobs"
)

type awsRepo struct {
	s3Client *s3.Client
	bucket   string
}

func NewAwsRepository(s3Client *s3.Client, bucket string) jobs.AWSRepository {
	return &awsRepo{
		s3Client: s3Client,
		bucket:   bucket,
	}
}

func (r *awsRepo) PutThumbnail(ctx context.Context, key string, contentType string, body io.Reader) error {
	if _, err := r.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}); err != nil {
		return fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	return nil
}

func (r *awsRepo) GetThumbnail(ctx context.Context, key string) ([]byte, string, error) {
	out, err := r.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get thumbnail: %w", err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read thumbnail body: %w", err)
	}
	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return data, contentType, nil
}

func (r *awsRepo) DeleteThumbnail(ctx context.Context, key string) error {
	if _, err := r.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete thumbnail: %w", err)
	}
	return nil
}
