package jobs

import (
	"context"
	"io"
)

type AWSRepository interface {
	PutThumbnail(ctx context.Context, key string, contentType string, body io.Reader) error
	GetThumbnail(ctx context.Context, key string) ([]byte, string, error)
	DeleteThumbnail(ctx context.Context, key string) error
}
