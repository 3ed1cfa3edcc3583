package drive

import (
	"context"
	"io"

	"github.com/sajidbaba1/yt/internal/models"
)

// Client is the Drive v3 surface the app needs: browse video files and
// stream one down for upload.
type Client interface {
	ListVideoFiles(ctx context.Context, pageToken string, pageSize int) (*models.DriveFileList, error)
	GetFile(ctx context.Context, fileID string) (*models.DriveFile, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
}
