package drive

import (
	"context"

	"github.com/sajidbaba1/yt/internal/models"
)

type UseCase interface {
	ListFiles(ctx context.Context, pageToken string, pageSize int) (*models.DriveFileList, error)
	GetSuggestion(ctx context.Context, fileID string) (*models.Suggestion, error)
}
