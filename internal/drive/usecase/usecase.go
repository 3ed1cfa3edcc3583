package usecase

import (
	"context"
	"fmt"

	"github.com/sajidbaba1/yt/internal/drive"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/suggest"
	"github.com/sajidbaba1/yt/pkg/logger"
)

type driveUC struct {
	client    drive.Client
	suggester suggest.Suggester
	logger    logger.Logger
}

func NewDriveUseCase(client drive.Client, suggester suggest.Suggester, log logger.Logger) drive.UseCase {
	return &driveUC{
		client:    client,
		suggester: suggester,
		logger:    log,
	}
}

func (u *driveUC) ListFiles(ctx context.Context, pageToken string, pageSize int) (*models.DriveFileList, error) {
	list, err := u.client.ListVideoFiles(ctx, pageToken, pageSize)
	if err != nil {
		u.logger.Errorf("ListFiles - ListVideoFiles error: %v", err)
		return nil, err
	}
	return list, nil
}

func (u *driveUC) GetSuggestion(ctx context.Context, fileID string) (*models.Suggestion, error) {
	file, err := u.client.GetFile(ctx, fileID)
	if err != nil {
		u.logger.Errorf("GetSuggestion - GetFile error: %v", err)
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	// a suggester failure still yields the filename-derived fallback
	return u.suggester.Suggest(ctx, file.Name), nil
}
