package settings

import (
	"context"

	"github.com/sajidbaba1/yt/internal/models"
)

type Repository interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, setting *models.Setting) (*models.Setting, error)
}
