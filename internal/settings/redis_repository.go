package settings

import (
	"context"
	"time"

	"github.com/sajidbaba1/yt/internal/models"
)

type RedisRepository interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	SetSetting(ctx context.Context, setting *models.Setting, ttl time.Duration) error
	DeleteSetting(ctx context.Context, key string) error
}
