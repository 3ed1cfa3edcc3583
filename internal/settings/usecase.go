package settings

import (
	"context"

	"github.com/sajidbaba1/yt/internal/models"
)

type UseCase interface {
	GetTokenBundle(ctx context.Context) (*models.TokenBundle, error)
	SetTokenBundle(ctx context.Context, bundle *models.TokenBundle) error
}
