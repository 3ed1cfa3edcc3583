package favorites

import (
	"context"

	"github.com/google/uuid"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type Repository interface {
	AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error)
	ListFavorites(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.FavoriteList, error)
	DeleteFavorite(ctx context.Context, userID uuid.UUID, sourceFileID string) error
}
