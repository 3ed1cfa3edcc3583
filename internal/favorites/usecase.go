package favorites

import (
	"context"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type UseCase interface {
	AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error)
	ListFavorites(ctx context.Context, pq *utils.Pagination) (*models.FavoriteList, error)
	DeleteFavorite(ctx context.Context, sourceFileID string) error
}
