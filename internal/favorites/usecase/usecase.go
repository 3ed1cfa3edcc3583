package usecase

import (
	"context"
	"fmt"

	"github.com/sajidbaba1/yt/internal/favorites"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type favoriteUC struct {
	favoriteRepo favorites.Repository
	logger       logger.Logger
}

func NewFavoriteUseCase(favoriteRepo favorites.Repository, log logger.Logger) favorites.UseCase {
	return &favoriteUC{
		favoriteRepo: favoriteRepo,
		logger:       log,
	}
}

func (u *favoriteUC) AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("AddFavorite - GetUserFromCtx error: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, favorite); err != nil {
		u.logger.Errorf("AddFavorite - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	favorite.UserID = user.UserID
	created, err := u.favoriteRepo.AddFavorite(ctx, favorite)
	if err != nil {
		u.logger.Errorf("AddFavorite - AddFavorite error: %v", err)
		return nil, err
	}
	return created, nil
}

func (u *favoriteUC) ListFavorites(ctx context.Context, pq *utils.Pagination) (*models.FavoriteList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.favoriteRepo.ListFavorites(ctx, user.UserID, pq)
}

func (u *favoriteUC) DeleteFavorite(ctx context.Context, sourceFileID string) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if sourceFileID == "" {
		return fmt.Errorf("source file id is required")
	}
	if err := u.favoriteRepo.DeleteFavorite(ctx, user.UserID, sourceFileID); err != nil {
		u.logger.Errorf("DeleteFavorite - DeleteFavorite error: %v", err)
		return err
	}
	return nil
}
