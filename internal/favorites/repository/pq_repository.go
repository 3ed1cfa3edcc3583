package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sajidbaba1/yt/internal/favorites"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type favoriteRepo struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) favorites.Repository {
	return &favoriteRepo{
		db: db,
	}
}

func (r *favoriteRepo) AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error) {
	created := &models.Favorite{}
	if err := r.db.QueryRowxContext(
		ctx,
		addFavoriteQuery,
		favorite.UserID,
		favorite.SourceFileID,
		favorite.FileName,
		favorite.MimeType,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return created, nil
}

func (r *favoriteRepo) ListFavorites(ctx context.Context, userID uuid.UUID, pq *utils.Pagination) (*models.FavoriteList, error) {
	var totalCount int
	if err := r.db.GetContext(
		ctx,
		&totalCount,
		getTotalFavoritesQuery,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to get total favorites count: %w", err)
	}
	if totalCount == 0 {
		return &models.FavoriteList{
			Favorites:  make([]*models.Favorite, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := r.db.QueryxContext(
		ctx,
		listFavoritesQuery,
		userID,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()
	favoriteList := make([]*models.Favorite, 0, pq.GetSize())
	for rows.Next() {
		var favorite models.Favorite
		if err = rows.StructScan(&favorite); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favoriteList = append(favoriteList, &favorite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan favorites: %w", err)
	}
	return &models.FavoriteList{
		Favorites:  favoriteList,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    pq.GetOffset()+len(favoriteList) < totalCount,
	}, nil
}

func (r *favoriteRepo) DeleteFavorite(ctx context.Context, userID uuid.UUID, sourceFileID string) error {
	result, err := r.db.ExecContext(
		ctx,
		deleteFavoriteQuery,
		userID,
		sourceFileID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
