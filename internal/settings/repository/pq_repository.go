package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/settings"
)

type settingRepo struct {
	db *sqlx.DB
}

func NewSettingRepo(db *sqlx.DB) settings.Repository {
	return &settingRepo{
		db: db,
	}
}

func (r *settingRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	setting := &models.Setting{}
	if err := r.db.QueryRowxContext(
		ctx,
		getSettingQuery,
		key,
	).StructScan(setting); err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return setting, nil
}

func (r *settingRepo) UpsertSetting(ctx context.Context, setting *models.Setting) (*models.Setting, error) {
	upserted := &models.Setting{}
	if err := r.db.QueryRowxContext(
		ctx,
		upsertSettingQuery,
		setting.Key,
		setting.Value,
	).StructScan(upserted); err != nil {
		return nil, fmt.Errorf("failed to upsert setting %s: %w", setting.Key, err)
	}
	return upserted, nil
}
