package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/settings"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

const tokenCacheTTL = 10 * time.Minute

type settingUC struct {
	settingRepo settings.Repository
	redisRepo   settings.RedisRepository
	logger      logger.Logger
}

func NewSettingUseCase(settingRepo settings.Repository, redisRepo settings.RedisRepository, log logger.Logger) settings.UseCase {
	return &settingUC{
		settingRepo: settingRepo,
		redisRepo:   redisRepo,
		logger:      log,
	}
}

func (u *settingUC) GetTokenBundle(ctx context.Context) (*models.TokenBundle, error) {
	cached, err := u.redisRepo.GetSetting(ctx, models.SettingKeyGoogleToken)
	if err != nil {
		// cache miss path, the store is authoritative
		u.logger.Warnf("GetTokenBundle - cache read error: %v", err)
	}
	setting := cached
	if setting == nil {
		setting, err = u.settingRepo.GetSetting(ctx, models.SettingKeyGoogleToken)
		if err != nil {
			return nil, fmt.Errorf("google account is not connected: %w", err)
		}
		if err := u.redisRepo.SetSetting(ctx, setting, tokenCacheTTL); err != nil {
			u.logger.Warnf("GetTokenBundle - cache write error: %v", err)
		}
	}
	bundle := &models.TokenBundle{}
	if err := json.Unmarshal(setting.Value, bundle); err != nil {
		return nil, fmt.Errorf("failed to decode token bundle: %w", err)
	}
	return bundle, nil
}

func (u *settingUC) SetTokenBundle(ctx context.Context, bundle *models.TokenBundle) error {
	if err := utils.ValidateStruct(ctx, bundle); err != nil {
		return fmt.Errorf("invalid token bundle: %v", err)
	}
	value, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode token bundle: %w", err)
	}
	setting, err := u.settingRepo.UpsertSetting(ctx, &models.Setting{
		Key:   models.SettingKeyGoogleToken,
		Value: value,
	})
	if err != nil {
		u.logger.Errorf("SetTokenBundle - UpsertSetting error: %v", err)
		return err
	}
	if err := u.redisRepo.SetSetting(ctx, setting, tokenCacheTTL); err != nil {
		u.logger.Warnf("SetTokenBundle - cache write error: %v", err)
	}
	return nil
}
