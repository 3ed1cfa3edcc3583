package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/settings"
)

const settingKeyPrefix = "setting:"

type settingRedisRepo struct {
	redisClient *redis.Client
}

func NewSettingRedisRepo(redisClient *redis.Client) settings.RedisRepository {
	return &settingRedisRepo{
		redisClient: redisClient,
	}
}

func (r *settingRedisRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	data, err := r.redisClient.Get(ctx, settingKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached setting: %w", err)
	}
	setting := &models.Setting{}
	if err = json.Unmarshal(data, setting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached setting: %w", err)
	}
	return setting, nil
}

func (r *settingRedisRepo) SetSetting(ctx context.Context, setting *models.Setting, ttl time.Duration) error {
	data, err := json.Marshal(setting)
	if err != nil {
		return fmt.Errorf("failed to marshal setting: %w", err)
	}
	if err = r.redisClient.Set(ctx, settingKeyPrefix+setting.Key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache setting: %w", err)
	}
	return nil
}

func (r *settingRedisRepo) DeleteSetting(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, settingKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cached setting: %w", err)
	}
	return nil
}
