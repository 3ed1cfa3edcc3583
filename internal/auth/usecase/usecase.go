package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sajidbaba1/yt/internal/auth"
	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type authUC struct {
	cfg      *config.Config
	authRepo auth.Repository
	logger   logger.Logger
}

func NewAuthUseCase(cfg *config.Config, authRepo auth.Repository, log logger.Logger) auth.UseCase {
	return &authUC{
		cfg:      cfg,
		authRepo: authRepo,
		logger:   log,
	}
}

func (u *authUC) Register(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	if err := utils.ValidateStruct(ctx, user); err != nil {
		u.logger.Errorf("Register - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if err := user.PrepareCreate(); err != nil {
		return nil, err
	}
	created, err := u.authRepo.Register(ctx, user)
	if err != nil {
		u.logger.Errorf("Register - Register error: %v", err)
		return nil, err
	}
	created.SanitizePassword()

	token, err := utils.GenerateJWTToken(created, u.cfg)
	if err != nil {
		u.logger.Errorf("Register - GenerateJWTToken error: %v", err)
		return nil, err
	}
	return &models.UserWithToken{
		User:  created,
		Token: token,
	}, nil
}

func (u *authUC) Login(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	found, err := u.authRepo.FindByEmail(ctx, user)
	if err != nil {
		u.logger.Errorf("Login - FindByEmail error: %v", err)
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := found.ComparePassword(user.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	found.SanitizePassword()

	token, err := utils.GenerateJWTToken(found, u.cfg)
	if err != nil {
		u.logger.Errorf("Login - GenerateJWTToken error: %v", err)
		return nil, err
	}
	return &models.UserWithToken{
		User:  found,
		Token: token,
	}, nil
}

func (u *authUC) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.authRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.SanitizePassword()
	return user, nil
}
