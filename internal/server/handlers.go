package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authHttp "github.com/sajidbaba1/yt/internal/auth/delivery/http"
	authRepository "github.com/sajidbaba1/yt/internal/auth/repository"
	authUsecase "github.com/sajidbaba1/yt/internal/auth/usecase"
	driveClient "github.com/sajidbaba1/yt/internal/drive/client"
	driveHttp "github.com/sajidbaba1/yt/internal/drive/delivery/http"
	driveUsecase "github.com/sajidbaba1/yt/internal/drive/usecase"
	favoriteHttp "github.com/sajidbaba1/yt/internal/favorites/delivery/http"
	favoriteRepository "github.com/sajidbaba1/yt/internal/favorites/repository"
	favoriteUsecase "github.com/sajidbaba1/yt/internal/favorites/usecase"
	"github.com/sajidbaba1/yt/internal/googleauth"
	jobHttp "github.com/sajidbaba1/yt/internal/jobs/delivery/http"
	jobRepository "github.com/sajidbaba1/yt/internal/jobs/repository"
	jobUsecase "github.com/sajidbaba1/yt/internal/jobs/usecase"
	"github.com/sajidbaba1/yt/internal/middleware"
	settingHttp "github.com/sajidbaba1/yt/internal/settings/delivery/http"
	settingRepository "github.com/sajidbaba1/yt/internal/settings/repository"
	settingUsecase "github.com/sajidbaba1/yt/internal/settings/usecase"
	"github.com/sajidbaba1/yt/internal/suggest"
	"github.com/sajidbaba1/yt/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	jRepo := jobRepository.NewJobRepo(s.db)
	jAWSRepo := jobRepository.NewAwsRepository(s.s3Client, s.cfg.S3.ThumbnailBucket)
	fRepo := favoriteRepository.NewFavoriteRepo(s.db)
	stRepo := settingRepository.NewSettingRepo(s.db)
	stRedisRepo := settingRepository.NewSettingRedisRepo(s.redisClient)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	jobUC := jobUsecase.NewJobUseCase(s.cfg, jRepo, jAWSRepo, s.logger)
	favoriteUC := favoriteUsecase.NewFavoriteUseCase(fRepo, s.logger)
	settingUC := settingUsecase.NewSettingUseCase(stRepo, stRedisRepo, s.logger)

	tokenSource := googleauth.NewTokenSource(s.cfg, settingUC, s.logger)
	dClient := driveClient.NewDriveClient(tokenSource)
	suggester := suggest.NewGeminiSuggester(s.cfg, s.redisClient, s.logger)
	driveUC := driveUsecase.NewDriveUseCase(dClient, suggester, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	jobHandlers := jobHttp.NewJobHandler(jobUC)
	favoriteHandlers := favoriteHttp.NewFavoriteHandler(favoriteUC)
	settingHandlers := settingHttp.NewSettingHandler(settingUC)
	driveHandlers := driveHttp.NewDriveHandler(driveUC)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	jobGroup := v1.Group("/jobs")
	favoriteGroup := v1.Group("/favorites")
	settingGroup := v1.Group("/settings")
	driveGroup := v1.Group("/drive")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw)
	jobHttp.MapJobRoutes(jobGroup, jobHandlers, mw)
	favoriteHttp.MapFavoriteRoutes(favoriteGroup, favoriteHandlers, mw)
	settingHttp.MapSettingRoutes(settingGroup, settingHandlers, mw)
	driveHttp.MapDriveRoutes(driveGroup, driveHandlers, mw)

	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
