package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sajidbaba1/yt/internal/config"
	driveClient "github.com/sajidbaba1/yt/internal/drive/client"
	"github.com/sajidbaba1/yt/internal/googleauth"
	jobRepository "github.com/sajidbaba1/yt/internal/jobs/repository"
	"github.com/sajidbaba1/yt/internal/notify"
	"github.com/sajidbaba1/yt/internal/pipeline"
	"github.com/sajidbaba1/yt/internal/scheduler"
	settingRepository "github.com/sajidbaba1/yt/internal/settings/repository"
	settingUsecase "github.com/sajidbaba1/yt/internal/settings/usecase"
	"github.com/sajidbaba1/yt/pkg/db/aws"
	"github.com/sajidbaba1/yt/pkg/db/postgres"
	"github.com/sajidbaba1/yt/pkg/db/redis"
	"github.com/sajidbaba1/yt/pkg/logger"
)

// Exactly one scheduler process may run against a store: the uploading
// status row is the only mutual exclusion.
func main() {
	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}
	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s3Client, _, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not connect to s3: %s", err)
	}

	jobRepo := jobRepository.NewJobRepo(psqlDB)
	awsRepo := jobRepository.NewAwsRepository(s3Client, cfg.S3.ThumbnailBucket)
	settingRepo := settingRepository.NewSettingRepo(psqlDB)
	settingRedisRepo := settingRepository.NewSettingRedisRepo(redisClient)
	settingUC := settingUsecase.NewSettingUseCase(settingRepo, settingRedisRepo, appLogger)

	tokenSource := googleauth.NewTokenSource(cfg, settingUC, appLogger)
	dClient := driveClient.NewDriveClient(tokenSource)
	uploader := pipeline.NewYoutubeUploader(dClient, tokenSource, awsRepo, appLogger)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL, appLogger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Info("shutting down scheduler")
		cancel()
	}()

	sched := scheduler.NewScheduler(cfg, jobRepo, uploader, notifier, appLogger)
	if err := sched.Run(ctx); err != nil {
		appLogger.Fatalf("scheduler stopped with error: %s", err)
	}
}
