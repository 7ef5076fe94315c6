package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/careloop/careloop/internal/pkg/config"
	"github.com/careloop/careloop/internal/pkg/database"
	"github.com/careloop/careloop/internal/pkg/health"
	"github.com/careloop/careloop/internal/pkg/logger"
	"github.com/careloop/careloop/internal/pkg/middleware"
	nsqpkg "github.com/careloop/careloop/internal/pkg/nsq"
	"github.com/careloop/careloop/internal/pkg/server"
	"github.com/careloop/careloop/services/auth/gateway"
	"github.com/careloop/careloop/services/auth/handler"
	httpHandler "github.com/careloop/careloop/services/auth/handler/http"
	"github.com/careloop/careloop/services/auth/repository"
	"github.com/careloop/careloop/services/auth/usecase"
)

func main() {
	appName := "auth-service"

	configPath := os.Getenv("CONFIG_PATH")
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdownMgr := server.NewShutdownManager(zapLogger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownMgr.Shutdown(ctx)
	}()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdownMgr.Register(func(ctx context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdownMgr.Register(func(ctx context.Context) error { return redisClient.Close() })

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	shutdownMgr.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	authGW := gateway.NewAuthGW(producer, configs.Services.CollectionServiceURL)
	authUC := usecase.NewAuthUC(authRepo, authGW, configs)

	authHandler := httpHandler.NewAuthHandler(authUC)
	userHandler := httpHandler.NewUserHandler(authUC)
	h := handler.NewHandler(authHandler, userHandler, authRepo, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
