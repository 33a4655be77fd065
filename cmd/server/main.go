package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"patrimonio-go/internal/config"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/router"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "./config/config.yaml"
	}
	configPath := flag.String("config", defaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Log)

	if err := models.InitDB(cfg); err != nil {
		logger.Fatalf("init database: %v", err)
	}
	db := models.GetDB()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatalf("connect redis at %s: %v", cfg.Redis.GetAddress(), err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn("redis disabled: logout will not revoke tokens and reset attempts are not limited")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetAccessExpireDuration(),
		cfg.JWT.GetRefreshExpireDuration(),
	)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, jwtManager, cfg, logger)
	if err := authService.InitAdmin(); err != nil {
		logger.Warnf("init admin: %v", err)
	}

	r := router.SetupRouter(cfg, jwtManager, logger, db, redisClient)

	addr := cfg.Server.GetAddress()
	logger.WithFields(logrus.Fields{
		"addr":       addr,
		"driver":     cfg.Database.Driver,
		"production": cfg.Server.ProductionMode,
	}).Info("server starting")

	if !cfg.Server.ProductionMode {
		logger.Infof("admin account: %s", cfg.Admin.Username)
	}

	if err := r.Run(addr); err != nil {
		logger.Fatalf("start server: %v", err)
	}
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
