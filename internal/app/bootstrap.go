package app

import (
	"time"

	"bingo-backend/internal/app/game"
	"bingo-backend/internal/app/health"
	"bingo-backend/internal/app/session"
	"bingo-backend/internal/config"
	"bingo-backend/internal/db"
	"bingo-backend/internal/gateways/websocket"
	"bingo-backend/internal/providers/minio"
	"bingo-backend/internal/providers/redis"
	"bingo-backend/internal/router"
	"bingo-backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	redisProvider := redis.NewProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	minioProvider, err := minio.NewProvider(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize claim archive, claims will not be archived", zap.Error(err))
		minioProvider = nil
	}
	eventBus := utils.NewEventBus()

	sessionRepo := session.NewRepository(dbConn)
	gameRepo := game.NewRepository(dbConn)

	sessionService := session.NewService(sessionRepo)
	gameService := game.NewService(gameRepo, sessionService, redisProvider, eventBus, logger, minioProvider, cfg.ClaimCooldown)

	hub := websocket.NewHub(logger, sessionService, eventBus)
	go hub.Run()

	if minioProvider != nil {
		go func() {
			ticker := time.NewTicker(1 * time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				if err := minioProvider.DeleteArchivesOlderThan(cfg.ArchiveRetention); err != nil {
					logger.Warn("Failed to sweep expired claim archives", zap.Error(err))
				}
			}
		}()
	}

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	sessionHandler := session.NewHandler(sessionService)
	gameHandler := game.NewHandler(gameService)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub)
	r.RegisterSessionRoutes(sessionHandler)
	r.RegisterGameRoutes(gameHandler)
	r.RegisterSwaggerRoutes()

	logger.Info("Application bootstrapped",
		zap.Int("routes", r.Table.Len()),
		zap.Duration("claim_cooldown", cfg.ClaimCooldown),
	)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
