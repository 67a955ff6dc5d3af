package container

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/gdugdh24/topfive-backend/internal/delivery/http"
	"github.com/gdugdh24/topfive-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/topfive-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/database"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/server"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/topfive-backend/internal/repository/postgres"
	"github.com/gdugdh24/topfive-backend/internal/usecase/account"
	"github.com/gdugdh24/topfive-backend/internal/usecase/auth"
	"github.com/gdugdh24/topfive-backend/internal/usecase/like"
	"github.com/gdugdh24/topfive-backend/internal/usecase/match"
	"github.com/gdugdh24/topfive-backend/internal/usecase/profile"
	"github.com/gdugdh24/topfive-backend/internal/usecase/prompt"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *sqlx.DB
	Redis   *redis.Client
	Storage storage.ObjectStorage
	Server  *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Server.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	c := &Container{Config: cfg, Logger: logger}

	// Initialize database
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	// Initialize Redis
	redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	c.Redis = redisClient

	// Initialize photo storage
	photos, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = photos

	// Initialize repositories
	accountRepo := postgres.NewAccountRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	promptRepo := postgres.NewPromptRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		accountRepo,
		auth.NewTokenManager(cfg.JWT),
		cache.NewTokenBlacklist(redisClient),
	)
	accountUseCase := account.NewAccountUseCase(accountRepo, authUseCase)
	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		promptRepo,
		photos,
		cfg.Storage.UploadURLTTL,
	)
	matchUseCase := match.NewMatchUseCase(profileRepo, matchRepo)
	likeUseCase := like.NewLikeUseCase(likeRepo, matchRepo)
	promptUseCase := prompt.NewPromptUseCase(promptRepo, profileRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	accountHandler := handler.NewAccountHandler(accountUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase, likeUseCase)
	promptHandler := handler.NewPromptHandler(promptUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)
	var rateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		rateLimit = middleware.RateLimit(cache.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// Initialize router
	router := http.NewRouter(
		authHandler,
		accountHandler,
		profileHandler,
		matchHandler,
		promptHandler,
		authMiddleware,
		rateLimit,
		middleware.NewMetrics(),
		logger,
		cfg.Server.TrustedProxies,
	)

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if closer, ok := c.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.Logger.Error("error closing storage", "err", err)
		}
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", "err", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
