package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/configs"
	"github.com/AnasIqbal56/Banking-App/internal/events"
	"github.com/AnasIqbal56/Banking-App/internal/handlers"
	"github.com/AnasIqbal56/Banking-App/internal/services"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/cache"
	"github.com/AnasIqbal56/Banking-App/pkg/database"
	middleware "github.com/AnasIqbal56/Banking-App/pkg/middlewares"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server and a cleanup func.
// It reads configuration from environment variables via configs.Load.
func NewApp(ctx context.Context, logger *zap.Logger) (*http.Server, func(), error) {
	// Load config
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, nil, err
	}

	// Initialize postgres db
	dbConfig := database.Config{
		PrimaryDSN: cfg.PrimaryDbAddr,
		MaxConns:   cfg.MaxDbCons,
		MinConns:   cfg.MinDbCons,
	}
	if !utils.IsEmpty(cfg.ReplicaDbAddr) {
		dbConfig.ReplicaDSNs = []string{cfg.ReplicaDbAddr}
	}
	db, disconnect, err := database.New(ctx, logger, dbConfig)
	if err != nil {
		return nil, nil, err
	}

	// Run migrations on primary
	if err := database.RunMigrations(logger, cfg.PrimaryDbAddr); err != nil {
		disconnect()
		return nil, nil, err
	}

	// Transaction events: no-op unless brokers are configured
	var publisher events.Publisher = events.NewNoopPublisher()
	if !utils.IsEmpty(cfg.KafkaBrokers) {
		publisher, err = events.NewKafkaPublisher(logger, ctx, events.KafkaConfig{
			Brokers:    cfg.KafkaBrokers,
			Topic:      cfg.KafkaTopic,
			Partitions: cfg.KafkaPartition,
		})
		if err != nil {
			disconnect()
			return nil, nil, err
		}
	}

	// Setup dependencies
	baseHandler := handlers.NewBaseHandler(logger)

	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	billRepo := repositories.NewBillRepository(db)

	authService := services.NewAuthService(logger, userRepo, []byte(cfg.JwtSecret), cfg.TokenTTL)
	accountService := services.NewAccountService(logger, accountRepo)
	ledgerService := services.NewLedgerService(logger, db, accountRepo, transactionRepo, publisher)
	billService := services.NewBillService(logger, db, billRepo, accountRepo, transactionRepo, publisher)

	authHandler := handlers.NewAuthHandler(logger, authService)
	accountHandler := handlers.NewAccountHandler(logger, accountService)
	transactionHandler := handlers.NewTransactionHandler(logger, ledgerService)
	billHandler := handlers.NewBillHandler(logger, billService)

	// Router
	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(middleware.Metrics())

	disconnectRedis := func() {}
	if cfg.RateLimitPerSec > 0 {
		limiter, cleanup, err := newRateLimiter(ctx, logger, cfg)
		if err != nil {
			disconnect()
			publisher.Close()
			return nil, nil, err
		}
		disconnectRedis = cleanup
		api.Use(middleware.RateLimit(limiter))
	}

	authHandler.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.Auth([]byte(cfg.JwtSecret)))
	authHandler.RegisterRoutes(authed)
	accountHandler.RegisterRoutes(authed)
	transactionHandler.RegisterRoutes(authed)
	billHandler.RegisterRoutes(authed)

	baseHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	cleanup := func() {
		// close db pools
		disconnect()
		// close kafka producer
		publisher.Close()
		// close redis client
		disconnectRedis()
	}

	return srv, cleanup, nil
}

// newRateLimiter builds the shared request limiter; Redis is optional and
// only adds the cross-replica counter.
func newRateLimiter(ctx context.Context, logger *zap.Logger, cfg *configs.Config) (*pkg.DistributedLimiter, func(), error) {
	cleanup := func() {}
	var redisClient *redis.Client
	if !utils.IsEmpty(cfg.RedisAddr) {
		client, closer, err := cache.New(ctx, cache.Config{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, nil, err
		}
		cleanup = closer
		redisClient = client
	}
	limiter := pkg.NewDistributedLimiter(redisClient, "global:request_rate", cfg.RateLimitPerSec, cfg.RateLimitBurst, time.Minute, logger)
	return limiter, cleanup, nil
}
