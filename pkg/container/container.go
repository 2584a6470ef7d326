package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"publications-backend/internal/clients/authors"
	"publications-backend/internal/config"
	pubHandler "publications-backend/internal/domains/publication/handler"
	pubRepo "publications-backend/internal/domains/publication/repository"
	pubService "publications-backend/internal/domains/publication/service"
	infraCache "publications-backend/internal/infrastructure/cache"
	"publications-backend/internal/infrastructure/database"
	"publications-backend/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// It is the root of the dependency graph; everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure layer - shared across domains
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	AsynqClient *asynq.Client

	// Outbound clients
	AuthorsClient *authors.Client

	// Publication domain
	PublicationRepo    pubRepo.Repository
	PublicationService pubService.Service
	PublicationHandler *pubHandler.PublicationHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph.
//
// Initialization order matters:
//  1. Config (depends on nothing)
//  2. Infrastructure (DB, Cache, task queue) - depends on Config
//  3. Outbound clients - depend on Config
//  4. Repositories - depend on Infrastructure
//  5. Services - depend on Repositories and clients
//  6. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing DI container...")

	c := &Container{}

	// ----------------------------------------
	// STEP 1: CONFIGURATION
	// ----------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// ----------------------------------------
	// STEP 2: DATABASE
	// ----------------------------------------
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db

	// ----------------------------------------
	// STEP 3: CACHE
	// ----------------------------------------
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect is not part of the Cache interface, so type-assert here.
	// A Redis outage is not fatal: repositories degrade to DB-only reads.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}

	c.Cache = redisCache

	// ----------------------------------------
	// STEP 4: TASK QUEUE CLIENT
	// ----------------------------------------
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ----------------------------------------
	// STEP 5: OUTBOUND CLIENTS
	// ----------------------------------------
	c.AuthorsClient = authors.NewClient(cfg.Authors)

	// ----------------------------------------
	// STEP 6: DOMAIN WIRING
	// ----------------------------------------
	c.PublicationRepo = pubRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.PublicationService = pubService.NewPublicationService(
		c.PublicationRepo,
		c.AuthorsClient,
		c.AsynqClient,
	)
	c.PublicationHandler = pubHandler.NewPublicationHandler(c.PublicationService)

	log.Println("[CONTAINER] DI container initialized successfully")
	return c, nil
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close task queue client: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[CONTAINER] Failed to close Redis: %v", err)
			}
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	log.Println("[CONTAINER] Container cleanup completed")
}
