package main

// @title Placement Microservice API
// @version 1.0.0
// @description Verzeichnisdienst für Jugendhilfe-Einrichtungen. Stellt einen durchsuchbaren Katalog stationärer Plätze bereit: Filterung nach Verfügbarkeit, Region, Alter, Betreuungsform und Spezialisierungen, Umkreissuche mit Entfernungssortierung sowie Kontaktanfragen an einzelne Einrichtungen.
// @description
// @description Hauptfunktionen:
// @description - Katalogsuche mit kombinierbaren Filterkriterien
// @description - Umkreissuche mit Distanzannotation (km) und Sortierung nach Nähe
// @description - Detailansicht einzelner Einrichtungen mit Sitzungsnavigation
// @description - Kontaktanfragen (nur Bestätigung, kein Versand)
// @description - Statistik über den geladenen Katalog

// @contact.name API Support
// @contact.email support@placement-microservice.de

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/placement-microservice/docs/swagger"
	"github.com/placement-microservice/internal/config"
	httpDelivery "github.com/placement-microservice/internal/delivery/http"
	"github.com/placement-microservice/internal/delivery/http/handler"
	"github.com/placement-microservice/internal/pkg/logger"
	"github.com/placement-microservice/internal/repository/cache"
	"github.com/placement-microservice/internal/repository/catalog"
	"github.com/placement-microservice/internal/repository/postgres"
	redisRepo "github.com/placement-microservice/internal/repository/redis"
	"github.com/placement-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Placement Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// 3. Load the facility catalog. Any load fault is fatal: the service
	// never starts with a partial or invalid catalog.
	catalogRepo, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to load facility catalog", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	facilityUC := usecase.NewFacilityUseCase(catalogRepo, log)
	statsUC := usecase.NewStatsUseCase(catalogRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	navigationUC := usecase.NewNavigationUseCase(catalogRepo, log)
	inquiryUC := usecase.NewInquiryUseCase(catalogRepo, streamRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	facilityHandler := handler.NewFacilityHandler(facilityUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	navigationHandler := handler.NewNavigationHandler(navigationUC, log)
	inquiryHandler := handler.NewInquiryHandler(inquiryUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		facilityHandler,
		statsHandler,
		navigationHandler,
		inquiryHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// loadCatalog builds the in-memory catalog from the configured source.
func loadCatalog(cfg *config.Config, log *zap.Logger) (*catalog.Repository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.NewFromFile(cfg.Catalog.Path, log)

	case config.CatalogSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		// The catalog is a one-shot snapshot; the connection is not
		// needed after loading.
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		facilities, err := postgres.LoadFacilities(ctx, db)
		if err != nil {
			return nil, err
		}
		return catalog.NewFromFacilities(facilities, log)

	default:
		return nil, fmt.Errorf("unknown catalog source: %q", cfg.Catalog.Source)
	}
}
