package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/haagahelia/hidb-back/internal/api"
	"github.com/haagahelia/hidb-back/internal/config"
	"github.com/haagahelia/hidb-back/internal/database"
	"github.com/haagahelia/hidb-back/internal/metrics"
	"github.com/haagahelia/hidb-back/internal/repository"
	"github.com/haagahelia/hidb-back/internal/seeder"
	"github.com/haagahelia/hidb-back/internal/service"
	"github.com/haagahelia/hidb-back/internal/stats"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)

	ctx := context.Background()
	isEmpty, err := repository.IsCatalogEmpty(ctx, db)
	if err != nil {
		logger.Warn("Failed to check if catalog is empty", zap.Error(err))
	} else if isEmpty {
		if err := autoSeedCatalog(ctx, repos, cfg, logger); err != nil {
			logger.Fatal("Failed to auto-seed catalog", zap.Error(err))
		}
	}

	svc := service.NewService(repos.Aircraft, repos.Organization, repos.Media)
	statsCollector := stats.NewCollector(db, cfg.DB)
	metricsRegistry := metrics.NewRegistry()
	router := api.NewRouter(svc, statsCollector, metricsRegistry, logger, cfg.Server.IsDevelopment())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	var m *migrate.Migrate
	var err error

	sourcePath := "file://migrations/postgres"

	if cfg.DB.IsMemory() {
		sourcePath = "file://migrations/sqlite"
		// Use driver instance directly to avoid DSN parsing issues with in-memory SQLite
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance(sourcePath, "sqlite3", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		m, err = migrate.New(sourcePath, cfg.DB.DSN())
		if err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// autoSeedCatalog imports the catalog CSVs on first boot against an empty
// store. Entities are otherwise created entirely outside this API.
func autoSeedCatalog(ctx context.Context, repos *repository.Container, cfg *config.Config, logger *zap.Logger) error {
	parser := seeder.NewParser(cfg.Seeder.DataDir, cfg.Seeder)
	if !parser.HasSeedFiles() {
		logger.Info("Catalog is empty and no seed files found, skipping auto-seed",
			zap.String("data_dir", cfg.Seeder.DataDir))
		return nil
	}

	logger.Info("Catalog is empty, auto-seeding data...")

	organizations, err := parser.ParseOrganizations()
	if err != nil {
		return fmt.Errorf("failed to parse organizations: %w", err)
	}

	aircraft, err := parser.ParseAircraft()
	if err != nil {
		return fmt.Errorf("failed to parse aircraft: %w", err)
	}

	media, err := parser.ParseMedia()
	if err != nil {
		return fmt.Errorf("failed to parse media: %w", err)
	}

	// FK order: organizations before aircraft before media
	if err := repos.Organization.BulkInsertOrganizations(ctx, organizations); err != nil {
		return fmt.Errorf("failed to insert organizations: %w", err)
	}
	if err := repos.Aircraft.BulkInsertAircraft(ctx, aircraft); err != nil {
		return fmt.Errorf("failed to insert aircraft: %w", err)
	}
	if err := repos.Media.BulkInsertMedia(ctx, media); err != nil {
		return fmt.Errorf("failed to insert media: %w", err)
	}

	logger.Info("Catalog seeded successfully",
		zap.Int("organizations", len(organizations)),
		zap.Int("aircraft", len(aircraft)),
		zap.Int("media", len(media)),
	)
	return nil
}
