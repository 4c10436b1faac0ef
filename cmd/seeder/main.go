package main

import (
	"context"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/haagahelia/hidb-back/internal/config"
	"github.com/haagahelia/hidb-back/internal/database"
	"github.com/haagahelia/hidb-back/internal/repository"
	"github.com/haagahelia/hidb-back/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))
	logger.Info("Starting catalog import...")

	ctx := context.Background()
	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		m, err := migrate.New("file://migrations/sqlite", "sqlite3://"+cfg.DB.DSN())
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	parser := seeder.NewParser(cfg.Seeder.DataDir, cfg.Seeder)

	logger.Info("Parsing organizations...")
	organizations, err := parser.ParseOrganizations()
	if err != nil {
		logger.Fatal("Failed to parse organizations", zap.Error(err))
	}

	logger.Info("Parsing aircraft...")
	aircraft, err := parser.ParseAircraft()
	if err != nil {
		logger.Fatal("Failed to parse aircraft", zap.Error(err))
	}

	logger.Info("Parsing media...")
	media, err := parser.ParseMedia()
	if err != nil {
		logger.Fatal("Failed to parse media", zap.Error(err))
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)

	// Clear existing rows so the import is repeatable (children first)
	if cfg.DB.IsMemory() {
		_, _ = db.Exec("DELETE FROM media; DELETE FROM aircraft; DELETE FROM organizations;")
	}

	logger.Info("Inserting organizations...")
	if err := repos.Organization.BulkInsertOrganizations(ctx, organizations); err != nil {
		logger.Fatal("Failed to insert organizations", zap.Error(err))
	}

	logger.Info("Inserting aircraft...")
	if err := repos.Aircraft.BulkInsertAircraft(ctx, aircraft); err != nil {
		logger.Fatal("Failed to insert aircraft", zap.Error(err))
	}

	logger.Info("Inserting media...")
	if err := repos.Media.BulkInsertMedia(ctx, media); err != nil {
		logger.Fatal("Failed to insert media", zap.Error(err))
	}

	logger.Info("Catalog import completed successfully!",
		zap.Int("organizations", len(organizations)),
		zap.Int("aircraft", len(aircraft)),
		zap.Int("media", len(media)),
	)
}
