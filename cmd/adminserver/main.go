package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/config"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/health"
	apphttp "github.com/collegenav/collegenav/backend/internal/http"
	"github.com/collegenav/collegenav/backend/internal/integrity"
	"github.com/collegenav/collegenav/backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", ".", "Path to the directory containing config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "adminserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	bootstrapLogger, err := logger.NewService(&logger.Config{Level: logger.DebugLevel})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	cfg, err := config.NewConfigService(bootstrapLogger).Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewService(cfg.Logging.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	dbService := database.NewDatabaseService(&cfg.Database, appLogger)
	db, err := dbService.Connect()
	if err != nil {
		return err
	}
	defer dbService.Close()

	repo := college.NewRepository(db, appLogger)
	records := database.NewRecordStore(db, appLogger)

	descriptors := []integrity.Descriptor{
		{
			Name: "college-repository",
			Probe: func(ctx context.Context) error {
				_, err := repo.Count()
				return err
			},
		},
		{
			Name: "migration-log",
			Probe: func(ctx context.Context) error {
				_, err := records.ListApplied()
				return err
			},
		},
	}

	var checks []integrity.Check
	checks = append(checks, integrity.SchemaChecks(db)...)
	checks = append(checks, integrity.MigrationChecks(cfg.Migrations.Dir)...)
	checks = append(checks, integrity.DataFileChecks(cfg.Seeder.DataDir)...)
	checks = append(checks, integrity.CapabilityChecks(descriptors)...)
	checker := integrity.NewChecker(checks, appLogger)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(apphttp.RequestLoggerMiddleware(appLogger))

	handler := health.NewHandler(apphttp.NewResponseHandler(appLogger), checker, records)
	handler.RegisterRoutes(router)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.LogInfo("Starting admin server", map[string]interface{}{
		"addr": addr,
	})
	return router.Run(addr)
}
