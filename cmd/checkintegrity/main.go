package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/config"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/integrity"
	"github.com/collegenav/collegenav/backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", ".", "Path to the directory containing config.yaml")
	flag.Parse()

	ok, err := run(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "checkintegrity: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func run(configPath string) (bool, error) {
	bootstrapLogger, err := logger.NewService(&logger.Config{Level: logger.DebugLevel})
	if err != nil {
		return false, fmt.Errorf("failed to initialize logger: %v", err)
	}

	cfg, err := config.NewConfigService(bootstrapLogger).Load(configPath)
	if err != nil {
		return false, fmt.Errorf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewService(cfg.Logging.LoggerConfig())
	if err != nil {
		return false, fmt.Errorf("failed to initialize logger: %v", err)
	}

	dbService := database.NewDatabaseService(&cfg.Database, appLogger)
	db, err := dbService.Connect()
	if err != nil {
		return false, err
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

	summary := integrity.NewChecker(checks, appLogger).Run(context.Background())

	for _, result := range summary.Results {
		line := fmt.Sprintf("[%s] %s", result.Status, result.Name)
		if result.Detail != "" {
			line += ": " + result.Detail
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d passed, %d failed, %d warnings\n", summary.Passed, summary.Failed, summary.Warned)

	return summary.OK(), nil
}
