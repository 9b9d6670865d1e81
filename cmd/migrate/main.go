package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/collegenav/collegenav/backend/internal/config"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/logger"
	"github.com/collegenav/collegenav/backend/internal/migration"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", ".", "Path to the directory containing config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

// run keeps the database handle scoped so it is released on every exit
// path, including failures
func run(configPath string) error {
	bootstrapLogger, err := logger.NewService(&logger.Config{Level: logger.DebugLevel})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	configService := config.NewConfigService(bootstrapLogger)
	cfg, err := configService.Load(configPath)
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

	runner := migration.NewRunner(
		migration.NewFileSource(cfg.Migrations.Dir),
		database.NewRecordStore(db, appLogger),
		migration.NewGormExecutor(db, appLogger),
		appLogger,
	)

	summary, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	if len(summary.Applied) == 0 {
		fmt.Printf("No pending migrations (%d already applied)\n", summary.Skipped)
	} else {
		fmt.Printf("Applied %d migration(s):\n", len(summary.Applied))
		for _, name := range summary.Applied {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
