package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/collegenav/collegenav/backend/internal/cache"
	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/config"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/logger"
	"github.com/collegenav/collegenav/backend/internal/seeder"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", ".", "Path to the directory containing config.yaml")
	sourceName := flag.String("source", "files", "Seed source: files, api, or all")
	region := flag.String("region", "", "Restrict curated files to one region, e.g. us")
	fresh := flag.Bool("fresh", false, "Destructively clear the colleges table before seeding")
	flag.Parse()

	if err := run(*configPath, *sourceName, *region, *fresh); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, sourceName, region string, fresh bool) error {
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

	sources, cleanup, err := buildSources(cfg, sourceName, region, appLogger)
	if err != nil {
		return err
	}
	defer cleanup()

	service := seeder.NewSeederService(
		college.NewRepository(db, appLogger),
		seeder.NewGormRunStore(db),
		sources,
		cfg.Seeder.Policy,
		region,
		appLogger,
	)

	report, err := service.Run(context.Background(), fresh)
	if err != nil {
		return err
	}

	fmt.Printf("Seeding complete: %d inserted, %d updated, %d skipped, %d invalid\n",
		report.Inserted, report.Updated, report.Skipped, report.Invalid)
	return nil
}

// buildSources assembles the requested seed sources. The API source
// gets a Redis-backed fetch checkpoint when the cache is reachable and
// runs without one when it is not.
func buildSources(cfg *config.Config, sourceName, region string, appLogger logger.Logger) ([]seeder.Source, func(), error) {
	cleanup := func() {}

	var sources []seeder.Source
	switch sourceName {
	case "files":
		sources = append(sources, seeder.NewFileSource(cfg.Seeder.DataDir, region, appLogger))
	case "api", "all":
		var checkpointCache cache.Service
		redisCache, err := cache.NewRedisService(&cfg.Redis)
		if err != nil {
			appLogger.LogWarn("Cache unavailable, fetching without checkpoint", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			checkpointCache = redisCache
			cleanup = func() { redisCache.Close() }
		}
		sources = append(sources, seeder.NewAPISource(cfg.Seeder.API, checkpointCache, appLogger))
		if sourceName == "all" {
			sources = append(sources, seeder.NewFileSource(cfg.Seeder.DataDir, region, appLogger))
		}
	default:
		return nil, cleanup, fmt.Errorf("unknown source %q (want files, api, or all)", sourceName)
	}

	return sources, cleanup, nil
}
