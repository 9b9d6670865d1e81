package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/collegenav/collegenav/backend/internal/college"
	"github.com/collegenav/collegenav/backend/internal/config"
	"github.com/collegenav/collegenav/backend/internal/database"
	"github.com/collegenav/collegenav/backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", ".", "Path to the directory containing config.yaml")
	dryRun := flag.Bool("dry-run", false, "Report corrections without writing them")
	flag.Parse()

	if err := run(*configPath, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "fixurls: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, dryRun bool) error {
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
	colleges, err := repo.All()
	if err != nil {
		return err
	}

	corrected, invalid := 0, 0
	for _, c := range colleges {
		if c.OfficialWebsite == "" {
			continue
		}

		canonical, err := college.CanonicalWebsite(c.OfficialWebsite)
		if err != nil {
			invalid++
			appLogger.LogWarn("Website cannot be canonicalized", map[string]interface{}{
				"college": c.Name,
				"website": c.OfficialWebsite,
			})
			continue
		}
		if canonical == c.OfficialWebsite {
			continue
		}

		corrected++
		appLogger.LogInfo("Correcting website", map[string]interface{}{
			"college": c.Name,
			"from":    c.OfficialWebsite,
			"to":      canonical,
		})
		if dryRun {
			continue
		}
		if err := repo.UpdateWebsite(c.ID, canonical); err != nil {
			return err
		}
	}

	mode := ""
	if dryRun {
		mode = " (dry run)"
	}
	fmt.Printf("Checked %d colleges: %d corrected, %d invalid%s\n", len(colleges), corrected, invalid, mode)
	return nil
}
