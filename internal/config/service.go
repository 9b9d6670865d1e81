package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger Logger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger Logger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		v.SetConfigName("config_test")
	} else {
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	s.setDefaults(v)

	// Secrets come from the environment, never from the file
	v.AutomaticEnv()
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("seeder.api.apiKey", "COLLEGE_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	if err := s.resolvePaths(&config, path); err != nil {
		return nil, fmt.Errorf("failed to resolve data paths: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", nil)
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("server.port", 8085)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.pool.maxOpen", 20)
	v.SetDefault("database.pool.maxIdle", 5)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("migrations.dir", "migrations")
	v.SetDefault("seeder.dataDir", "data/colleges")
	v.SetDefault("seeder.policy", "skip")
	v.SetDefault("seeder.api.perPage", 100)
	v.SetDefault("seeder.api.maxPages", 0)
	v.SetDefault("seeder.api.pageDelay", 500*time.Millisecond)
	v.SetDefault("seeder.api.timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}

// validate performs validation on the configuration
func (s *ConfigService) validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if config.Database.Dbname == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.Port <= 0 {
		return fmt.Errorf("invalid database port")
	}

	if config.Seeder.Policy != "skip" && config.Seeder.Policy != "update" {
		return fmt.Errorf("invalid seeder policy: %s", config.Seeder.Policy)
	}

	return nil
}

// resolvePaths converts relative directories to absolute paths
func (s *ConfigService) resolvePaths(config *Config, basePath string) error {
	migrationsDir := config.Migrations.Dir
	if !filepath.IsAbs(migrationsDir) {
		absPath, err := filepath.Abs(filepath.Join(basePath, migrationsDir))
		if err != nil {
			return fmt.Errorf("failed to resolve migrations directory path: %v", err)
		}
		config.Migrations.Dir = absPath
	}

	dataDir := config.Seeder.DataDir
	if !filepath.IsAbs(dataDir) {
		absPath, err := filepath.Abs(filepath.Join(basePath, dataDir))
		if err != nil {
			return fmt.Errorf("failed to resolve seeder data directory path: %v", err)
		}
		config.Seeder.DataDir = absPath
	}

	return nil
}
