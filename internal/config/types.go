package config

import (
	"time"

	"github.com/collegenav/collegenav/backend/internal/logger"
)

// Config represents the application configuration
type Config struct {
	Environment string          `mapstructure:"environment" yaml:"environment"`
	Server      ServerConfig    `mapstructure:"server" yaml:"server"`
	Database    DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Redis       RedisConfig     `mapstructure:"redis" yaml:"redis"`
	Migrations  MigrationConfig `mapstructure:"migrations" yaml:"migrations"`
	Seeder      SeederConfig    `mapstructure:"seeder" yaml:"seeder"`
	Logging     LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig represents the admin server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MigrationConfig represents migration runner configuration settings
type MigrationConfig struct {
	Dir string `mapstructure:"dir"`
}

// SeederConfig represents seeder configuration settings
type SeederConfig struct {
	DataDir string `mapstructure:"dataDir"`
	// Duplicate policy for existing names: "skip" or "update"
	Policy string    `mapstructure:"policy"`
	API    APIConfig `mapstructure:"api"`
}

// APIConfig represents the external college data provider settings
type APIConfig struct {
	BaseURL   string        `mapstructure:"baseUrl"`
	APIKey    string        `mapstructure:"apiKey"`
	PerPage   int           `mapstructure:"perPage"`
	MaxPages  int           `mapstructure:"maxPages"`
	PageDelay time.Duration `mapstructure:"pageDelay"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	Development bool   `mapstructure:"development" yaml:"development"`

	File struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Path    string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"file" yaml:"file"`
}

// LoggerConfig converts the logging section into the logger package's config
func (c LoggingConfig) LoggerConfig() *logger.Config {
	cfg := &logger.Config{
		Level:       logger.Level(c.Level),
		Format:      c.Format,
		Output:      c.Output,
		Development: c.Development,
	}
	cfg.File.Enabled = c.File.Enabled
	cfg.File.Path = c.File.Path
	return cfg
}
