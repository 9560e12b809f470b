package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Destination DestinationConfig
	Vitals      VitalsConfig
	Monitoring  MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the appointment store backend. Driver "memory"
// keeps appointments in-process; "postgres" uses the configured database.
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig configures the optional snapshot mirror. An empty host
// disables mirroring entirely.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DestinationConfig points at the collaborator that receives finalized
// scheduled appointments.
type DestinationConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type VitalsConfig struct {
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
	HistoryLimit      int           `mapstructure:"history_limit"`
}

type MonitoringConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("PULSEGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 9002)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.driver", "memory")
	viper.SetDefault("database.postgres.sslmode", "disable")

	// Redis defaults
	viper.SetDefault("redis.db", 0)

	// Destination defaults
	viper.SetDefault("destination.url", "http://localhost:9002/api/destination")
	viper.SetDefault("destination.timeout", "5s")

	// Vitals defaults
	viper.SetDefault("vitals.inactivity_timeout", "30s")
	viper.SetDefault("vitals.history_limit", 50)

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
}

func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case "memory":
	case "postgres":
		if config.Database.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required with the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}
	if config.Destination.URL == "" {
		return fmt.Errorf("destination URL is required")
	}
	if config.Vitals.InactivityTimeout <= 0 {
		return fmt.Errorf("vitals inactivity timeout must be positive")
	}
	if config.Vitals.HistoryLimit <= 0 {
		return fmt.Errorf("vitals history limit must be positive")
	}
	return nil
}
