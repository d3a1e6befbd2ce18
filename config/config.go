package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a new Config instance with values from environment
// variables (CI) or Docker secrets (everything else).
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if GetEnvironment() == CI {
		loadFromEnv(cfg)
	} else {
		if err := loadFromSecrets(cfg); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadFromEnv reads all configuration from environment variables. Used in CI
// where values come from the pipeline's secret store.
func loadFromEnv(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.RedisDB = 0
}

// loadFromSecrets reads all configuration from Docker secret files.
func loadFromSecrets(cfg *Config) error {
	fields := map[string]*string{
		"server_port":    &cfg.ServerPort,
		"server_host":    &cfg.ServerHost,
		"db_host":        &cfg.DBHost,
		"db_port":        &cfg.DBPort,
		"db_user":        &cfg.DBUser,
		"db_password":    &cfg.DBPassword,
		"db_name":        &cfg.DBName,
		"db_ssl_mode":    &cfg.DBSSLMode,
		"redis_host":     &cfg.RedisHost,
		"redis_port":     &cfg.RedisPort,
		"redis_password": &cfg.RedisPassword,
		"redis_url":      &cfg.RedisURL,
		"jwt_secret":     &cfg.JWTSecret,
	}

	for name, dst := range fields {
		value := readSecret(name)
		if value == "" {
			return fmt.Errorf("secret %s is not set", name)
		}
		*dst = value
	}
	cfg.RedisDB = 0
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
