package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// StoragePath is the directory lesson videos are stored under.
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		// OpenLessonList makes GET /courses/{id}/lessons public instead of
		// access-gated. Deployments behind a separate preview frontend run
		// with this enabled.
		OpenLessonList bool `yaml:"open_lesson_list" env:"SERVER_OPEN_LESSON_LIST"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		// PublicKeyFile is the PEM file holding the user service's RSA
		// public key. Tokens are verified against it; this service never
		// issues tokens.
		PublicKeyFile string `yaml:"public_key_file" env:"AUTH_PUBLIC_KEY_FILE"`
		// PublicKey may carry the PEM inline (takes precedence over the file).
		PublicKey string `yaml:"public_key" env:"AUTH_PUBLIC_KEY"`
	} `yaml:"auth"`

	UserService struct {
		BaseURL string `yaml:"base_url" env:"USER_SERVICE_BASE_URL"`
		Timeout string `yaml:"timeout" env:"USER_SERVICE_TIMEOUT"`
	} `yaml:"user_service"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env if present; real env vars win over file values
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.OpenLessonList = false

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "courses"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.UserService.BaseURL = "http://kong:8000/users"
	config.UserService.Timeout = "3s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Auth.PublicKey == "" && config.Auth.PublicKeyFile == "" {
		return fmt.Errorf("auth public key is required")
	}

	if config.UserService.BaseURL == "" {
		return fmt.Errorf("user service base URL is required")
	}

	if _, err := time.ParseDuration(config.UserService.Timeout); err != nil {
		return fmt.Errorf("invalid user service timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
	}

	return nil
}

// PublicKeyPEM returns the PEM bytes of the token verification key.
func (c *Config) PublicKeyPEM() ([]byte, error) {
	if c.Auth.PublicKey != "" {
		return []byte(c.Auth.PublicKey), nil
	}

	pemBytes, err := os.ReadFile(c.Auth.PublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}
	return pemBytes, nil
}

// UserServiceTimeout returns the parsed user service request timeout.
func (c *Config) UserServiceTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.UserService.Timeout)
	if err != nil {
		return 3 * time.Second
	}
	return timeout
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
