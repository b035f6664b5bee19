package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`

	Redis struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"redis"`

	JWT struct {
		Secret      string `yaml:"secret"`
		ExpiryHours int    `yaml:"expiryHours"`
	} `yaml:"jwt"`

	CSRF CSRFConfig `yaml:"csrf"`

	CORS struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`

	Log struct {
		File string `yaml:"file"`
	} `yaml:"log"`
}

// CSRFConfig controls the csrf middleware. Insecure drops the cookie's
// Secure flag for plain-http local development.
type CSRFConfig struct {
	Enabled  bool   `yaml:"enabled"`
	AuthKey  string `yaml:"authKey"`
	Insecure bool   `yaml:"insecure"`
}

// Load reads the yaml config file if present, then applies env overrides
// and defaults so the service runs locally with no file at all.
func Load(path string) (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(&cfg.Server.Port, "PORT", "8080")
	applyEnv(&cfg.Database.Host, "DB_HOST", "localhost")
	applyEnv(&cfg.Database.Port, "DB_PORT", "5432")
	applyEnv(&cfg.Database.User, "DB_USER", "postgres")
	applyEnv(&cfg.Database.Password, "DB_PASSWORD", "postgres")
	applyEnv(&cfg.Database.Name, "DB_NAME", "habitflow_db")
	applyEnv(&cfg.Database.SSLMode, "DB_SSLMODE", "disable")
	applyEnv(&cfg.Redis.Host, "REDIS_HOST", "localhost")
	applyEnv(&cfg.Redis.Port, "REDIS_PORT", "6379")
	applyEnv(&cfg.JWT.Secret, "JWT_SECRET", "supersecretkey")
	applyEnv(&cfg.CSRF.AuthKey, "CSRF_AUTH_KEY", "")
	applyEnv(&cfg.Log.File, "LOG_FILE", "./logs/app.log")

	if os.Getenv("CSRF_INSECURE") == "true" {
		cfg.CSRF.Insecure = true
	}
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JWT.ExpiryHours = n
		}
	}
	if cfg.JWT.ExpiryHours == 0 {
		cfg.JWT.ExpiryHours = 24
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}

	return &cfg, nil
}

// applyEnv fills dst from the env var, then the default, keeping any value
// already set by the yaml file unless the env var overrides it.
func applyEnv(dst *string, key, def string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
		return
	}
	if *dst == "" {
		*dst = def
	}
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode,
	)
}

// RedisAddr builds the redis address.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
