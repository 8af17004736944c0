// Package config loads the service configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Token   TokenConfig   `mapstructure:"token"`
	Storage StorageConfig `mapstructure:"storage"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DBConfig struct {
	Host          string `mapstructure:"host"`
	Port          string `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// DSN renders the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Seoul",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// Addr renders the host:port pair. Empty host disables Redis.
func (c RedisConfig) Addr() string {
	if c.Host == "" {
		return ""
	}
	return c.Host + ":" + c.Port
}

type TokenConfig struct {
	Secret string `mapstructure:"secret"`
}

type StorageConfig struct {
	Bucket    string `mapstructure:"bucket"`
	PublicURL string `mapstructure:"public_url"`
}

type GeminiConfig struct {
	Model string `mapstructure:"model"`
}

// Load reads config.yaml (if present) and the environment. Environment
// variables use underscores for nesting: DB_HOST, TOKEN_SECRET, SERVER_PORT.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "dashboard")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "dashboard")
	v.SetDefault("db.run_migrations", false)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("token.secret", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.public_url", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: the environment can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Token.Secret == "" {
		return nil, fmt.Errorf("token.secret (TOKEN_SECRET) is required")
	}
	return &cfg, nil
}
