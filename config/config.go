package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"doctor-directory/pkg/validator"

	"github.com/spf13/viper"
)

const DefaultUpstreamURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App      AppConfig
	Log      LogConfig
	Upstream UpstreamConfig
	Page     PageConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Port string `validate:"required,numeric"`
	Env  string
}

type LogConfig struct {
	Level string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

type UpstreamConfig struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// PageConfig controls the rendered directory page.
// With URLSync disabled the filter state travels in form posts only.
type PageConfig struct {
	URLSync bool
}

// RedisConfig is optional: an empty Host keeps the payload cache in process.
// TTL applies to either cache.
type RedisConfig struct {
	Host     string
	Port     string `validate:"required_with=Host"`
	Password string
	DB       int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

// Enabled reports whether a Redis cache should be wired.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// ErrInvalidConfig wraps validation failures of the loaded configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig reads the optional env file at path, then the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Upstream: UpstreamConfig{
			URL:     v.GetString("UPSTREAM_URL"),
			Timeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Page: PageConfig{
			URLSync: v.GetBool("PAGE_URL_SYNC"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      v.GetDuration("REDIS_TTL"),
		},
	}

	cv := validator.NewValidator()
	if err := cv.Validate(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, cv.FormatValidationErrors(err))
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("UPSTREAM_URL", DefaultUpstreamURL)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("PAGE_URL_SYNC", true)
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", 5*time.Minute)
}
