package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ITEMSTORE_APP_ENV" default:"development"`
	Port         string `envconfig:"ITEMSTORE_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"ITEMSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ITEMSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout  time.Duration `envconfig:"ITEMSTORE_SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"ITEMSTORE_SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"ITEMSTORE_SERVER_IDLE_TIMEOUT" default:"2m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ITEMSTORE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
