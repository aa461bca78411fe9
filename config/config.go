package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"pdfpress"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`

	RateLimitMaxRequests   int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitDurationInSec int `env:"RATE_LIMIT_DURATION_IN_SEC" envDefault:"5"`

	MaxFiles      int `env:"MAX_FILES" envDefault:"5"`
	MaxFileSizeMB int `env:"MAX_FILE_SIZE_MB" envDefault:"25"`
	MaxBodySizeMB int `env:"MAX_BODY_SIZE_MB" envDefault:"125"`

	ProcessTimeoutInSec int `env:"PROCESS_TIMEOUT_IN_SEC" envDefault:"60"`

	RasterDPI      int    `env:"RASTER_DPI" envDefault:"150"`
	PopplerBin     string `env:"POPPLER_BIN" envDefault:"pdftoppm"`
	GhostscriptBin string `env:"GHOSTSCRIPT_BIN" envDefault:"gs"`
}

func New() *Config {
	conf := &Config{}

	if err := env.Parse(conf); err != nil {
		slog.Error(err.Error())

		panic("Failed to parse config")
	}

	return conf
}

func (c *Config) RateLimitDuration() time.Duration {
	return time.Duration(c.RateLimitDurationInSec) * time.Second
}

func (c *Config) ProcessTimeout() time.Duration {
	return time.Duration(c.ProcessTimeoutInSec) * time.Second
}

func (c *Config) MaxFileSize() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
