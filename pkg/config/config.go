package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix for every setting
const Prefix = "COACH"

// Config holds application configuration
type Config struct {
	Backend BackendConfig `envconfig:"BACKEND"`
	Server  ServerConfig  `envconfig:"SERVER"`
	Storage StorageConfig `envconfig:"STORAGE"`
	Audio   AudioConfig   `envconfig:"AUDIO"`
	Log     LogConfig     `envconfig:"LOG"`
}

// BackendConfig holds the analysis backend connection settings
type BackendConfig struct {
	URL string `envconfig:"URL" default:"http://localhost:8000"`
	// Timeout bounds upload and analyze round trips, which include diarization.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10m"`
	// SynthesisTimeout bounds one coach-audio synthesis request.
	SynthesisTimeout time.Duration `envconfig:"SYNTHESIS_TIMEOUT" default:"90s"`
}

// ServerConfig holds the local console server configuration
type ServerConfig struct {
	Host            string `envconfig:"HOST" default:"127.0.0.1"`
	Port            string `envconfig:"PORT" default:"8090"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// StorageConfig holds object storage settings for s3:// clip references
type StorageConfig struct {
	Endpoint        string `envconfig:"ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY"`
	SecretAccessKey string `envconfig:"SECRET_KEY"`
	Region          string `envconfig:"REGION"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
}

// AudioConfig holds output device settings
type AudioConfig struct {
	FramesPerBuffer int `envconfig:"FRAMES_PER_BUFFER" default:"1024"`
	// Device is an output device index; negative selects the system default.
	Device int `envconfig:"DEVICE" default:"-1"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

// Load loads configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s_BACKEND_URL must be an absolute http(s) URL, got %q", Prefix, c.Backend.URL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%s_BACKEND_TIMEOUT must be positive", Prefix)
	}
	if c.Backend.SynthesisTimeout <= 0 {
		return fmt.Errorf("%s_BACKEND_SYNTHESIS_TIMEOUT must be positive", Prefix)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("%s_SERVER_PORT is required", Prefix)
	}
	if c.Audio.FramesPerBuffer <= 0 {
		return fmt.Errorf("%s_AUDIO_FRAMES_PER_BUFFER must be positive", Prefix)
	}
	if c.Storage.Endpoint != "" && (c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "") {
		return fmt.Errorf("%s_STORAGE_ACCESS_KEY and %s_STORAGE_SECRET_KEY are required when %s_STORAGE_ENDPOINT is set", Prefix, Prefix, Prefix)
	}
	return nil
}

// StorageEnabled reports whether s3:// clip references can be served
func (c *Config) StorageEnabled() bool {
	return c.Storage.Endpoint != ""
}

// GetServerAddr returns the console listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
