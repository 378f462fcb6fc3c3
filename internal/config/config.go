package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/newthinker/boxoffice/internal/core"
	"github.com/newthinker/boxoffice/internal/dataset"
	"github.com/spf13/viper"
)

// Dataset sources
const (
	SourceLocalFS = "localfs"
	SourceS3      = "s3"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TemplatesDir    string        `mapstructure:"templates_dir"` // empty uses embedded templates
}

// DatasetConfig says where the movies CSV lives and how to read it
type DatasetConfig struct {
	Source       string          `mapstructure:"source"`   // "localfs" or "s3"
	BaseDir      string          `mapstructure:"base_dir"` // For localfs
	Path         string          `mapstructure:"path"`
	ExcludeGenre string          `mapstructure:"exclude_genre"`
	Columns      dataset.Columns `mapstructure:"columns"`
	S3           S3Config        `mapstructure:"s3"` // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// DashboardConfig holds UI control settings
type DashboardConfig struct {
	MarkStep int `mapstructure:"mark_step"` // years between slider marks
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load reads configuration from path on top of Defaults. Environment
// variables (SERVER_PORT, DATASET_PATH, ...) override both. An empty path
// loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it even when
// the file does not mention it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.templates_dir", d.Server.TemplatesDir)

	v.SetDefault("dataset.source", d.Dataset.Source)
	v.SetDefault("dataset.base_dir", d.Dataset.BaseDir)
	v.SetDefault("dataset.path", d.Dataset.Path)
	v.SetDefault("dataset.exclude_genre", d.Dataset.ExcludeGenre)
	v.SetDefault("dataset.columns.year", d.Dataset.Columns.Year)
	v.SetDefault("dataset.columns.genre", d.Dataset.Columns.Genre)
	v.SetDefault("dataset.columns.revenue", d.Dataset.Columns.Revenue)
	v.SetDefault("dataset.s3.bucket", d.Dataset.S3.Bucket)
	v.SetDefault("dataset.s3.endpoint", d.Dataset.S3.Endpoint)
	v.SetDefault("dataset.s3.region", d.Dataset.S3.Region)
	v.SetDefault("dataset.s3.access_key", d.Dataset.S3.AccessKey)
	v.SetDefault("dataset.s3.secret_key", d.Dataset.S3.SecretKey)
	v.SetDefault("dataset.s3.prefix", d.Dataset.S3.Prefix)

	v.SetDefault("dashboard.mark_step", d.Dashboard.MarkStep)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)

	v.SetDefault("log.level", d.Log.Level)
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8051,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Dataset: DatasetConfig{
			Source:       SourceLocalFS,
			BaseDir:      ".",
			Path:         "Cleaned_Movies_Updated.csv",
			ExcludeGenre: core.SentinelGenre,
			Columns:      dataset.DefaultColumns(),
		},
		Dashboard: DashboardConfig{
			MarkStep: 5,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DatasetOptions returns the parsing options for the configured dataset
func (c *Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		Columns:      c.Dataset.Columns,
		ExcludeGenre: c.Dataset.ExcludeGenre,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	// Dataset validation
	if c.Dataset.Path == "" {
		return core.WrapError(core.ErrConfigMissing, fmt.Errorf("dataset path required"))
	}
	cols := c.Dataset.Columns
	if cols.Year == "" || cols.Genre == "" || cols.Revenue == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("dataset columns year, genre and revenue are required"))
	}

	switch c.Dataset.Source {
	case SourceLocalFS:
	case SourceS3:
		if c.Dataset.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required when dataset source is s3"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown dataset source %q", c.Dataset.Source))
	}

	if c.Dashboard.MarkStep < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("mark_step must be positive, got %d", c.Dashboard.MarkStep))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("metrics path must start with /, got %q", c.Metrics.Path))
	}

	return nil
}
