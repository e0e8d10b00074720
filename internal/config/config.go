// Package config loads runtime settings for the MCP and HTTP servers.
//
// Settings come from, in increasing priority: built-in defaults, an optional
// YAML file, and RASTER_MCP_* environment variables (for example
// RASTER_MCP_LOG_LEVEL or RASTER_MCP_HTTP_ADDR).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "RASTER_MCP"

// Config is the full server configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kernels KernelsConfig `mapstructure:"kernels"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	Addr         string        `mapstructure:"addr"`
	Mode         string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// RedisConfig configures the optional result cache.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// KernelsConfig holds limits applied before any kernel runs.
type KernelsConfig struct {
	// MaxPixels caps width*height for any single request. 0 disables the cap.
	MaxPixels int `mapstructure:"max_pixels"`
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the servers cannot run with.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want console or json", c.Log.Format)
	}
	if c.Kernels.MaxPixels < 0 {
		return fmt.Errorf("invalid kernels.max_pixels %d: must be >= 0", c.Kernels.MaxPixels)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid http.max_body_bytes %d: must be > 0", c.HTTP.MaxBodyBytes)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.mode", d.HTTP.Mode)
	v.SetDefault("http.read_timeout", d.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", d.HTTP.WriteTimeout)
	v.SetDefault("http.max_body_bytes", d.HTTP.MaxBodyBytes)

	v.SetDefault("redis.enabled", d.Redis.Enabled)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.ttl", d.Redis.TTL)

	v.SetDefault("kernels.max_pixels", d.Kernels.MaxPixels)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			Mode:         "release",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxBodyBytes: 32 << 20,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  time.Hour,
		},
		Kernels: KernelsConfig{
			MaxPixels: 8192 * 8192,
		},
	}
}
