package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SMART_PANEL_PORT.
const EnvPrefix = "SMART_PANEL"

type Config struct {
	Port   string       `mapstructure:"port"`
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Sensor SensorConfig `mapstructure:"sensor"`
	Auth   AuthConfig   `mapstructure:"auth"`
	WS     WSConfig     `mapstructure:"ws"`
	// Panel seeds the initial panel state, e.g. {brightness: 70, current_page: alarm}.
	Panel map[string]any `mapstructure:"panel"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SensorConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type AuthConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type WSConfig struct {
	// AllowedOrigins lists browser origins accepted on /ws; empty accepts all.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5001")
	v.SetDefault("db.path", "panel.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("sensor.interval", time.Second)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("ws.allowed_origins", []string{})
}

// Load reads configs/config.yml from each of dirs (the first found wins),
// applies SMART_PANEL_* environment overrides and validates the result.
// A missing config file is not an error.
func Load(dirs ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	if c.Sensor.Interval <= 0 {
		return fmt.Errorf("sensor.interval must be positive, got %s", c.Sensor.Interval)
	}
	if c.Auth.Enabled && c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key is required when auth.enabled is true")
	}
	return nil
}
