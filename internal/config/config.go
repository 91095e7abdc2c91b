package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "BANKAPP"

type HTTPConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type StoreConfig struct {
	Backend       string        `mapstructure:"backend"`
	FilePath      string        `mapstructure:"file_path"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPrefix   string        `mapstructure:"redis_prefix"`
	EncryptionKey string        `mapstructure:"encryption_key"`
	CacheSize     int           `mapstructure:"cache_size"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type BiometricConfig struct {
	Platform       string        `mapstructure:"platform"`
	Kind           string        `mapstructure:"kind"`
	Available      bool          `mapstructure:"available"`
	ChallengeDelay time.Duration `mapstructure:"challenge_delay"`
	FailureRate    float64       `mapstructure:"failure_rate"`
}

type AuthConfig struct {
	LoginDelay time.Duration `mapstructure:"login_delay"`
}

type Config struct {
	Env       string          `mapstructure:"env"`
	LogLevel  string          `mapstructure:"log_level"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Store     StoreConfig     `mapstructure:"store"`
	Biometric BiometricConfig `mapstructure:"biometric"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Load reads an optional YAML file and overlays BANKAPP_* environment
// variables, e.g. BANKAPP_STORE_BACKEND for store.backend.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("http.port must be positive")
	}
	switch c.Store.Backend {
	case StoreMemory:
	case StoreFile:
		if strings.TrimSpace(c.Store.FilePath) == "" {
			return fmt.Errorf("store.file_path required for the file backend")
		}
	case StoreRedis:
		if strings.TrimSpace(c.Store.RedisAddr) == "" {
			return fmt.Errorf("store.redis_addr required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	if c.Store.EncryptionKey != "" && len(c.Store.EncryptionKey) < 32 {
		return fmt.Errorf("store.encryption_key must be at least 32 characters")
	}
	if c.Biometric.FailureRate < 0 || c.Biometric.FailureRate > 1 {
		return fmt.Errorf("biometric.failure_rate must be within [0, 1]")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "30s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("store.backend", StoreMemory)
	v.SetDefault("store.file_path", "data/secure_store.json")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", "mauibank:secure:")
	v.SetDefault("store.encryption_key", "")
	v.SetDefault("store.cache_size", 64)
	v.SetDefault("store.cache_ttl", "5m")
	v.SetDefault("biometric.platform", "simulated")
	v.SetDefault("biometric.kind", "FINGERPRINT")
	v.SetDefault("biometric.available", true)
	v.SetDefault("biometric.challenge_delay", "0s")
	v.SetDefault("biometric.failure_rate", 0.0)
	v.SetDefault("auth.login_delay", "1s")
}
