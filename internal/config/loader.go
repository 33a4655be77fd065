package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	globalConfig *Config
	once         sync.Once
	configPath   string
)

// LoadConfig loads the configuration once and keeps it as the process-wide config
func LoadConfig(configFile string) (*Config, error) {
	var err error

	once.Do(func() {
		var cfg *Config
		cfg, err = Load(configFile)
		if err == nil {
			globalConfig = cfg
		}
		configPath = configFile
	})

	return globalConfig, err
}

// Load reads configFile (YAML) and environment overrides into a new Config.
// A missing file is not an error: defaults and environment variables are used.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	registerDefaults(v)

	// JWT_SECRET_KEY overrides jwt.secret_key, and so on
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// registerDefaults makes every scalar key known to viper so env overrides apply
// even when the key is absent from the file.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.production_mode", false)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "./database/patrimonio.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis_service.enabled", false)
	v.SetDefault("redis_service.host", "localhost")
	v.SetDefault("redis_service.port", 6379)
	v.SetDefault("redis_service.db", 0)
	v.SetDefault("redis_service.password", "")

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.access_expire_minutes", 30)
	v.SetDefault("jwt.refresh_expire_minutes", 1440)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.secret_question", "")
	v.SetDefault("admin.secret_answer", "")

	v.SetDefault("cors.allow_credentials", false)

	v.SetDefault("security.reset_max_attempts", 5)
	v.SetDefault("security.reset_window_seconds", 900)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// setDefaults fills values viper cannot default (slices) or that were zeroed explicitly
func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.Driver == DriverSQLite && cfg.Database.Path == "" {
		cfg.Database.Path = "./database/patrimonio.db"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.AccessExpireMinutes == 0 {
		cfg.JWT.AccessExpireMinutes = 30
	}
	if cfg.JWT.RefreshExpireMinutes == 0 {
		cfg.JWT.RefreshExpireMinutes = 1440
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"Authorization", "Content-Type"}
	}
	if cfg.Security.ResetMaxAttempts == 0 {
		cfg.Security.ResetMaxAttempts = 5
	}
	if cfg.Security.ResetWindowSeconds == 0 {
		cfg.Security.ResetWindowSeconds = 900
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// validateConfig rejects configurations the server cannot start with
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key must not be empty")
	}

	switch cfg.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	if cfg.Admin.Password == "" {
		return errors.New("admin.password must not be empty")
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path != ":memory:" {
			dbDir := filepath.Dir(cfg.Database.Path)
			if _, err := os.Stat(dbDir); os.IsNotExist(err) {
				if err := os.MkdirAll(dbDir, 0755); err != nil {
					return fmt.Errorf("create database directory: %w", err)
				}
			}
		}
	case DriverPostgres:
		if cfg.Database.DSN == "" {
			return errors.New("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	return nil
}

// GetConfig returns the process-wide config
func GetConfig() *Config {
	return globalConfig
}

// ReloadConfig re-reads the file LoadConfig was called with
func ReloadConfig() (*Config, error) {
	if configPath == "" {
		return nil, errors.New("config path not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return cfg, nil
}
