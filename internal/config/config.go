package config

import (
	"fmt"
	"time"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis_service"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress returns host:port
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig database configuration.
// Path is used by the sqlite driver, DSN by postgres.
type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"`
	Path        string `mapstructure:"path"`
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig Redis configuration
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// GetAddress returns the Redis address
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig JWT configuration
type JWTConfig struct {
	SecretKey            string `mapstructure:"secret_key"`
	Algorithm            string `mapstructure:"algorithm"`
	AccessExpireMinutes  int    `mapstructure:"access_expire_minutes"`
	RefreshExpireMinutes int    `mapstructure:"refresh_expire_minutes"`
}

// GetAccessExpireDuration access token lifetime
func (j *JWTConfig) GetAccessExpireDuration() time.Duration {
	return time.Duration(j.AccessExpireMinutes) * time.Minute
}

// GetRefreshExpireDuration refresh token lifetime
func (j *JWTConfig) GetRefreshExpireDuration() time.Duration {
	return time.Duration(j.RefreshExpireMinutes) * time.Minute
}

// AdminConfig bootstrap administrator account
type AdminConfig struct {
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	SecretQuestion string `mapstructure:"secret_question"`
	SecretAnswer   string `mapstructure:"secret_answer"`
}

// CORSConfig CORS configuration
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// SecurityConfig password reset throttling
type SecurityConfig struct {
	ResetMaxAttempts   int `mapstructure:"reset_max_attempts"`
	ResetWindowSeconds int `mapstructure:"reset_window_seconds"`
}

// GetResetWindow window during which reset attempts are counted
func (s *SecurityConfig) GetResetWindow() time.Duration {
	return time.Duration(s.ResetWindowSeconds) * time.Second
}

// LogConfig logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
