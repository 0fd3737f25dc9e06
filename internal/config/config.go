package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type SessionConfig struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "movie_catalog"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			CookieName: getEnvOrDefault("SESSION_COOKIE_NAME", "catalog_session"),
			Expiration: getDurationOrDefault("SESSION_EXPIRATION", 7*24*time.Hour),
			Secure:     getBoolOrDefault("SESSION_SECURE", false),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "posters"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
			PublicURL:       getEnvOrDefault("AWS_URL", "http://localhost:9000/posters"),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.MinIO.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
	}
	if c.MinIO.SecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
	}
	if c.MinIO.Endpoint == "" {
		return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
