package config

import (
	"os"
	"strconv"
	"time"

	"liebrero-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	JWTIssuer       string
	JWTExpiry       time.Duration
	StorageEndpoint string
	StorageRegion   string
	StorageBucket   string
	StorageKey      string
	StorageSecret   string
	StorageSSL      bool
	MaxFileSize     int64
}

// NewConfig creates a new configuration instance from environment variables.
// PUERTO is kept as a fallback for the legacy deployments.
func NewConfig() domain.Config {
	return &AppConfig{
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("PUERTO", "3000")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		MongoURI:        getEnvOrDefault("MONGODB_URI", getEnvOrDefault("MONGO_URI", "")),
		MongoDatabase:   getEnvOrDefault("MONGODB_DATABASE", "liebrero"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "change-me-in-production"),
		JWTIssuer:       getEnvOrDefault("JWT_ISSUER", "LIEBRERA"),
		JWTExpiry:       getEnvDurationOrDefault("JWT_EXPIRES", 24*time.Hour),
		StorageEndpoint: getEnvOrDefault("SPACES_ENDPOINT", ""),
		StorageRegion:   getEnvOrDefault("SPACES_REGION", ""),
		StorageBucket:   getEnvOrDefault("SPACES_BUCKET", ""),
		StorageKey:      getEnvOrDefault("SPACES_KEY", ""),
		StorageSecret:   getEnvOrDefault("SPACES_SECRET", ""),
		StorageSSL:      getEnvBoolOrDefault("SPACES_SSL", true),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 10*1024*1024), // 10MB default
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMongoURI returns the MongoDB connection URI
func (c *AppConfig) GetMongoURI() string {
	return c.MongoURI
}

// GetMongoDatabase returns the MongoDB database name
func (c *AppConfig) GetMongoDatabase() string {
	return c.MongoDatabase
}

// GetJWTSecret returns the token signing secret
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

// GetJWTIssuer returns the token issuer
func (c *AppConfig) GetJWTIssuer() string {
	return c.JWTIssuer
}

// GetJWTExpiry returns the token lifetime
func (c *AppConfig) GetJWTExpiry() time.Duration {
	return c.JWTExpiry
}

// GetStorageEndpoint returns the object-storage endpoint host
func (c *AppConfig) GetStorageEndpoint() string {
	return c.StorageEndpoint
}

// GetStorageRegion returns the object-storage region
func (c *AppConfig) GetStorageRegion() string {
	return c.StorageRegion
}

// GetStorageBucket returns the bucket name
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetStorageKey returns the object-storage access key
func (c *AppConfig) GetStorageKey() string {
	return c.StorageKey
}

// GetStorageSecret returns the object-storage secret key
func (c *AppConfig) GetStorageSecret() string {
	return c.StorageSecret
}

// GetStorageSSL returns whether the object-storage client uses TLS
func (c *AppConfig) GetStorageSSL() bool {
	return c.StorageSSL
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
