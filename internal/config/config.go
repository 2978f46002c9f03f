// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Cache       CacheConfig
	Redis       RedisConfig
	Media       MediaConfig
	AWS         AWSConfig
	Admin       AdminConfig
	Log         LogConfig
	Metrics     MetricsConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	BaseURL        string
	AllowedOrigins []string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout int // in seconds
	// StoreDriver selects the catalog backend: "mongo" or "memory".
	StoreDriver string
}

type DatabaseConfig struct {
	Driver       string // postgres or sqlite
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL int // in hours
}

type CacheConfig struct {
	Driver string // redis, memory or none
	TTL    int    // in seconds
	Prefix string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MediaConfig struct {
	Provider     string // cloudinary or s3
	BaseURL      string
	CloudName    string
	UploadPreset string
	Timeout      int // in seconds
	MaxUploadMB  int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

type MetricsConfig struct {
	Enabled bool
	Prefix  string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "unihub"),
			ConnectTimeout: getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10),
			StoreDriver:    getEnv("STORE_DRIVER", "mongo"),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "postgres"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "unihub"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:   getEnv("DB_SQLITE_PATH", "unihub.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenTTL: getEnvAsInt("JWT_ACCESS_TTL", 24), // 24 hours
		},
		Cache: CacheConfig{
			Driver: getEnv("CACHE_DRIVER", "memory"),
			TTL:    getEnvAsInt("CACHE_TTL", 60),
			Prefix: getEnv("CACHE_PREFIX", "unihub"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Media: MediaConfig{
			Provider:     getEnv("MEDIA_PROVIDER", "cloudinary"),
			BaseURL:      getEnv("MEDIA_BASE_URL", "https://api.cloudinary.com/v1_1"),
			CloudName:    getEnv("MEDIA_CLOUD_NAME", "ds2mbrzcn"),
			UploadPreset: getEnv("MEDIA_UPLOAD_PRESET", "real_unsigned"),
			Timeout:      getEnvAsInt("MEDIA_TIMEOUT", 120),
			MaxUploadMB:  getEnvAsInt("MEDIA_MAX_UPLOAD_MB", 100),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "unihub-media"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrator"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Prefix:  getEnv("METRICS_PREFIX", "unihub"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
		Frontend: FrontendConfig{
			BaseURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == defaultJWTSecret && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Driver == "postgres" && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Mongo.StoreDriver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("unsupported store driver %q", c.Mongo.StoreDriver)
	}

	switch c.Cache.Driver {
	case "redis", "memory", "none":
	default:
		return fmt.Errorf("unsupported cache driver %q", c.Cache.Driver)
	}

	switch c.Media.Provider {
	case "cloudinary":
		if c.Media.CloudName == "" || c.Media.UploadPreset == "" {
			return fmt.Errorf("media cloud name and upload preset are required")
		}
	case "s3":
		if c.AWS.S3Bucket == "" {
			return fmt.Errorf("AWS S3 bucket is required for the s3 media provider")
		}
	default:
		return fmt.Errorf("unsupported media provider %q", c.Media.Provider)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
