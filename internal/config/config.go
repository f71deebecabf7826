package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is built once at process start and passed explicitly into the
// components that need it. Nothing reads the environment after Load returns.
type Config struct {
	Port string

	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Auth    AuthConfig
	Storage StorageConfig
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type AuthConfig struct {
	// JWTSecret signs every issued token; rotating it invalidates all
	// outstanding tokens.
	JWTSecret     string
	TokenLifetime time.Duration
}

const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

type StorageConfig struct {
	// Backend selects the blob store: "local" or "s3".
	Backend        string
	LocalDir       string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
}

func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "hivedesk"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenLifetime: 30 * time.Minute,
		},
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			LocalDir:       getEnv("UPLOAD_DIR", "uploads"),
			S3Bucket:       os.Getenv("S3_BUCKET"),
			S3Region:       getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:     os.Getenv("S3_ENDPOINT"),
			S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
			S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
			S3UsePathStyle: getEnv("S3_USE_PATH_STYLE", "false") == "true",
		},
	}

	if minutes := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); minutes != "" {
		m, err := strconv.Atoi(minutes)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
		}
		cfg.Auth.TokenLifetime = time.Duration(m) * time.Minute
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Storage.Backend == StorageBackendS3 && cfg.Storage.S3Bucket == "" {
		return Config{}, fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
