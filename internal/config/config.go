package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPass           string
	DBName           string
	ServerPort       string
	RedisURL         string
	Env              string
	RedisTTL         time.Duration
	MinioURL         string
	MinioUser        string
	MinioPassword    string
	MinioBucket      string
	ClaimCooldown    time.Duration
	ArchiveRetention time.Duration
}

func LoadConfig() Config {
	return Config{
		DBHost:           getEnv("DB_HOST", "postgres"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPass:           getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "db_bingo"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RedisURL:         getEnv("REDIS_URL", "redis:6379"),
		Env:              getEnv("ENV", "dev"),
		RedisTTL:         getEnvAsDuration("REDIS_TTL", 5*time.Minute),
		MinioURL:         getEnv("MINIO_URL", "localhost:9000"),
		MinioUser:        getEnv("MINIO_USER", "minioadmin"),
		MinioPassword:    getEnv("MINIO_PASSWORD", "minioadmin"),
		MinioBucket:      getEnv("MINIO_BUCKET", "bingo-claim-archive"),
		ClaimCooldown:    getEnvAsDuration("CLAIM_COOLDOWN", 30*time.Second),
		ArchiveRetention: getEnvAsDuration("ARCHIVE_RETENTION", 720*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
