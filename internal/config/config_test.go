package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 30*time.Second, cfg.ClaimCooldown)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("CLAIM_COOLDOWN", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsDuration("CLAIM_COOLDOWN", time.Minute))

	t.Setenv("CLAIM_COOLDOWN", "not-a-duration")
	assert.Equal(t, time.Minute, getEnvAsDuration("CLAIM_COOLDOWN", time.Minute))
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost: "localhost",
		DBPort: "5433",
		DBUser: "bingo",
		DBPass: "secret",
		DBName: "db_bingo",
	}

	assert.Equal(t,
		"host=localhost user=bingo password=secret dbname=db_bingo port=5433 sslmode=disable",
		cfg.PostgresDSN(),
	)
}
