package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"procurement/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	x_bcrypt "golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort string
	Database postgres.DatabaseConfig

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// DigestSchedule is a robfig/cron spec for the pending work digest. Empty disables it.
	DigestSchedule string
}

var loadDotEnvOnce sync.Once

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func LoadConfig() (Config, error) {
	var dotEnvErr error
	loadDotEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotEnvErr = fmt.Errorf("load .env: %w", err)
		}
	})
	if dotEnvErr != nil {
		return Config{}, dotEnvErr
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(x_bcrypt.DefaultCost)))
	if err != nil {
		return Config{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
	}

	cfg := Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Database: postgres.DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", postgres.DriverPostgres),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         ttl,
		BcryptCost:     cost,
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "@every 1h"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
