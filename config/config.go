// Package config centralizes environment parsing so the rest of the app never
// touches os.Getenv directly.
package config

import (
	"fmt"
	"os"
	"strings"
)

const AvatarSize = 96

const (
	defaultPageLimit = 2
	maxPageLimit     = 10
	defaultMaxConns  = 50
)

type Config struct {
	Port            string
	GinMode         string
	FrontendOrigins []string

	// DBHost empty selects the in-memory store (local development).
	DBHost     string
	DBUser     string
	DBPass     string
	DBName     string
	DBMaxConns int

	ImageBucket string

	// Page window contract for post and comment listings. Group and follow
	// listings are returned unpaginated.
	PageLimit    int
	PageMaxLimit int
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return nil, fmt.Errorf("$PORT must be set")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "blogline"
	}

	return &Config{
		Port:            port,
		GinMode:         os.Getenv("GIN_MODE"),
		FrontendOrigins: strings.Split(os.Getenv("FE_ORIGINS"), ";"),
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"),
		DBName:          dbName,
		DBMaxConns:      defaultMaxConns,
		ImageBucket:     os.Getenv("IMAGE_BUCKET"),
		PageLimit:       defaultPageLimit,
		PageMaxLimit:    maxPageLimit,
	}, nil
}

// DSN renders the MySQL connection string for the configured database.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=true&parseTime=true",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName)
}
