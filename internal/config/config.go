// Package config reads process settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tagcomposer/composer"
	"tagcomposer/status"
	"tagcomposer/storage"
)

type Config struct {
	Port          string
	Store         storage.Config
	StatusTimeout time.Duration
	HelpCount     int
	// DevStatic serves static files from disk instead of the embedded copy.
	DevStatic bool
}

// Load reads .env files (if any) and then the environment. Variables already
// set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	driver := strings.ToLower(getenv("STORE_DRIVER", "file"))
	defaultPath := "/data/tagcomposer.json"
	if driver == "sqlite" {
		defaultPath = "/data/tagcomposer.db"
	}

	return Config{
		Port: getenv("PORT", "8080"),
		Store: storage.Config{
			Driver:        driver,
			Path:          getenv("STORE_PATH", defaultPath),
			RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: getenv("REDIS_PASSWORD", ""),
			RedisDB:       ParseIntEnv("REDIS_DB", 0),
			RedisPrefix:   getenv("REDIS_PREFIX", "tagcomposer"),
		},
		StatusTimeout: ParseDurationEnv("STATUS_TIMEOUT", status.DefaultTimeout),
		HelpCount:     ParseIntEnv("TAG_HELP_COUNT", composer.DefaultHelpCount),
		DevStatic:     ParseBoolString(getenv("DEV_STATIC", ""), false),
	}, nil
}
