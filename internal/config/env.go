package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDays   = "GILDEDROSE_DAYS"
	EnvConfig = "GILDEDROSE_CONFIG"
)

// LoadDotEnv reads a .env file into the process environment.
// A missing file is fine; variables already set win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv applies environment overrides on top of cfg. GILDEDROSE_DAYS
// is used when it is a non-negative integer and ignored otherwise.
func FromEnv(cfg *Config) {
	if val, ok := getEnvInt(EnvDays); ok && val >= 0 {
		cfg.Simulation.Days = val
	}
}

// PathFromEnv returns the config file named by GILDEDROSE_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv(EnvConfig)
}

func getEnvInt(key string) (int, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return num, true
}
