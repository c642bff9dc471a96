package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SaveDir      string
	AutoDayEvery time.Duration
	CityName     string
	AutoSave     bool
}

func LoadFromEnv() Config {
	return Config{
		SaveDir:      envDefault("CITYSIM_SAVE_DIR", defaultSaveDir()),
		AutoDayEvery: envDurationDefault("CITYSIM_AUTO_DAY_EVERY", 2*time.Second),
		CityName:     envDefault("CITYSIM_CITY_NAME", "MojeMiasto"),
		AutoSave:     envBoolDefault("CITYSIM_AUTO_SAVE", true),
	}
}

func defaultSaveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".citysim"
	}
	return filepath.Join(home, ".citysim")
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envBoolDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
