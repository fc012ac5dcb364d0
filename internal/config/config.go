package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// PlayerConfig identifies whose season is being tracked
type PlayerConfig struct {
	Name string
}

// LoggingConfig holds log level and optional file rotation settings
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ChartConfig controls where chart pages are written.
// An empty Dir disables chart output.
type ChartConfig struct {
	Dir string
}

// RedisConfig holds Redis connection configuration.
// An empty URL disables snapshot publishing.
type RedisConfig struct {
	URL string
}

// Config holds all application configuration
type Config struct {
	Player  PlayerConfig
	Logging LoggingConfig
	Charts  ChartConfig
	Redis   RedisConfig
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Player: PlayerConfig{
			Name: getEnv("PLAYER_NAME", "player"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			LogDir:     getEnv("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 10),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", false),
		},
		Charts: ChartConfig{
			Dir: getEnv("CHART_DIR", ""),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
	}
}

// PublishEnabled reports whether snapshots go to Redis
func (c *Config) PublishEnabled() bool {
	return c.Redis.URL != ""
}

// ChartsEnabled reports whether chart pages are written
func (c *Config) ChartsEnabled() bool {
	return c.Charts.Dir != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
