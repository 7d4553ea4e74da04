package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Planning PlanningConfig
	Cards    CardsConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// BackendConfig describes the external finance API every collection is
// fetched from.
type BackendConfig struct {
	BaseURL         string
	Timeout         time.Duration
	MaxFailures     int
	BreakerReset    time.Duration
	BreakerHalfOpen int
}

// PlanningConfig tunes the budget reconciliation policy. The thresholds are
// presentation policy and deliberately kept out of the arithmetic itself.
type PlanningConfig struct {
	DuplicatePolicy string
	WarnRatio       float64
	OverRatio       float64
}

type CardsConfig struct {
	WarnPercent float64
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: getSliceEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Backend: BackendConfig{
			BaseURL:         getEnv("BACKEND_BASE_URL", "http://localhost:3000/api/v1"),
			Timeout:         getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
			MaxFailures:     getIntEnv("BACKEND_BREAKER_MAX_FAILURES", 5),
			BreakerReset:    getDurationEnv("BACKEND_BREAKER_RESET", 30*time.Second),
			BreakerHalfOpen: getIntEnv("BACKEND_BREAKER_HALF_OPEN_SUCCESSES", 3),
		},
		Planning: PlanningConfig{
			DuplicatePolicy: getEnv("PLANNING_DUPLICATE_POLICY", "newest"),
			WarnRatio:       getFloatEnv("PLANNING_WARN_RATIO", 0.85),
			OverRatio:       getFloatEnv("PLANNING_OVER_RATIO", 1.0),
		},
		Cards: CardsConfig{
			WarnPercent: getFloatEnv("CARDS_WARN_PERCENT", 80),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
