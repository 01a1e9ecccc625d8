// Package config assembles the application configuration from .env files
// and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shirley/readingcoach/internal/lesson"
	"github.com/shirley/readingcoach/internal/llm"
)

// envFiles are loaded in order. Variables already set win, so earlier
// files take precedence over later ones.
var envFiles = []string{".env.local", ".env"}

type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string

	// LLM event log. Empty means the default data directory.
	DBPath string

	Lesson lesson.Config
	LLM    llm.Config
}

// Load reads .env files if present, then the environment. Missing values
// use defaults; only malformed values are errors.
func Load() (*Config, error) {
	for _, f := range envFiles {
		// Missing files are fine.
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("READINGCOACH_ENV", "development"),
		CORSOrigins: splitList(getEnvOrDefault("READINGCOACH_CORS_ORIGINS", "*")),
		DBPath:      os.Getenv("READINGCOACH_DB"),
		LLM:         llm.ConfigFromEnv(),
	}

	mode, err := lesson.ParseMode(os.Getenv("READINGCOACH_PARSE_MODE"))
	if err != nil {
		return nil, fmt.Errorf("READINGCOACH_PARSE_MODE: %w", err)
	}
	gate := getEnvOrDefault("READINGCOACH_GATE", lesson.GateComplete)
	if _, err := lesson.ParseGate(gate); err != nil {
		return nil, fmt.Errorf("READINGCOACH_GATE: %w", err)
	}

	cfg.Lesson = lesson.DefaultConfig()
	cfg.Lesson.Mode = mode
	cfg.Lesson.Gate = gate
	cfg.Lesson.Version = getEnvOrDefault("READINGCOACH_VERSION", lesson.BuildVersion)
	cfg.Lesson.StructuredOutput = getEnvAsBoolOrDefault("READINGCOACH_STRUCTURED_OUTPUT", false)
	cfg.Lesson.AllowDegraded = getEnvAsBoolOrDefault("READINGCOACH_ALLOW_DEGRADED", cfg.Lesson.AllowDegraded)
	cfg.Lesson.Timeout = cfg.LLM.Timeout
	cfg.Lesson.MaxTokens = cfg.LLM.MaxTokens
	cfg.Lesson.Temperature = cfg.LLM.Temperature

	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Production reports whether the production logger and gin mode apply.
func (c *Config) Production() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultVal string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
