package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type FlowMode string

const (
	ModeReal FlowMode = "real"
	ModeDemo FlowMode = "demo"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Flow       FlowConfig
	Validation ValidationConfig
	Storage    StorageConfig
	Session    SessionConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
}

type GeminiConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
	MaxAttempts     int
}

type FlowConfig struct {
	Mode      FlowMode
	DemoDelay time.Duration
	PromptDir string
}

// Bounds is a rune-length range for one free-text field. Max 0 means unbounded.
type Bounds struct {
	Min int
	Max int
}

type ValidationConfig struct {
	RankResumeText         Bounds
	RankJobDescriptionText Bounds
	SuggestResumeContent   Bounds
	SuggestJobDescription  Bounds
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type SessionConfig struct {
	CookieName string
	MaxAge     time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3001"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			BaseURL:         getEnv("GEMINI_BASE_URL", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 4096)),
			Timeout:         getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
			MaxAttempts:     getEnvAsInt("GEMINI_MAX_ATTEMPTS", 1),
		},
		Flow: FlowConfig{
			Mode:      FlowMode(strings.ToLower(getEnv("FLOW_MODE", string(ModeReal)))),
			DemoDelay: getEnvAsDuration("DEMO_DELAY", "1500ms"),
			PromptDir: getEnv("PROMPT_DIR", ""),
		},
		Validation: ValidationConfig{
			RankResumeText: Bounds{
				Min: getEnvAsInt("RANK_RESUME_MIN", 100),
				Max: getEnvAsInt("RANK_RESUME_MAX", 5000),
			},
			RankJobDescriptionText: Bounds{
				Min: getEnvAsInt("RANK_JOB_MIN", 50),
				Max: getEnvAsInt("RANK_JOB_MAX", 5000),
			},
			SuggestResumeContent: Bounds{
				Min: getEnvAsInt("SUGGEST_RESUME_MIN", 50),
				Max: getEnvAsInt("SUGGEST_RESUME_MAX", 0),
			},
			SuggestJobDescription: Bounds{
				Min: getEnvAsInt("SUGGEST_JOB_MIN", 10),
				Max: getEnvAsInt("SUGGEST_JOB_MAX", 0),
			},
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "user"),
			MaxAge:     getEnvAsDuration("SESSION_MAX_AGE", "720h"),
		},
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Flow.Mode {
	case ModeReal:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when FLOW_MODE=%s", ModeReal)
		}
	case ModeDemo:
	default:
		return fmt.Errorf("unknown FLOW_MODE %q (expected %q or %q)", c.Flow.Mode, ModeReal, ModeDemo)
	}

	// Ranking input must never be empty, whatever the table says.
	if c.Validation.RankResumeText.Min < 1 || c.Validation.RankJobDescriptionText.Min < 1 {
		return fmt.Errorf("ranking minimum lengths must be at least 1")
	}

	for name, b := range map[string]Bounds{
		"RANK_RESUME":    c.Validation.RankResumeText,
		"RANK_JOB":       c.Validation.RankJobDescriptionText,
		"SUGGEST_RESUME": c.Validation.SuggestResumeContent,
		"SUGGEST_JOB":    c.Validation.SuggestJobDescription,
	} {
		if b.Min < 0 || b.Max < 0 {
			return fmt.Errorf("%s bounds must not be negative", name)
		}
		if b.Max > 0 && b.Max < b.Min {
			return fmt.Errorf("%s_MAX (%d) is below %s_MIN (%d)", name, b.Max, name, b.Min)
		}
	}

	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}

func (c *Config) IsDemo() bool {
	return c.Flow.Mode == ModeDemo
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
