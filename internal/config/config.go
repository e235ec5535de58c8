package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SummarizerOptions controls the hybrid essence extraction. The generative
// path is optional: without an API key the deterministic fallback handles
// everything.
type SummarizerOptions struct {
	EnableGenerative   bool
	MinGenerativeLen   int // below this the generative call is not worth the cost
	MaxAnnotationChars int
	MaxLegalActChars   int
}

type Config struct {
	// Gemini settings
	GeminiAPIKey      string
	MaxGeminiRequests int // maximum Gemini requests per run (0 = unlimited)

	Summarizer SummarizerOptions

	// Feed settings
	FeedsConfigPath string
	MaxHeadlines    int

	// Scraper settings
	RequestTimeout time.Duration

	// App settings
	Debug      bool
	OutputPath string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		FeedsConfigPath:   "configs/feeds.yaml",
		MaxHeadlines:      5,
		MaxGeminiRequests: 10,
		RequestTimeout:    15 * time.Second,
		OutputPath:        "dashboard.html",
		Summarizer: SummarizerOptions{
			MinGenerativeLen:   200,
			MaxAnnotationChars: 2000,
			MaxLegalActChars:   1500,
		},
	}

	// Load from environment
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Summarizer.EnableGenerative = cfg.GeminiAPIKey != ""

	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)

	if v := os.Getenv("MAX_HEADLINES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxHeadlines = val
		}
	}
	if v := os.Getenv("MAX_GEMINI_REQUESTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxGeminiRequests = val
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("MIN_GENERATIVE_LEN"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.Summarizer.MinGenerativeLen = val
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) Validate() error {
	// GEMINI_API_KEY is deliberately not required: a missing key means the
	// summarizer runs fallback-only, which is a normal configuration.
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if c.Summarizer.MaxAnnotationChars <= 0 || c.Summarizer.MaxLegalActChars <= 0 {
		return fmt.Errorf("summarizer char limits must be positive")
	}
	return nil
}
