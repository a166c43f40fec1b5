package session

import (
	"os"
	"strconv"
)

// Config holds session tuning values.
type Config struct {
	// ExamQuestionCount is the initial number of questions requested for a
	// Test-Exam, clamped to the working set size. Default: 5.
	ExamQuestionCount int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ExamQuestionCount: 5,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or invalid values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MCQDRILL_EXAM_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ExamQuestionCount = n
		}
	}

	return cfg
}
