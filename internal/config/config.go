// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/usestring/inferschema/pkg/infer"
)

// Inference defaults
const (
	DefaultMaxSamplesValue     = 100
	DefaultMaxSampleBytesValue = 2_000_000
	DefaultCacheMaxItemsValue  = 256
)

// Config holds all configuration for the MCP server.
type Config struct {
	ParallelThreshold int  // INFER_PARALLEL_THRESHOLD, default 8
	MaxSamples        int  // INFER_MAX_SAMPLES, default 100
	MaxSampleBytes    int  // INFER_MAX_SAMPLE_BYTES, default 2_000_000
	CacheMaxItems     int  // SCHEMA_CACHE_MAX_ITEMS, default 256
	DetectFormat      bool // DETECT_FORMAT_DEFAULT, default true

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ParallelThreshold: getEnvInt("INFER_PARALLEL_THRESHOLD", infer.DefaultParallelThreshold),
		MaxSamples:        getEnvInt("INFER_MAX_SAMPLES", DefaultMaxSamplesValue),
		MaxSampleBytes:    getEnvInt("INFER_MAX_SAMPLE_BYTES", DefaultMaxSampleBytesValue),
		CacheMaxItems:     getEnvInt("SCHEMA_CACHE_MAX_ITEMS", DefaultCacheMaxItemsValue),
		DetectFormat:      getEnvBool("DETECT_FORMAT_DEFAULT", true),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// InferOptions builds the inference options implied by the configuration.
func (c *Config) InferOptions() *infer.Options {
	return &infer.Options{
		DetectFormat:      c.DetectFormat,
		ParallelThreshold: c.ParallelThreshold,
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
