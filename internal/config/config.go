// Package config loads restcli defaults from RESTCLI_* environment variables,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Color modes accepted by RESTCLI_COLOR and the -color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultEnvFile is the dotenv file read by Load when no file is named.
const DefaultEnvFile = ".env"

// Config holds all configurable defaults.
// CLI flags take precedence over these values.
type Config struct {
	// Rendering.
	Indent    int
	Color     string
	TrueWord  string
	FalseWord string
	Normalize bool

	// MCP server.
	CacheSize     int
	ListLimit     int
	MaxLimit      int
	MaxInlineSize int64
}

// Load reads the given dotenv files (DefaultEnvFile when none are named)
// into the process environment, then builds a Config from it. Variables
// already set in the environment win over the files. A missing file is not
// an error; a malformed one logs a warning.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("could not load env file", "file", f, "error", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from RESTCLI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func FromEnv() *Config {
	return &Config{
		Indent:        envInt("RESTCLI_INDENT", 2),
		Color:         envColor("RESTCLI_COLOR"),
		TrueWord:      envString("RESTCLI_TRUE_WORD", "yes"),
		FalseWord:     envString("RESTCLI_FALSE_WORD", "no"),
		Normalize:     envBool("RESTCLI_NORMALIZE", false),
		CacheSize:     envInt("RESTCLI_CACHE_SIZE", 64),
		ListLimit:     envInt("RESTCLI_LIST_LIMIT", 100),
		MaxLimit:      envInt("RESTCLI_MAX_LIMIT", 1000),
		MaxInlineSize: int64(envInt("RESTCLI_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

// ValidColor reports whether mode is a recognised color mode.
func ValidColor(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

func envString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envColor(key string) string {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return ColorAuto
	}
	if !ValidColor(v) {
		slog.Warn("invalid color env var, using default", "key", key, "value", v, "default", ColorAuto)
		return ColorAuto
	}
	return v
}
