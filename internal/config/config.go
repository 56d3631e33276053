// Package config reads the CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// CLI captures the settings shared by the iso19115 subcommands. Flags
// override these values.
type CLI struct {
	Profile      string
	ProfilesFile string
	ThesauriFile string
	LogLevel     slog.Level
	LogFormat    string // "text" or "json"
	Concurrency  int
}

// DefaultProfile is used when ISO19115_PROFILE is unset.
const DefaultProfile = "iso19115-3"

// FromEnv builds the CLI config from ISO19115_* variables so main stays lean.
func FromEnv() (CLI, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (CLI, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	cfg := CLI{
		Profile:      get("ISO19115_PROFILE", DefaultProfile),
		ProfilesFile: get("ISO19115_PROFILES_FILE", ""),
		ThesauriFile: get("ISO19115_THESAURI_FILE", ""),
		LogFormat:    strings.ToLower(get("ISO19115_LOG_FORMAT", "text")),
		Concurrency:  4,
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(get("ISO19115_LOG_LEVEL", "info"))); err != nil {
		return CLI{}, fmt.Errorf("ISO19115_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return CLI{}, fmt.Errorf("ISO19115_LOG_FORMAT: want text or json, got %q", cfg.LogFormat)
	}
	if v := get("ISO19115_CONCURRENCY", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return CLI{}, fmt.Errorf("ISO19115_CONCURRENCY: want a positive integer, got %q", v)
		}
		cfg.Concurrency = n
	}
	return cfg, nil
}
