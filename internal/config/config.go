package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvListenAddr  = "SIERPINSKI_LISTEN"
	EnvLoadTimeout = "SIERPINSKI_LOAD_TIMEOUT"
	EnvStdioLog    = "SIERPINSKI_STDIO_LOG"
	EnvSeed        = "SIERPINSKI_SEED"
)

// DefaultLoadTimeout bounds the sprite load unless overridden.
const DefaultLoadTimeout = 10 * time.Second

// Config holds the settings that may come from the environment. Flags in
// main use these values as their defaults.
//
// An empty ListenAddr disables the preview server. A zero LoadTimeout waits
// for the sprite indefinitely. A zero Seed draws colours from the
// process-wide random source.
type Config struct {
	ListenAddr  string
	LoadTimeout time.Duration
	StdioLog    string
	Seed        uint64
}

func Default() Config {
	return Config{LoadTimeout: DefaultLoadTimeout}
}

// FromEnv overlays environment variables on defaults.
func FromEnv(defaults Config) (Config, error) {
	return fromLookup(defaults, os.LookupEnv)
}

func fromLookup(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if raw, ok := lookup(EnvListenAddr); ok {
		cfg.ListenAddr = raw
	}
	if raw, ok := lookup(EnvStdioLog); ok {
		cfg.StdioLog = raw
	}
	if raw, ok := lookup(EnvLoadTimeout); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a duration (got %q): %w", EnvLoadTimeout, raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("%s must not be negative (got %q)", EnvLoadTimeout, raw)
		}
		cfg.LoadTimeout = d
	}
	if raw, ok := lookup(EnvSeed); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an unsigned integer (got %q): %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
