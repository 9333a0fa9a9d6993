package config

import (
	"os"
	"strings"
)

const (
	DefaultFormat       = "json"
	DefaultServeAddr    = "127.0.0.1:8080"
	DefaultMaxBodyBytes = 1 << 20
)

// Environment overrides for the serve section.
const (
	EnvServeAddr      = "QUIZCONV_ADDR"
	EnvAllowedOrigins = "QUIZCONV_ALLOWED_ORIGINS"
)

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	inputs := make([]string, 0, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		inputs = append(inputs, strings.TrimSpace(input))
	}
	cfg.Inputs = inputs

	cfg.Output.Dir = strings.TrimSpace(cfg.Output.Dir)
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}

	cfg.Export.DuckDB = strings.TrimSpace(cfg.Export.DuckDB)
	cfg.Export.XLSX = strings.TrimSpace(cfg.Export.XLSX)

	NormalizeServe(&cfg.Serve)
}

// NormalizeServe fills serve defaults and applies environment overrides.
func NormalizeServe(serve *ServeConfig) {
	if addr := strings.TrimSpace(os.Getenv(EnvServeAddr)); addr != "" {
		serve.Addr = addr
	}
	serve.Addr = strings.TrimSpace(serve.Addr)
	if serve.Addr == "" {
		serve.Addr = DefaultServeAddr
	}
	if origins := strings.TrimSpace(os.Getenv(EnvAllowedOrigins)); origins != "" {
		serve.AllowedOrigins = strings.Split(origins, ",")
	}
	serve.AllowedOrigins = normalizeStringSlice(serve.AllowedOrigins)
	if serve.MaxBodyBytes == 0 {
		serve.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

func normalizeStringSlice(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
