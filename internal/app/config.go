package app

import (
	"errors"
	"fmt"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrConfig indicates an invalid run configuration.
var ErrConfig = errors.New("app: invalid configuration")

// Config holds everything a Run needs.
type Config struct {
	TreePath    string
	ProfilePath string
	Builds      []string

	Refine  int
	Workers int

	Format  string
	OutPath string

	LogLevel  string
	LogFormat string

	// ListKeystones prints the keystone listing instead of optimising.
	ListKeystones bool
}

// NewConfig validates cfg and normalises its enumerations.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.TreePath == "" {
		return nil, fmt.Errorf("%w: a tree file is required", ErrConfig)
	}
	if cfg.ProfilePath == "" && !cfg.ListKeystones {
		return nil, fmt.Errorf("%w: a profile file is required", ErrConfig)
	}
	if cfg.Refine < 0 {
		return nil, fmt.Errorf("%w: refine must not be negative", ErrConfig)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive", ErrConfig)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("%w: format must be 'json' or 'text'", ErrConfig)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("%w: log-format must be 'json' or 'console'", ErrConfig)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn' or 'error'", ErrConfig)
	}

	return &cfg, nil
}
