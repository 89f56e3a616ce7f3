package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if ASCENT_CONFIG is set
//  3. env (prefix ASCENT_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("ASCENT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ASCENT_ADDR, ASCENT_DEFAULT_TOP_N, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("ASCENT_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "ascent_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultTopN < 1:
		return fmt.Errorf("%w: default_top_n must be positive", ErrInvalidConfig)
	case c.MaxTopN < c.DefaultTopN:
		return fmt.Errorf("%w: max_top_n must be >= default_top_n", ErrInvalidConfig)
	case c.ResumeMinWords < 1 || c.ResumeMaxWords <= c.ResumeMinWords:
		return fmt.Errorf("%w: resume word band is inverted", ErrInvalidConfig)
	}
	for level, weeks := range c.GapLevelWeeks {
		if weeks < 1 {
			return fmt.Errorf("%w: gap_level_weeks[%s] must be positive", ErrInvalidConfig, level)
		}
	}
	return nil
}
