package config

import (
	"fmt"

	"github.com/rileyhilliard/rrtop/internal/errors"
)

// Validate checks the resolved config and returns a CONFIG error describing
// the first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "No configuration to validate", "")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short (minimum %s)", cfg.Interval, MinInterval),
			"Faster refreshes mostly measure the monitor itself. Try 250ms or more.")
	}

	if cfg.Limit < 1 || cfg.Limit > MaxLimit {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Process limit must be between 1 and %d, got %d", MaxLimit, cfg.Limit),
			"Use --limit 10 for the default table size.")
	}

	return nil
}
