package config

import "time"

const (
	// DefaultInterval is the refresh period between snapshots.
	DefaultInterval = 250 * time.Millisecond
	// MinInterval is the shortest refresh period accepted.
	MinInterval = 50 * time.Millisecond
	// DefaultLimit is how many processes the table shows.
	DefaultLimit = 10
	// MaxLimit caps the process table size.
	MaxLimit = 100
)

// Config holds the resolved settings for a monitor session.
type Config struct {
	// Interval is how long the dashboard waits between refreshes.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Limit is the number of processes shown in the table.
	Limit int `yaml:"limit" mapstructure:"limit"`

	// LogFile receives the standard logger output while the TUI owns the
	// terminal. Empty means logging is discarded unless debug is enabled.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Limit:    DefaultLimit,
	}
}
