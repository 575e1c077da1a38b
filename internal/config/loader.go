package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RRTOP_INTERVAL.
const EnvPrefix = "RRTOP"

// Keys understood by Load. Flags use the same names with '-' for '_'.
const (
	KeyInterval = "interval"
	KeyLimit    = "limit"
	KeyLogFile  = "log_file"
)

// NewViper returns a viper instance wired for rrtop: defaults set and
// RRTOP_* environment variables picked up automatically.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// BindFlags attaches the interval, limit and log-file flags in fs to v so an
// explicitly set flag beats the environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyInterval: "interval",
		KeyLimit:    "limit",
		KeyLogFile:  "log-file",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Failed to bind --%s", name), "")
		}
	}
	return nil
}

// Load resolves a Config from v (flags > environment > defaults) and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	interval, err := parseInterval(v.GetString(KeyInterval))
	if err != nil {
		return nil, err
	}
	cfg.Interval = interval

	limit, err := parseLimit(v.GetString(KeyLimit))
	if err != nil {
		return nil, err
	}
	cfg.Limit = limit

	cfg.LogFile = ExpandTilde(strings.TrimSpace(v.GetString(KeyLogFile)))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInterval, DefaultInterval.String())
	v.SetDefault(KeyLimit, DefaultLimit)
	v.SetDefault(KeyLogFile, "")
}

// parseInterval accepts Go duration strings ("250ms", "1s").
func parseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", s),
			"Try something like 250ms, 1s, or 2s.")
	}
	return d, nil
}

func parseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a whole number of processes", s),
			fmt.Sprintf("Pick a number between 1 and %d.", MaxLimit))
	}
	return n, nil
}
