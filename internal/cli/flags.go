package cli

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rrtop/internal/config"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/spf13/cobra"
)

// Output formats for 'rrtop snapshot'.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// AddMonitorFlags registers the flags shared by the dashboard and snapshot.
// They are persistent so subcommands inherit them.
func AddMonitorFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("interval", config.DefaultInterval.String(), "refresh interval (e.g., 250ms, 1s) [$RRTOP_INTERVAL]")
	flags.Int("limit", config.DefaultLimit, "number of processes to show [$RRTOP_LIMIT]")
	flags.String("log-file", "", "write logs to this file while the dashboard runs [$RRTOP_LOG_FILE]")
}

// ParseFormat normalizes a --format value.
func ParseFormat(flag string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(flag)); f {
	case "", FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a supported output format", flag),
			"Use --format yaml or --format json.")
	}
}
