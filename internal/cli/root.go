package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/rrtop/internal/config"
	"github.com/rileyhilliard/rrtop/internal/errors"
	"github.com/spf13/cobra"
)

// settings resolves flag values and RRTOP_* environment variables.
var settings = config.NewViper()

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "rrtop",
	Short: "Live CPU, memory and process dashboard",
	Long: `rrtop takes over the terminal and shows overall CPU usage, memory usage
and the busiest processes, refreshed every 250ms by default.

Press q or Esc to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(settings)
		if err != nil {
			return err
		}
		return monitorCommand(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	AddMonitorFlags(rootCmd)
	cobra.CheckErr(config.BindFlags(settings, rootCmd.PersistentFlags()))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && isUnknownCommandError(err) {
		return unknownCommandError(err)
	}
	return err
}

// isUnknownCommandError checks if the error is cobra's unknown command/flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of `unknown command "foo" for "rrtop"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

func unknownCommandError(err error) error {
	name := extractUnknownCommand(err)
	if name == "" || !strings.HasPrefix(err.Error(), "unknown command") {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"That flag isn't recognized",
			"Run 'rrtop --help' to see the available flags.")
	}

	msg := fmt.Sprintf("'%s' isn't an rrtop command", name)
	if suggestions := rootCmd.SuggestionsFor(name); len(suggestions) > 0 {
		return errors.WrapWithCode(err, errors.ErrConfig, msg,
			fmt.Sprintf("Did you mean 'rrtop %s'?", suggestions[0]))
	}
	return errors.WrapWithCode(err, errors.ErrConfig, msg,
		"Run 'rrtop --help' to see the available commands.")
}
