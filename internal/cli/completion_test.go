package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRootCmd creates a bare root command so generated scripts don't
// depend on package state.
func newTestRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rrtop",
		Short: "Live CPU, memory and process dashboard",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "# bash completion for rrtop")
	assert.Contains(t, output, "__rrtop_debug")
	assert.Contains(t, output, "complete -o default -F __start_rrtop rrtop")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenZshCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "#compdef rrtop")
	assert.Contains(t, output, "_rrtop()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenFishCompletion(&buf, true))
	output := buf.String()

	assert.Contains(t, output, "fish completion for rrtop")
	assert.Contains(t, output, "complete -c rrtop")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenPowerShellCompletion(&buf))
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_rrtop", "should have start function")
	assert.Contains(t, output, "_rrtop_root_command", "should have root command function")

	// Commands with local flags get their own functions.
	assert.Contains(t, output, "_rrtop_snapshot()")
	assert.Contains(t, output, "_rrtop_version()")
	assert.Contains(t, output, "_rrtop_completion()")
}

func TestCompletionCommandWritesScript(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	err := execute(t.Context(), []string{"completion", "zsh"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#compdef rrtop")
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	err := execute(t.Context(), []string{"completion", "tcsh"})

	assert.Error(t, err)
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}
