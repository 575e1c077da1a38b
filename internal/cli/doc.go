// Package cli implements the rrtop command-line interface.
//
// The package is organized around Cobra commands that resolve settings
// through internal/config and hand off to internal/monitor or
// internal/metrics for the actual work.
//
// # Command Structure
//
//	rrtop                  - Full-screen dashboard (needs a terminal)
//	rrtop snapshot         - One reading printed as YAML or JSON
//	rrtop version          - Build information
//	rrtop completion SHELL - Shell completion script
//
// # Flag Handling
//
// --interval, --limit and --log-file are persistent flags on the root
// command, so snapshot sees the same values. Each can also be set through
// RRTOP_INTERVAL, RRTOP_LIMIT and RRTOP_LOG_FILE; an explicit flag wins.
//
// # Logging
//
// While the dashboard owns the terminal the standard logger is either
// discarded or redirected to --log-file. Setting RRTOP_DEBUG without a log
// file writes to rrtop-debug.log in the working directory.
//
// # Errors
//
// Commands return structured errors from internal/errors. Execute prints
// them to stderr and exits 1. snapshot --format json also writes the error
// as a JSON envelope on stdout.
package cli
