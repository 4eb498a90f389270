/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/TalMaIka/psmpchecker/pkg/checker"
	"github.com/TalMaIka/psmpchecker/pkg/logging"
	"github.com/TalMaIka/psmpchecker/pkg/matrix"
)

const name = "psmpchecker"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags.
var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("PSMP_LOG_LEVEL"),
	}

	matrixFlag = &cli.StringFlag{
		Name:    "matrix",
		Aliases: []string{"m"},
		Usage:   "path to the support matrix JSON file",
		Value:   matrix.DefaultPath,
		Sources: cli.EnvVars("PSMP_MATRIX"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "output format: text, json, yaml, table",
		Value:   "text",
	}
)

// errLogsOnly marks completion of log-collection mode, which always exits
// with status 1 regardless of outcome.
var errLogsOnly = errors.New("log collection finished")

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		switch {
		case errors.Is(err, errLogsOnly):
			return 1
		case errors.Is(err, checker.ErrAgentNotInstalled):
			fmt.Println("[+] No PSMP version found.")
			return 1
		default:
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "PSMP compatibility and health checker",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `Checks whether the installed PSMP agent is certified for the current
Linux distribution, reports psmpsrv/sshd service health, validates the
OpenSSH client version, audits sshd_config, and bundles diagnostic logs
for support escalation.

Run without arguments for the full diagnostic sequence, or use the logs
command to collect a support archive.`,
		Flags:          []cli.Flag{logLevelFlag},
		DefaultCommand: "check",
		Commands: []*cli.Command{
			checkCmd(),
			logsCmd(),
		},
	}
}

// initLogger configures slog after flag parsing so --log-level takes
// effect before any command logic runs.
func initLogger(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)
}
