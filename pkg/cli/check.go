/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/TalMaIka/psmpchecker/pkg/checker"
	"github.com/TalMaIka/psmpchecker/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Run the PSMP diagnostic checks",
		Description: `Run the full diagnostic sequence:
  - support-matrix compatibility of the installed agent version
    against the detected Linux distribution
  - psmpsrv service status, including Vault connectivity
  - sshd service status
  - OpenSSH client version (7.7 or newer required)
  - sshd_config audit for the agent-managed authentication block

Findings are advisory: the command exits 0 after printing them. The only
fatal conditions are a missing/malformed support matrix and an absent
agent installation.

# Examples

Default diagnostic run with plain-text findings:
  psmpchecker check

Structured report to a file:
  psmpchecker check --format yaml --output report.yaml

Custom support matrix location:
  psmpchecker check --matrix /opt/psmp/versions.json`,
		Flags: []cli.Flag{
			matrixFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q (supported: %s)",
					outFormat, strings.Join(serializer.SupportedFormats(), ", "))
			}

			c := checker.New(version)
			c.MatrixPath = cmd.String("matrix")

			report, err := c.Run(ctx)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, report)
		},
	}
}
