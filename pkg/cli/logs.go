/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/TalMaIka/psmpchecker/pkg/bundle"
)

func logsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "logs",
		EnableShellCompletion: true,
		Usage:                 "Collect PSMP and system logs into a support archive",
		Description: `Copy the PSMP log directories, SSH/PAM configuration, and relevant
system logs into a zip archive named PSMP_Logs_<MM.DD.YY>.zip in the
current directory (or --output-dir).

Missing sources are reported and skipped; collection failures are
reported without crashing. This mode always exits with status 1 after
attempting collection.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"d"},
				Usage:   "directory the archive is written to (default: current directory)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			c := bundle.New()
			c.OutDir = cmd.String("output-dir")

			res, err := c.Collect(ctx)
			if err != nil {
				// Soft failure: report, keep the fixed exit status.
				fmt.Printf("An error occurred: %v\n", err)
				return errLogsOnly
			}

			for _, skipped := range res.Skipped {
				fmt.Printf("Folder not found: %s\n", skipped)
			}
			fmt.Printf("Logs copied and zip file created: %s\n", res.ArchivePath)

			return errLogsOnly
		},
	}
}
