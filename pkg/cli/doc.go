/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the psmpchecker command line interface.
//
// The default command runs the diagnostic sequence; the logs command
// collects a support archive. Execute returns the process exit code so
// main stays a one-liner.
package cli
