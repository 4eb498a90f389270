/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
// It is the single seam between the checkers and the OS: tests substitute
// a fake, production code uses ExecRunner.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and returns its combined stdout/stderr as a
// trimmed string. Combined output matters here: ssh prints its version
// banner to stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
