/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package pkgdb queries the RPM package database for the installed
// PSMP agent version.
package pkgdb

import (
	"context"
	"log/slog"
	"strings"

	"github.com/TalMaIka/psmpchecker/pkg/collector"
	"github.com/TalMaIka/psmpchecker/pkg/version"
)

// agentPackagePrefix identifies the agent package in rpm -qa output,
// e.g. "CARKpsmp-14.0.0-14.x86_64".
const agentPackagePrefix = "CARKpsmp"

// Querier detects the installed agent version from the package database.
type Querier struct {
	Runner collector.Runner

	// PackagePrefix overrides the agent package name prefix. Matching is
	// case-insensitive.
	PackagePrefix string
}

// New creates a Querier using the given command runner.
func New(runner collector.Runner) *Querier {
	return &Querier{Runner: runner}
}

// InstalledVersion returns the installed agent version normalized to
// "major.minor". The second return value is false when the agent is not
// installed; a failing rpm query is treated the same way, not as an
// error, because both mean no version can be certified.
func (q *Querier) InstalledVersion(ctx context.Context) (string, bool) {
	prefix := q.PackagePrefix
	if prefix == "" {
		prefix = agentPackagePrefix
	}

	out, err := q.Runner.Run(ctx, "rpm", "-qa")
	if err != nil {
		slog.Debug("rpm query failed", "error", err)
		return "", false
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(line), strings.ToLower(prefix)) {
			continue
		}

		if v, ok := parsePackageVersion(line); ok {
			slog.Debug("detected installed agent", "package", line, "version", v)
			return v, true
		}
	}

	return "", false
}

// parsePackageVersion extracts "major.minor" from a package token of the
// form "<name>-<major>.<minor>.<patch>-<build>.<arch>".
func parsePackageVersion(pkg string) (string, bool) {
	parts := strings.Split(pkg, "-")
	if len(parts) < 2 {
		return "", false
	}

	v, err := version.Parse(parts[1])
	if err != nil {
		return "", false
	}
	return v.MajorMinor(), true
}
