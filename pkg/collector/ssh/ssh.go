/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package ssh probes the OpenSSH client version and audits the SSH
// daemon configuration for agent-managed settings.
package ssh

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/TalMaIka/psmpchecker/pkg/collector"
	"github.com/TalMaIka/psmpchecker/pkg/version"
)

// minimumVersion is the oldest OpenSSH client version the agent supports.
var minimumVersion = version.Version{Major: 7, Minor: 7, Precision: 2}

var versionPattern = regexp.MustCompile(`OpenSSH_(\d+\.\d+)`)

const undeterminedMessage = "Failed to determine OpenSSH version."

// VersionResult is the outcome of the OpenSSH version check.
type VersionResult struct {
	// Version is the detected "major.minor" version, empty when
	// undetermined.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// OK reports whether the detected version meets the minimum.
	OK bool `json:"ok" yaml:"ok"`
	// Message explains a failed check; empty on success.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Client probes the local OpenSSH installation.
type Client struct {
	Runner collector.Runner
}

// NewClient creates a Client using the given command runner.
func NewClient(runner collector.Runner) *Client {
	return &Client{Runner: runner}
}

// VersionCheck invokes `ssh -V`, extracts the OpenSSH version token, and
// compares it against the minimum supported version. Command failure and
// an unrecognized banner both yield a not-OK result with an explanatory
// message; neither is an error for the diagnostic run.
func (c *Client) VersionCheck(ctx context.Context) VersionResult {
	out, err := c.Runner.Run(ctx, "ssh", "-V")
	if err != nil {
		slog.Debug("ssh version query failed", "error", err)
		return VersionResult{Message: undeterminedMessage}
	}

	match := versionPattern.FindStringSubmatch(out)
	if match == nil {
		return VersionResult{Message: undeterminedMessage}
	}

	detected, err := version.Parse(match[1])
	if err != nil {
		return VersionResult{Message: undeterminedMessage}
	}

	res := VersionResult{Version: detected.MajorMinor()}
	if detected.EqualsOrNewer(minimumVersion) {
		res.OK = true
		return res
	}

	res.Message = fmt.Sprintf("[+] OpenSSH version is: %s, required version %s and above.",
		res.Version, minimumVersion)
	return res
}
