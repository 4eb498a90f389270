/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package checker

import (
	"fmt"
	"time"

	"github.com/TalMaIka/psmpchecker/pkg/collector/distro"
	"github.com/TalMaIka/psmpchecker/pkg/collector/service"
	"github.com/TalMaIka/psmpchecker/pkg/collector/ssh"
)

// Report carries every finding of a diagnostic run.
type Report struct {
	ToolVersion string    `json:"tool_version,omitempty" yaml:"tool_version,omitempty"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`

	// PSMPVersion is the installed agent version, normalized to
	// "major.minor".
	PSMPVersion string `json:"psmp_version" yaml:"psmp_version"`

	Distro    distro.Identity `json:"distro" yaml:"distro"`
	Supported bool            `json:"supported" yaml:"supported"`

	PSMPService service.State `json:"psmp_service" yaml:"psmp_service"`
	SSHDService service.State `json:"sshd_service" yaml:"sshd_service"`

	OpenSSH ssh.VersionResult `json:"openssh" yaml:"openssh"`

	// ConfigFindings are the sshd_config audit advisories.
	ConfigFindings []string `json:"config_findings,omitempty" yaml:"config_findings,omitempty"`
}

// RenderText returns the operator-facing diagnostic lines in run order.
func (r *Report) RenderText() []string {
	lines := []string{
		fmt.Sprintf("PSMP version: %s", r.PSMPVersion),
		fmt.Sprintf("Linux distribution: %s", r.Distro),
	}

	if r.Supported {
		lines = append(lines, fmt.Sprintf("PSMP version %s Supports %s", r.PSMPVersion, r.Distro))
	} else {
		lines = append(lines, fmt.Sprintf("PSMP version %s Does Not Support %s", r.PSMPVersion, r.Distro))
	}

	lines = append(lines,
		fmt.Sprintf("PSMP Service Status: %s", r.PSMPService),
		fmt.Sprintf("SSHD Service Status: %s", r.SSHDService),
	)

	if !r.OpenSSH.OK && r.OpenSSH.Message != "" {
		lines = append(lines, r.OpenSSH.Message)
	}

	lines = append(lines, r.ConfigFindings...)
	return lines
}
