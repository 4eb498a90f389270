/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package ssh

import (
	"strings"

	"github.com/TalMaIka/psmpchecker/pkg/collector/file"
)

// DefaultConfigPath is the standard sshd daemon configuration location.
const DefaultConfigPath = "/etc/ssh/sshd_config"

// authBlockMarker opens the agent-managed section of sshd_config written
// by the installer. Matched as an exact line.
const authBlockMarker = "# PSMP Authentication Configuration Block Start"

// Advisory lines produced by the audit.
const (
	adviceConfigNotFound  = "sshd_config file not found."
	adviceBlockNotFound   = "PSMP authentication block not found."
	adviceAllowUserFound  = "AllowUser mentioned found."
	adviceKeyAuthDisabled = "[+] SSH-Key auth not enabled, sshd_config missing 'PubkeyAcceptedAlgorithms'."
)

// AuditConfig scans the sshd configuration for agent-relevant markers and
// returns advisory findings. The audit is advisory-only: a missing config
// file yields a single not-found notice and asserts nothing else.
//
// Tracked conditions:
//   - the exact agent-managed block marker line
//   - any directive line starting with "AllowUser"
//   - any uncommented line containing "PubkeyAcceptedAlgorithms"
func AuditConfig(path string) []string {
	if path == "" {
		path = DefaultConfigPath
	}

	// Comment lines carry signal here: the block marker is a comment and a
	// commented-out PubkeyAcceptedAlgorithms must not count as enabled.
	lines, err := file.NewParser(file.WithSkipComments(false)).Lines(path)
	if err != nil {
		return []string{adviceConfigNotFound}
	}

	var foundAuthBlock, foundAllowUser, foundPubkeyAlgorithms bool
	for _, line := range lines {
		if line == authBlockMarker {
			foundAuthBlock = true
		}
		if strings.HasPrefix(line, "AllowUser") {
			foundAllowUser = true
		}
		if strings.Contains(line, "PubkeyAcceptedAlgorithms") && !strings.HasPrefix(line, "#") {
			foundPubkeyAlgorithms = true
		}
	}

	var findings []string
	if !foundAuthBlock {
		findings = append(findings, adviceBlockNotFound)
	}
	if foundAllowUser {
		findings = append(findings, adviceAllowUserFound)
	}
	if !foundPubkeyAlgorithms {
		findings = append(findings, adviceKeyAuthDisabled)
	}

	return findings
}
