/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package service queries systemd for unit state and classifies it into
// the closed set of states the diagnostic report uses.
package service

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Unit names checked by the diagnostic run.
const (
	UnitPSMP = "psmpsrv.service"
	UnitSSHD = "sshd.service"
)

// vaultMarker in the agent console log indicates established Vault
// connectivity.
const vaultMarker = "is up and working with Vault"

// defaultConsoleLogPath is the agent console log inspected for the
// Vault-connectivity marker.
const defaultConsoleLogPath = "/var/opt/CARKpsmp/logs/PSMPConsole.log"

// State is the classified runtime state of a service.
type State string

const (
	// StateConnected: the agent service is active and its console log
	// carries the Vault-connectivity marker.
	StateConnected State = "Running and communicating with Vault"
	// StateNotConnected: the agent service is active but the marker is
	// absent (or the log is unreadable).
	StateNotConnected State = "Running but not communicating with Vault"
	// StateRunning: the service is active (no secondary check).
	StateRunning State = "Running"
	// StateInactive: the service reported any non-active state.
	StateInactive State = "Inactive"
	// StateUnavailable: the state query itself failed.
	StateUnavailable State = "Unavailable"
)

// SystemdQuerier returns the ActiveState value of a unit.
// Implemented by DBusQuerier in production and by fakes in tests.
type SystemdQuerier interface {
	ActiveState(ctx context.Context, unit string) (string, error)
}

// Checker classifies service states for the diagnostic report.
type Checker struct {
	Systemd SystemdQuerier

	// ConsoleLogPath overrides the agent console log location.
	ConsoleLogPath string
}

// NewChecker creates a Checker using the given systemd querier.
func NewChecker(q SystemdQuerier) *Checker {
	return &Checker{Systemd: q}
}

// Status returns the classified state of a unit. When checkVault is set
// and the unit is active, the agent console log is inspected for the
// Vault-connectivity marker to disambiguate StateConnected from
// StateNotConnected. Only the agent's own unit gets that secondary check.
func (c *Checker) Status(ctx context.Context, unit string, checkVault bool) State {
	text, err := c.Systemd.ActiveState(ctx, unit)
	if err != nil {
		slog.Debug("service state query failed", "unit", unit, "error", err)
		return StateUnavailable
	}

	if !classifyActiveState(text) {
		return StateInactive
	}

	if !checkVault {
		return StateRunning
	}

	if c.vaultMarkerPresent() {
		return StateConnected
	}
	return StateNotConnected
}

// classifyActiveState maps raw state text to a running/not-running
// verdict. The fallback for any unrecognized text is not-running. The
// word-level match accepts both the bare D-Bus property value ("active")
// and human-readable status text ("Active: active (running)") while
// rejecting "inactive" and "activating".
func classifyActiveState(text string) bool {
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if word == "active" {
			return true
		}
	}
	return false
}

// vaultMarkerPresent reports whether the agent console log contains the
// connectivity marker. A missing or unreadable log counts as no marker.
func (c *Checker) vaultMarkerPresent() bool {
	path := c.ConsoleLogPath
	if path == "" {
		path = defaultConsoleLogPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("agent console log unreadable", "path", path, "error", err)
		return false
	}
	return strings.Contains(string(b), vaultMarker)
}
