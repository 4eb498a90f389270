/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package checker orchestrates the diagnostic run: support-matrix
// compatibility, service status, OpenSSH version, and sshd_config audit.
package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/TalMaIka/psmpchecker/pkg/collector"
	"github.com/TalMaIka/psmpchecker/pkg/collector/distro"
	"github.com/TalMaIka/psmpchecker/pkg/collector/pkgdb"
	"github.com/TalMaIka/psmpchecker/pkg/collector/service"
	"github.com/TalMaIka/psmpchecker/pkg/collector/ssh"
	"github.com/TalMaIka/psmpchecker/pkg/errors"
	"github.com/TalMaIka/psmpchecker/pkg/matrix"
)

// ErrAgentNotInstalled is returned when the package database has no PSMP
// agent entry. It is the single fatal precondition of the diagnostic run:
// no later check is meaningful without an installed agent.
var ErrAgentNotInstalled = errors.New(errors.ErrCodeNotFound, "no PSMP version found")

// Checker runs the diagnostic sequence against injected OS-query
// capabilities.
type Checker struct {
	// Version is the tool version recorded in the report.
	Version string

	// MatrixPath locates the support matrix; empty means
	// matrix.DefaultPath.
	MatrixPath string

	// SSHDConfigPath overrides the sshd_config location for the audit.
	SSHDConfigPath string

	Pkg     *pkgdb.Querier
	Distro  *distro.Probe
	Service *service.Checker
	SSH     *ssh.Client
}

// New creates a Checker wired to the real OS: rpm via os/exec, os-release
// files, systemd over D-Bus, and the local ssh client.
func New(toolVersion string) *Checker {
	runner := collector.NewExecRunner()
	return &Checker{
		Version: toolVersion,
		Pkg:     pkgdb.New(runner),
		Distro:  distro.NewProbe(),
		Service: service.NewChecker(service.NewDBusQuerier()),
		SSH:     ssh.NewClient(runner),
	}
}

// Run executes every check in program order and returns the report.
//
// The support matrix load and the installed-agent detection are fatal:
// their failure aborts the run. Every other check degrades to a sentinel
// value and never prevents the checks after it from running.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	defer func() {
		checkRunDuration.Observe(time.Since(start).Seconds())
	}()

	matrixPath := c.MatrixPath
	if matrixPath == "" {
		matrixPath = matrix.DefaultPath
	}

	m, err := timedE("matrix", func() (matrix.SupportMatrix, error) {
		return matrix.Load(matrixPath)
	})
	if err != nil {
		checkRunTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	installed, found := timed2("pkgdb", func() (string, bool) {
		return c.Pkg.InstalledVersion(ctx)
	})
	if !found {
		checkRunTotal.WithLabelValues("error").Inc()
		return nil, ErrAgentNotInstalled
	}

	report := &Report{
		ToolVersion: c.Version,
		Timestamp:   start.UTC(),
		PSMPVersion: installed,
	}

	report.Distro, err = timedE("distro", func() (distro.Identity, error) {
		return c.Distro.Detect(ctx)
	})
	if err != nil {
		// Degraded: compatibility cannot be certified without a distro
		// identity, but the remaining checks still run.
		slog.Warn("failed to detect distribution", "error", err)
	}

	report.Supported = matrix.IsSupported(m, installed, report.Distro.Name, report.Distro.Version)

	report.PSMPService, report.SSHDService = timed2("services", func() (service.State, service.State) {
		return c.Service.Status(ctx, service.UnitPSMP, true),
			c.Service.Status(ctx, service.UnitSSHD, false)
	})

	report.OpenSSH = timed("openssh", func() ssh.VersionResult {
		return c.SSH.VersionCheck(ctx)
	})

	report.ConfigFindings = timed("sshd_config", func() []string {
		return ssh.AuditConfig(c.SSHDConfigPath)
	})

	checkRunTotal.WithLabelValues("success").Inc()
	slog.Debug("diagnostic run complete",
		"psmp_version", report.PSMPVersion,
		"supported", report.Supported,
		"duration", time.Since(start))

	return report, nil
}

// timed observes the duration of a single check.
func timed[T any](name string, fn func() T) T {
	start := time.Now()
	defer func() {
		checkDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()
	return fn()
}

// timedE is timed for checks that also return an error.
func timedE[T any](name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	defer func() {
		checkDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()
	return fn()
}

// timed2 is timed for checks that return two values.
func timed2[A, B any](name string, fn func() (A, B)) (A, B) {
	start := time.Now()
	defer func() {
		checkDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()
	return fn()
}
