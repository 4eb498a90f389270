/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package collector provides the narrow OS-query capabilities the
// diagnostic checks are built on: command execution (Runner), package
// database queries (pkgdb), distribution metadata (distro), systemd
// service state (service), and OpenSSH probes (ssh).
//
// Every ambient OS dependency sits behind a small interface so the
// classification logic can be tested without touching the real system.
package collector
