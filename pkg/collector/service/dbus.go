/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
)

// DBusQuerier queries unit state over the systemd D-Bus API.
// A connection is established per query; the diagnostic run touches two
// units once each.
type DBusQuerier struct{}

// NewDBusQuerier creates a SystemdQuerier backed by the systemd D-Bus API.
func NewDBusQuerier() *DBusQuerier {
	return &DBusQuerier{}
}

// ActiveState returns the ActiveState property value of the unit,
// e.g. "active", "inactive", "failed".
func (q *DBusQuerier) ActiveState(ctx context.Context, unit string) (string, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	prop, err := conn.GetUnitPropertyContext(ctx, unit, "ActiveState")
	if err != nil {
		return "", fmt.Errorf("failed to get unit state for %s: %w", unit, err)
	}

	// Property values arrive quoted, e.g. `"active"`.
	return strings.Trim(prop.Value.String(), `"`), nil
}
