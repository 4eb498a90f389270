/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandStructure(t *testing.T) {
	cmd := rootCmd()

	assert.Equal(t, "psmpchecker", cmd.Name)
	assert.Equal(t, "check", cmd.DefaultCommand)

	names := make([]string, 0, len(cmd.Commands))
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.ElementsMatch(t, []string{"check", "logs"}, names)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := checkCmd()

	var names []string
	for _, f := range cmd.Flags {
		names = append(names, f.Names()...)
	}
	assert.Contains(t, names, "matrix")
	assert.Contains(t, names, "output")
	assert.Contains(t, names, "format")
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{"psmpchecker", "check", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
