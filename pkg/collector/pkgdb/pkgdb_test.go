/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package pkgdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	output string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, _ string, _ ...string) (string, error) {
	return f.output, f.err
}

func TestInstalledVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		err      error
		expected string
		found    bool
	}{
		{
			name:     "agent installed",
			output:   "kernel-4.18.0-425.el8.x86_64\nCARKpsmp-14.0.0-14.x86_64\nopenssh-8.0p1-16.el8.x86_64",
			expected: "14.0",
			found:    true,
		},
		{
			name:     "case insensitive match",
			output:   "carkpsmp-12.6.1-5.x86_64",
			expected: "12.6",
			found:    true,
		},
		{
			name:   "not installed",
			output: "kernel-4.18.0-425.el8.x86_64\nopenssh-8.0p1-16.el8.x86_64",
			found:  false,
		},
		{
			name:  "empty output",
			found: false,
		},
		{
			name:  "query failure treated as not found",
			err:   errors.New("rpm: command not found"),
			found: false,
		},
		{
			name:   "unparseable version token",
			output: "CARKpsmp-garbage.x86_64",
			found:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := New(&fakeRunner{output: tc.output, err: tc.err})
			v, found := q.InstalledVersion(context.Background())
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestParsePackageVersion(t *testing.T) {
	v, ok := parsePackageVersion("CARKpsmp-14.0.0-14.x86_64")
	assert.True(t, ok)
	assert.Equal(t, "14.0", v)

	_, ok = parsePackageVersion("CARKpsmp")
	assert.False(t, ok)
}
