/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package matrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TalMaIka/psmpchecker/pkg/errors"
)

const testMatrixJSON = `{
  "13.2": {
    "supported_distributions": [
      {"name": "CentOS", "versions": ["7"]},
      {"name": "Red Hat", "versions": ["7", "8"]}
    ]
  },
  "14.0": {
    "supported_distributions": [
      {"name": "Red Hat", "versions": ["8"]},
      {"name": "SUSE Linux Enterprise Server", "versions": ["15.4"]}
    ]
  }
}`

func writeMatrix(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeMatrix(t, testMatrixJSON))
	require.NoError(t, err)
	require.Len(t, m, 2)

	rule, ok := m["14.0"]
	require.True(t, ok)
	require.Len(t, rule.SupportedDistributions, 2)
	assert.Equal(t, "Red Hat", rule.SupportedDistributions[0].Name)
	assert.Equal(t, []string{"8"}, rule.SupportedDistributions[0].Versions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeMatrix(t, `{"14.0": [`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.CodeOf(err))
}

func TestIsSupported(t *testing.T) {
	m := SupportMatrix{
		"14.0": {
			SupportedDistributions: []Distribution{
				{Name: "Red Hat", Versions: []string{"8"}},
			},
		},
	}

	tests := []struct {
		name      string
		installed string
		distro    string
		version   string
		expected  bool
	}{
		{"matching prefix", "14.0", "Red Hat", "8.6", true},
		{"caseless name match", "14.0", "red hat", "8.6", true},
		{"version prefix mismatch", "14.0", "Red Hat", "7.9", false},
		{"distro name mismatch", "14.0", "Ubuntu", "8.6", false},
		{"installed version not in matrix", "13.0", "Red Hat", "8.6", false},
		{"installed prefix of key", "14", "Red Hat", "8.6", true},
		{"empty installed version", "", "Red Hat", "8.6", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSupported(m, tc.installed, tc.distro, tc.version))
		})
	}
}

func TestIsSupportedNonNumericVersions(t *testing.T) {
	// Prefix matching must hold for non-numeric version schemes too.
	m := SupportMatrix{
		"14.0": {
			SupportedDistributions: []Distribution{
				{Name: "SUSE Linux Enterprise Server", Versions: []string{"15 SP"}},
			},
		},
	}

	assert.True(t, IsSupported(m, "14.0", "suse linux enterprise server", "15 SP4"))
	assert.False(t, IsSupported(m, "14.0", "suse linux enterprise server", "12 SP5"))
}

func TestIsSupportedEmptyMatrix(t *testing.T) {
	assert.False(t, IsSupported(SupportMatrix{}, "14.0", "Red Hat", "8.6"))
	assert.False(t, IsSupported(nil, "14.0", "Red Hat", "8.6"))
}
