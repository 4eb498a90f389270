/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package matrix

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/TalMaIka/psmpchecker/pkg/errors"
)

// DefaultPath is the support-matrix location relative to the working
// directory, matching the layout the agent installer ships.
const DefaultPath = "src/versions.json"

// Distribution is a single supported-distribution rule: a display name and
// the list of version prefixes it certifies. Name comparison is
// case-insensitive; version matching is prefix-based, so a distro version
// "8.6" matches a supported-version entry "8".
type Distribution struct {
	Name     string   `json:"name" yaml:"name"`
	Versions []string `json:"versions" yaml:"versions"`
}

// Rule holds the supported distributions for one agent version key.
type Rule struct {
	SupportedDistributions []Distribution `json:"supported_distributions" yaml:"supported_distributions"`
}

// SupportMatrix maps an agent version key (e.g. "14.0") to its rule.
type SupportMatrix map[string]Rule

// Load reads and parses the support matrix from the given path.
// A missing or malformed file is a fatal condition for the diagnostic run
// and is propagated to the caller; there are no silent defaults.
func Load(path string) (SupportMatrix, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"support matrix file not found", err,
				map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to read support matrix", err,
			map[string]any{"path": path})
	}

	var m SupportMatrix
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput,
			"malformed support matrix", err,
			map[string]any{"path": path})
	}

	slog.Debug("loaded support matrix", "path", path, "versions", len(m))
	return m, nil
}
