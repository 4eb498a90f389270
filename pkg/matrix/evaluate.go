/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package matrix

import "strings"

// IsSupported reports whether the installed agent version is certified for
// the given distribution. The semantics are purely string-based:
//
//   - a matrix key applies when it starts with installedVersion
//   - a distribution rule applies when its name equals distroName
//     case-insensitively
//   - the rule matches when any of its version prefixes is a prefix of
//     distroVersion
//
// Version matching is deliberately non-numeric: distro versioning schemes
// are not uniformly numeric, so "8" matching "8.6" is a prefix test, not a
// comparison. Returns false when installedVersion is not a prefix of any
// matrix key.
func IsSupported(m SupportMatrix, installedVersion, distroName, distroVersion string) bool {
	if installedVersion == "" {
		return false
	}

	// The installed version must anchor at least one matrix key before
	// any distribution rules are consulted.
	if !hasKeyWithPrefix(m, installedVersion) {
		return false
	}

	for key, rule := range m {
		if !strings.HasPrefix(key, installedVersion) {
			continue
		}
		for _, dist := range rule.SupportedDistributions {
			if !strings.EqualFold(dist.Name, distroName) {
				continue
			}
			for _, prefix := range dist.Versions {
				if strings.HasPrefix(distroVersion, prefix) {
					return true
				}
			}
		}
	}

	return false
}

func hasKeyWithPrefix(m SupportMatrix, prefix string) bool {
	for key := range m {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
