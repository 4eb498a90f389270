/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package distro detects the Linux distribution name and version from
// os-release metadata.
package distro

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/TalMaIka/psmpchecker/pkg/collector/file"
)

var (
	releasePathPrimary  = "/etc/os-release"
	releasePathFallback = "/usr/lib/os-release"
)

// Identity describes the detected distribution: display name and a
// normalized "major.minor" version string. Minor defaults to "0" when the
// release metadata only carries a major version.
type Identity struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// String returns "Name Version".
func (i Identity) String() string {
	return fmt.Sprintf("%s %s", i.Name, i.Version)
}

// Probe reads distribution identity from os-release files.
type Probe struct {
	// Path overrides the os-release location; empty means the standard
	// /etc/os-release with the /usr/lib fallback per freedesktop.org spec.
	Path string
}

// NewProbe creates a Probe using the standard os-release locations.
func NewProbe() *Probe {
	return &Probe{}
}

// Detect returns the distribution identity. The name is the NAME field
// (display name); the version is the most specific of VERSION_ID and
// VERSION, reduced to its first two dot-separated components.
func (p *Probe) Detect(ctx context.Context) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}

	root := p.Path
	if root == "" {
		root = releasePathPrimary
		if _, err := os.Stat(root); os.IsNotExist(err) {
			root = releasePathFallback
		}
	}

	parser := file.NewParser(
		// Remove surrounding quotes per freedesktop.org spec
		file.WithVTrimChars(`"'`),
	)

	params, err := parser.Map(root)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to read os release from %s: %w", root, err)
	}

	ident := Identity{
		Name:    params["NAME"],
		Version: majorMinor(bestVersion(params)),
	}

	slog.Debug("detected distribution", "name", ident.Name, "version", ident.Version, "source", root)
	return ident, nil
}

// bestVersion picks the most specific version string available.
// VERSION_ID is machine-readable but may be truncated to the major
// component (e.g. "9" on some RHEL releases); VERSION often carries the
// full "9.4 (Plow)" form, so the longer dotted value wins.
func bestVersion(params map[string]string) string {
	id := params["VERSION_ID"]
	full := firstToken(params["VERSION"])

	if strings.Count(full, ".") > strings.Count(id, ".") && strings.HasPrefix(full, id) {
		return full
	}
	return id
}

// firstToken returns the leading whitespace-delimited token of s.
func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// majorMinor reduces a version string to "major.minor", defaulting the
// minor component to "0" when absent.
func majorMinor(v string) string {
	if v == "" {
		return ""
	}

	parts := strings.SplitN(v, ".", 3)
	major := parts[0]
	minor := "0"
	if len(parts) > 1 && parts[1] != "" {
		minor = parts[1]
	}
	return fmt.Sprintf("%s.%s", major, minor)
}
