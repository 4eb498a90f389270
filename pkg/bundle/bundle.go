/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package bundle collects agent and system log sources into a zip
// archive for support escalation.
package bundle

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/TalMaIka/psmpchecker/pkg/errors"
)

// archiveNamePattern produces PSMP_Logs_<MM.DD.YY>.zip.
const archiveNamePattern = "PSMP_Logs_%s.zip"

// DefaultSources is the fixed set of log and configuration paths the
// support flow asks for. Missing entries are reported and skipped.
func DefaultSources() []string {
	return []string{
		"/var/log/secure",
		"/var/log/messages",
		"/var/opt/CARKpsmp/logs",
		"/var/opt/CARKpsmp/logs/components",
		"/etc/ssh/sshd_config",
		"/etc/pam.d/sshd",
		"/etc/pam.d/password-auth",
		"/etc/pam.d/system-auth",
		"/etc/nsswitch.conf",
		"/var/opt/CARKpsmp/temp/EnvManager.log",
	}
}

// Result describes a completed collection attempt.
type Result struct {
	// ArchivePath is the created zip file.
	ArchivePath string `json:"archive_path" yaml:"archive_path"`
	// Collected lists the source paths that made it into the archive.
	Collected []string `json:"collected,omitempty" yaml:"collected,omitempty"`
	// Skipped lists source paths that did not exist.
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Collector stages log sources and compresses them into a dated archive.
type Collector struct {
	// Sources are the paths to collect; nil means DefaultSources.
	Sources []string
	// OutDir is the archive destination directory; empty means the
	// current working directory.
	OutDir string
	// StagingRoot overrides the staging parent directory; empty means
	// the system temp directory.
	StagingRoot string
	// Now supplies the archive timestamp; nil means time.Now.
	Now func() time.Time
}

// New creates a Collector with the default source list.
func New() *Collector {
	return &Collector{}
}

// Collect copies every existing source into a staging directory
// (directories recursively, under the source's base name), compresses the
// staging tree into PSMP_Logs_<MM.DD.YY>.zip with paths relative to the
// staging root, and removes the staging directory on every exit path.
//
// Missing sources are reported in Result.Skipped and never abort the
// collection. Copy and archive failures are returned as structured
// errors; the staging cleanup still runs.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	sources := c.Sources
	if sources == nil {
		sources = DefaultSources()
	}

	stagingRoot := c.StagingRoot
	if stagingRoot == "" {
		stagingRoot = os.TempDir()
	}

	staging := filepath.Join(stagingRoot, "psmp-logs-"+uuid.NewString())
	if err := os.MkdirAll(staging, 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create staging directory", err)
	}
	// Staging is removed on every exit path, including copy and archive
	// failures.
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			slog.Warn("failed to remove staging directory", "path", staging, "error", err)
		}
	}()

	res := &Result{}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(src)
		if os.IsNotExist(err) {
			slog.Info("log source not found, skipping", "path", src)
			res.Skipped = append(res.Skipped, src)
			continue
		}
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
				"failed to stat log source", err, map[string]any{"path": src})
		}

		dst := filepath.Join(staging, filepath.Base(src))
		if info.IsDir() {
			err = copyTree(src, dst)
		} else {
			err = copyFile(src, dst)
		}
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
				"failed to copy log source", err, map[string]any{"path": src})
		}
		res.Collected = append(res.Collected, src)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	archive := filepath.Join(c.OutDir, fmt.Sprintf(archiveNamePattern, now().Format("01.02.06")))

	if err := writeArchive(staging, archive); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to write log archive", err, map[string]any{"path": archive})
	}

	res.ArchivePath = archive
	slog.Info("log archive created", "path", archive,
		"collected", len(res.Collected), "skipped", len(res.Skipped))
	return res, nil
}

// copyTree copies the directory src into dst, preserving structure.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o700)
		}
		return copyFile(path, target)
	})
}

// copyFile copies a single file, creating parent directories as needed.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// writeArchive zips every file under staging into archivePath with paths
// relative to the staging root.
func writeArchive(staging, archivePath string) error {
	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}
