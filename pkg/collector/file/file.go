/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package file parses line-oriented configuration files such as
// /etc/os-release and sshd_config into lines or key-value maps.
package file

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser parses line-oriented configuration files.
type Parser struct {
	kvDelimiter  string
	vTrimChars   string
	skipComments bool
	maxSize      int
}

// WithKVDelimiter sets the key-value delimiter used by Map. Default "=".
func WithKVDelimiter(delim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = delim
	}
}

// WithVTrimChars sets characters trimmed from values in Map, e.g. quotes
// around os-release values. Default: no trimming.
func WithVTrimChars(chars string) Option {
	return func(p *Parser) {
		p.vTrimChars = chars
	}
}

// WithSkipComments sets whether lines starting with '#' are dropped.
// Default true; the sshd_config audit disables it because commented
// directives are part of what it classifies.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithMaxSize sets the maximum file size in bytes. Default 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// NewParser creates a Parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		kvDelimiter:  "=",
		skipComments: true,
		maxSize:      1 << 20,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lines reads the file and returns its non-empty lines, trimmed, honoring
// the comment-skipping setting. Returns an error if the file cannot be
// read, exceeds the maximum size, or is not valid UTF-8.
func (p *Parser) Lines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	raw := strings.Split(string(b), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Map reads the file and parses each line into a key-value pair using the
// configured delimiter. Lines without the delimiter are skipped.
func (p *Parser) Map(path string) (map[string]string, error) {
	lines, err := p.Lines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}
		if key == "" || value == "" {
			continue
		}

		result[key] = value
	}

	return result, nil
}
