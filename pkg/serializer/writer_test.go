/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type textValue struct {
	Name  string   `json:"name" yaml:"name"`
	Lines []string `json:"lines" yaml:"lines"`
}

func (v textValue) RenderText() []string {
	return v.Lines
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatText.IsUnknown())
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
}

func TestSerializeText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, &buf)

	v := textValue{Name: "report", Lines: []string{"PSMP version: 14.0", "SSHD Service Status: Running"}}
	require.NoError(t, w.Serialize(context.Background(), v))

	assert.Equal(t, "PSMP version: 14.0\nSSHD Service Status: Running\n", buf.String())
}

func TestSerializeTextFallbackJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatText, &buf)

	require.NoError(t, w.Serialize(context.Background(), map[string]string{"key": "value"}))
	assert.Contains(t, buf.String(), `"key": "value"`)
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), textValue{Name: "report"}))

	var decoded textValue
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "report", decoded.Name)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), textValue{Name: "report"}))

	var decoded textValue
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "report", decoded.Name)
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	v := map[string]any{
		"distro":   map[string]any{"name": "Red Hat", "version": "8.6"},
		"findings": []any{"first", "second"},
	}
	require.NoError(t, w.Serialize(context.Background(), v))

	out := buf.String()
	assert.Contains(t, out, "distro.name")
	assert.Contains(t, out, "Red Hat")
	assert.Contains(t, out, "findings[0]")
}

func TestNewWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)
	assert.Equal(t, FormatText, w.format)
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), textValue{Name: "x"}))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "x"`)

	// Empty path falls back to stdout without error.
	w = NewFileWriterOrStdout(FormatText, "")
	assert.NotNil(t, w)
	assert.NoError(t, w.Close())
}
