/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorMessage(t *testing.T) {
	err := New(ErrCodeNotFound, "support matrix not found")
	assert.Equal(t, "[NOT_FOUND] support matrix not found", err.Error())

	wrapped := Wrap(ErrCodeInvalidInput, "malformed matrix", stderrors.New("unexpected end of JSON input"))
	assert.Equal(t, "[INVALID_INPUT] malformed matrix: unexpected end of JSON input", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(ErrCodeNotFound, "missing file", cause)

	assert.True(t, stderrors.Is(err, os.ErrNotExist))

	var se *StructuredError
	assert.True(t, stderrors.As(err, &se))
	assert.Equal(t, ErrCodeNotFound, se.Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeUnavailable, CodeOf(New(ErrCodeUnavailable, "rpm query failed")))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))

	// Code is recoverable through additional wrapping layers.
	inner := New(ErrCodeInvalidInput, "bad data")
	outer := Wrap(ErrCodeInternal, "load failed", inner)
	var se *StructuredError
	assert.True(t, stderrors.As(outer, &se))
	assert.Equal(t, ErrCodeInternal, CodeOf(outer))
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeNotFound, "missing source", os.ErrNotExist, map[string]any{
		"path": "/var/log/secure",
	})
	assert.Equal(t, "/var/log/secure", err.Context["path"])
}
