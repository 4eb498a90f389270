/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer renders diagnostic reports to text, JSON, YAML, or
// table output.
//
// Text is the default and prints the report's advisory lines exactly as
// the operator-facing diagnostic output. The structured formats serialize
// the full report for programmatic consumption.
package serializer

import "context"

// Serializer serializes a value to the configured destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}

// TextRenderer is implemented by values that carry their own plain-text
// representation, used by the text format.
type TextRenderer interface {
	RenderText() []string
}
