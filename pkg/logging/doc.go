/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging for psmpchecker.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every record, and
// level configuration via the LOG_LEVEL environment variable or an
// explicit level string. Diagnostic findings intended for the operator
// are written to stdout by the report renderer, not through this package;
// slog carries operational detail only.
//
// Usage:
//
//	logging.SetDefaultStructuredLoggerWithLevel("psmpchecker", version, "info")
//	slog.Info("collecting service status", "unit", "psmpsrv")
package logging
