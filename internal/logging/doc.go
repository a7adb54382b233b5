// Package logging configures slog output for the vocabulary pipeline.
//
// Two formats are supported: a console handler that renders
// "timestamp LEVEL component: message key=value" lines for interactive use,
// and a JSON handler for log files. Attr helpers keep call sites terse and
// consistent across packages.
package logging
