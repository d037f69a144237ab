// Package validation provides struct-tag and programmatic validation for
// streamkit configuration, reporting failures as INVALID_ARGUMENT stream
// errors with per-field details.
package validation
