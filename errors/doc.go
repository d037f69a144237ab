// Package errors provides unified error handling for streamkit.
// It implements structured error types with machine-readable codes and
// retryable detection for back-pressured stream failures.
package errors
