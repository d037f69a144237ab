package errors

import (
	"errors"
	"fmt"
)

// StreamError is the unified streamkit error type.
type StreamError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if resubscribing can be expected to succeed.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StreamError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *StreamError) WithCause(cause error) *StreamError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *StreamError) WithDetail(key string, value any) *StreamError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new StreamError with automatic retryable detection.
func New(code ErrorCode, message string) *StreamError {
	return &StreamError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal if err is not a
// StreamError.
func CodeOf(err error) ErrorCode {
	var se *StreamError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is a StreamError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var se *StreamError
	return errors.As(err, &se) && se.Code == code
}

// --- Common Error Constructors ---

// BackpressureOverflow creates a new StreamError for a producer that overran
// the bounded buffer. Always a protocol violation, never retryable.
func BackpressureOverflow(capacity int) *StreamError {
	return &StreamError{
		Code: ErrCodeBackpressureOverflow, Message: "could not emit value due to lack of requests",
		Retryable: false,
		Details:   map[string]any{"capacity": capacity},
	}
}

// InvalidDemand creates a new StreamError for a non-positive request amount.
func InvalidDemand(n int64) *StreamError {
	return &StreamError{
		Code: ErrCodeInvalidDemand, Message: fmt.Sprintf("n > 0 required but it was %d", n),
		Retryable: false,
		Details:   map[string]any{"n": n},
	}
}

// InvalidBufferSize creates a new StreamError for a non-positive buffer or
// batch size at construction time.
func InvalidBufferSize(n int) *StreamError {
	return &StreamError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bufferSize > 0 required but it was %d", n),
		Retryable: false,
		Details:   map[string]any{"bufferSize": n},
	}
}

// UpstreamFailure creates a new StreamError wrapping a producer-signaled
// failure.
func UpstreamFailure(cause error) *StreamError {
	return &StreamError{
		Code: ErrCodeUpstreamFailure, Message: "upstream signaled a failure",
		Retryable: true, Cause: cause,
	}
}

// Internal creates a new StreamError for an unexpected internal error.
func Internal(cause error) *StreamError {
	return &StreamError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}
