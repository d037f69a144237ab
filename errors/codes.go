package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Protocol errors
const (
	// ErrCodeBackpressureOverflow indicates the producer emitted beyond the
	// granted demand and overran the bounded buffer.
	ErrCodeBackpressureOverflow ErrorCode = "BACKPRESSURE_OVERFLOW"
	// ErrCodeInvalidDemand indicates a non-positive request amount.
	ErrCodeInvalidDemand ErrorCode = "INVALID_DEMAND"
	// ErrCodeInvalidArgument indicates an invalid construction-time argument.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Upstream errors
const (
	// ErrCodeUpstreamFailure indicates the producer signaled a failure.
	ErrCodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUpstreamFailure: true,
}

// IsRetryableCode reports whether resubscribing can reasonably succeed for
// the given code. Protocol violations are never retryable.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
