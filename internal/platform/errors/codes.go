// Package errors provides structured, localizable domain errors.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Tray configuration errors
	CodeTrayInvalidUnitCount    Code = "TRAY_INVALID_UNIT_COUNT"
	CodeTrayInvalidSides        Code = "TRAY_INVALID_SIDES"
	CodeTrayInvalidDefaultValue Code = "TRAY_INVALID_DEFAULT_VALUE"

	// Roll errors
	CodeRollNoLiveUnits Code = "ROLL_NO_LIVE_UNITS"
	CodeRollSuperseded  Code = "ROLL_SUPERSEDED"
	CodeRollTimedOut    Code = "ROLL_TIMED_OUT"

	// Lifecycle errors
	CodeTrayNotStarted Code = "TRAY_NOT_STARTED"
	CodeTrayClosed     Code = "TRAY_CLOSED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeTrayInvalidUnitCount,
		CodeTrayInvalidSides,
		CodeTrayInvalidDefaultValue:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeRollNoLiveUnits,
		CodeTrayNotStarted:
		return codes.FailedPrecondition

	case CodeRollSuperseded:
		return codes.Aborted

	case CodeRollTimedOut:
		return codes.DeadlineExceeded

	case CodeTrayClosed:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
