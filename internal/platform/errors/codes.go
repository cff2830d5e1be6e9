// Package errors provides structured domain errors with gRPC mappings.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unexpected internal fault.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors
	CodeCourseIDInvalid  Code = "COURSE_ID_INVALID"
	CodeStudentIDInvalid Code = "STUDENT_ID_INVALID"

	// Lookup errors
	CodeCourseNotFound  Code = "COURSE_NOT_FOUND"
	CodeStudentNotFound Code = "STUDENT_NOT_FOUND"

	// Permission errors
	CodeActorNotStudent Code = "ACTOR_NOT_STUDENT"
	CodeActorNotFaculty Code = "ACTOR_NOT_FACULTY"

	// Enrollment conflict errors
	CodeAlreadyEnrolled Code = "ALREADY_ENROLLED"
	CodeNotEnrolled     Code = "NOT_ENROLLED"

	// Admission errors
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"

	// Storage errors
	CodeStoreTransient   Code = "STORE_TRANSIENT"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCourseIDInvalid,
		CodeStudentIDInvalid:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeCourseNotFound,
		CodeStudentNotFound:
		return codes.NotFound

	// PermissionDenied - actor role disallows the operation
	case CodeActorNotStudent,
		CodeActorNotFaculty:
		return codes.PermissionDenied

	// AlreadyExists - unique (student, course) pair constraint
	case CodeAlreadyEnrolled:
		return codes.AlreadyExists

	// FailedPrecondition - state doesn't allow operation
	case CodeNotEnrolled:
		return codes.FailedPrecondition

	// ResourceExhausted - capacity gate closed
	case CodeCapacityExceeded:
		return codes.ResourceExhausted

	// Unavailable - retryable infrastructure faults
	case CodeStoreTransient,
		CodeStoreUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}

// Terminal reports whether the error is final for the caller, meaning
// a retry with the same inputs cannot succeed.
func (c Code) Terminal() bool {
	switch c {
	case CodeStoreTransient, CodeStoreUnavailable, CodeUnknown:
		return false
	default:
		return true
	}
}
