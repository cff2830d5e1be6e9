// Package storage defines persistence contracts for enrollment records.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested enrollment record is missing.
var ErrNotFound = errors.New("enrollment not found")

// ErrAlreadyEnrolled indicates the (student, course) pair already exists.
var ErrAlreadyEnrolled = errors.New("student already enrolled in course")

// ErrCapacityExceeded indicates the course capacity gate rejected an insert.
var ErrCapacityExceeded = errors.New("course capacity exceeded")

// Enrollment is one committed student-course membership. Records are
// immutable after creation; the only mutation is deletion (drop).
type Enrollment struct {
	ID        int64
	StudentID int64
	CourseID  int64
	CreatedAt time.Time
}

// Reader serves enrollment read primitives. Both the write-primary and the
// read-replica satisfy it; which one a caller may use is decided by the
// consistency coordinator, not here.
type Reader interface {
	// CountByCourse returns the committed enrollment count for a course.
	CountByCourse(ctx context.Context, courseID int64) (int64, error)
	// ListByCourse returns course enrollments ordered by creation time.
	ListByCourse(ctx context.Context, courseID int64) ([]Enrollment, error)
	// ListByStudent returns a student's enrollments ordered by creation time.
	ListByStudent(ctx context.Context, studentID int64) ([]Enrollment, error)
	// Exists reports whether the (student, course) pair is enrolled.
	Exists(ctx context.Context, studentID int64, courseID int64) (bool, error)
}

// Writer serves the mutation primitives. Only the write-primary implements it.
type Writer interface {
	// InsertIfCapacity atomically inserts an enrollment iff the pair is
	// absent and the course count stays within capacity. A capacity of zero
	// or less means unbounded. Returns ErrCapacityExceeded when the gate is
	// closed and ErrAlreadyEnrolled on a duplicate pair.
	InsertIfCapacity(ctx context.Context, studentID int64, courseID int64, capacity int64, createdAt time.Time) (Enrollment, error)
	// Delete removes the (student, course) enrollment. Returns ErrNotFound
	// when no such pair is enrolled.
	Delete(ctx context.Context, studentID int64, courseID int64) error
}

// EnrollmentStore is the full primitive set backed by the write-primary.
type EnrollmentStore interface {
	Reader
	Writer
}
