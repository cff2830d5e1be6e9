// Package directory defines the read-only collaborator contracts the
// enrollment service needs from neighboring systems: course facts from the
// catalog and contact details from the identity system.
package directory

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested course or identity does not exist.
var ErrNotFound = errors.New("directory record not found")

// CourseFact is the slice of catalog state admission decisions depend on.
// Capacity is nil when the course has no seat limit.
type CourseFact struct {
	ID        int64
	Code      string
	Title     string
	Capacity  *int64
	FacultyID int64
}

// CourseDirectory answers course existence and capacity questions.
type CourseDirectory interface {
	// Lookup returns the course facts, or ErrNotFound for an unknown course.
	Lookup(ctx context.Context, courseID int64) (CourseFact, error)
}

// IdentityResolver resolves actor ids to contact emails for rosters.
type IdentityResolver interface {
	// Email returns the actor's email, or ErrNotFound for an unknown actor.
	Email(ctx context.Context, actorID int64) (string, error)
}
