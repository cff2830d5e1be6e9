// Package storage defines persistence contracts for the course catalog.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the requested course does not exist.
var ErrNotFound = errors.New("course not found")

// ErrCodeTaken indicates another course already uses the code.
var ErrCodeTaken = errors.New("course code already in use")

// Course is one catalog entry. Capacity is nil for unbounded courses.
type Course struct {
	ID        int64
	Code      string
	Title     string
	Capacity  *int64
	FacultyID int64
	CreatedAt time.Time
}

// CourseStore persists catalog entries.
type CourseStore interface {
	// Create inserts a course and returns it with the assigned id. Returns
	// ErrCodeTaken when the code is already in use.
	Create(ctx context.Context, course Course) (Course, error)
	// Get returns a course by id, or ErrNotFound.
	Get(ctx context.Context, courseID int64) (Course, error)
	// List returns all courses ordered by creation time.
	List(ctx context.Context) ([]Course, error)
}
