// Package consistency routes enrollment reads to the write-primary or the
// read-replica depending on what the caller needs the answer for.
//
// Admission decisions must see every committed write, so they read the
// primary and fail closed when it is unreachable. Display surfaces tolerate
// staleness (the replica refresh is operator-driven, expected lag under five
// seconds), so they prefer the replica and fall back to the primary when the
// replica cannot answer.
package consistency

import (
	"context"
	"fmt"
	"log"

	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

// Coordinator owns the primary/replica routing policy. The primary reader is
// required; the replica is optional and display reads degrade to the primary
// when it is absent.
type Coordinator struct {
	primary storage.Reader
	replica storage.Reader
}

// NewCoordinator builds a coordinator over the given readers. Passing a nil
// replica routes all reads to the primary.
func NewCoordinator(primary storage.Reader, replica storage.Reader) (*Coordinator, error) {
	if primary == nil {
		return nil, fmt.Errorf("primary reader is required")
	}
	return &Coordinator{primary: primary, replica: replica}, nil
}

// ReadForAdmission returns the committed enrollment count for a course as
// seen by the write-primary. It never consults the replica: an admission
// decision made on stale data could oversell a seat, so when the primary
// cannot answer the error propagates and the admission is refused.
func (c *Coordinator) ReadForAdmission(ctx context.Context, courseID int64) (int64, error) {
	count, err := c.primary.CountByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("admission read: %w", err)
	}
	return count, nil
}

// ReadForDisplay returns the enrollment count for display surfaces. The
// replica answers when it can; a replica failure degrades to the primary and
// only a failure of both surfaces an error.
func (c *Coordinator) ReadForDisplay(ctx context.Context, courseID int64) (int64, error) {
	if c.replica != nil {
		count, err := c.replica.CountByCourse(ctx, courseID)
		if err == nil {
			return count, nil
		}
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		log.Printf("event=replica_read_failed op=count course_id=%d error=%q", courseID, err)
	}
	count, err := c.primary.CountByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("display read: %w", err)
	}
	return count, nil
}

// RosterForDisplay returns a course roster ordered by enrollment time, using
// the same replica-first policy as ReadForDisplay.
func (c *Coordinator) RosterForDisplay(ctx context.Context, courseID int64) ([]storage.Enrollment, error) {
	if c.replica != nil {
		roster, err := c.replica.ListByCourse(ctx, courseID)
		if err == nil {
			return roster, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("event=replica_read_failed op=roster course_id=%d error=%q", courseID, err)
	}
	roster, err := c.primary.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("display roster: %w", err)
	}
	return roster, nil
}

// StudentEnrollmentsForDisplay returns a student's enrollments for dashboard
// surfaces, replica-first with primary fallback.
func (c *Coordinator) StudentEnrollmentsForDisplay(ctx context.Context, studentID int64) ([]storage.Enrollment, error) {
	if c.replica != nil {
		enrollments, err := c.replica.ListByStudent(ctx, studentID)
		if err == nil {
			return enrollments, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("event=replica_read_failed op=student_enrollments student_id=%d error=%q", studentID, err)
	}
	enrollments, err := c.primary.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("display student enrollments: %w", err)
	}
	return enrollments, nil
}
