// Package admission owns every enrollment mutation. All writes funnel
// through the Controller, which serializes same-course operations with a
// per-course lock and delegates the capacity decision to the store's atomic
// conditional insert. Reads for admission always come from the write-primary;
// stale data must never admit a student into a full course.
package admission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/campusworks/registrar/internal/platform/errors"
	"github.com/campusworks/registrar/internal/platform/requestctx"
	"github.com/campusworks/registrar/internal/services/enrollment/directory"
	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

const (
	maxStoreAttempts = 3
	retryBaseDelay   = 25 * time.Millisecond
)

// Reads is the coordinator surface the controller consumes: the fail-closed
// admission count and the staleness-tolerant dashboard listing. The
// consistency coordinator implements it.
type Reads interface {
	ReadForAdmission(ctx context.Context, courseID int64) (int64, error)
	StudentEnrollmentsForDisplay(ctx context.Context, studentID int64) ([]storage.Enrollment, error)
}

// EnrollmentDetail is one of a student's enrollments enriched with catalog
// and contact facts for dashboards.
type EnrollmentDetail struct {
	Enrollment   storage.Enrollment
	CourseCode   string
	CourseTitle  string
	FacultyEmail string
}

// Config carries the controller's collaborators.
type Config struct {
	Store    storage.EnrollmentStore
	Reads    Reads
	Courses  directory.CourseDirectory
	Identity directory.IdentityResolver

	// IsTransient classifies store errors worth retrying. Nil means no
	// retries.
	IsTransient func(error) bool

	// Now and Sleep exist for tests; nil means the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Controller admits, drops, and reports enrollments.
type Controller struct {
	store       storage.EnrollmentStore
	reads       Reads
	courses     directory.CourseDirectory
	identity    directory.IdentityResolver
	isTransient func(error) bool
	now         func() time.Time
	sleep       func(time.Duration)
	locks       *courseLocks
}

// NewController validates the configuration and builds a controller.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("enrollment store is required")
	}
	if cfg.Reads == nil {
		return nil, fmt.Errorf("display reader is required")
	}
	if cfg.Courses == nil {
		return nil, fmt.Errorf("course directory is required")
	}
	if cfg.Identity == nil {
		return nil, fmt.Errorf("identity resolver is required")
	}
	controller := &Controller{
		store:       cfg.Store,
		reads:       cfg.Reads,
		courses:     cfg.Courses,
		identity:    cfg.Identity,
		isTransient: cfg.IsTransient,
		now:         cfg.Now,
		sleep:       cfg.Sleep,
		locks:       newCourseLocks(),
	}
	if controller.isTransient == nil {
		controller.isTransient = func(error) bool { return false }
	}
	if controller.now == nil {
		controller.now = time.Now
	}
	if controller.sleep == nil {
		controller.sleep = time.Sleep
	}
	return controller, nil
}

// Enroll admits the acting student into a course. The course lock is held
// across the whole admission so same-course operations serialize, and the
// store's conditional insert re-checks capacity atomically as a backstop.
func (c *Controller) Enroll(ctx context.Context, actor requestctx.Actor, courseID int64) (storage.Enrollment, error) {
	if courseID <= 0 {
		return storage.Enrollment{}, apperrors.New(apperrors.CodeCourseIDInvalid, "course id must be positive")
	}
	if !actor.IsStudent() {
		return storage.Enrollment{}, apperrors.New(apperrors.CodeActorNotStudent, "only students can enroll")
	}

	fact, err := c.courses.Lookup(ctx, courseID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return storage.Enrollment{}, apperrors.WithMetadata(apperrors.CodeCourseNotFound, "course not found", map[string]string{
				"course_id": strconv.FormatInt(courseID, 10),
			})
		}
		return storage.Enrollment{}, apperrors.Wrap(apperrors.CodeStoreUnavailable, "course lookup failed", err)
	}

	var capacity int64
	if fact.Capacity != nil {
		capacity = *fact.Capacity
	}

	release := c.locks.acquire(courseID)
	defer release()

	// First belt: a fresh count from the write-primary. It must come back or
	// the admission is refused; deciding on stale or missing data could
	// oversell the last seat.
	if capacity > 0 {
		count, err := c.reads.ReadForAdmission(ctx, courseID)
		if err != nil {
			return storage.Enrollment{}, apperrors.Wrap(apperrors.CodeStoreUnavailable, "admission read failed", err)
		}
		if count >= capacity {
			return storage.Enrollment{}, apperrors.WithMetadata(apperrors.CodeCapacityExceeded, "course is full", map[string]string{
				"course_id": strconv.FormatInt(courseID, 10),
				"capacity":  strconv.FormatInt(capacity, 10),
			})
		}
	}

	// Second belt: the store re-evaluates the capacity predicate inside the
	// insert statement itself.
	var enrollment storage.Enrollment
	err = c.withRetry(ctx, func() error {
		var insertErr error
		enrollment, insertErr = c.store.InsertIfCapacity(ctx, actor.ID, courseID, capacity, c.now())
		return insertErr
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyEnrolled):
			return storage.Enrollment{}, apperrors.New(apperrors.CodeAlreadyEnrolled, "student already enrolled in course")
		case errors.Is(err, storage.ErrCapacityExceeded):
			return storage.Enrollment{}, apperrors.WithMetadata(apperrors.CodeCapacityExceeded, "course is full", map[string]string{
				"course_id": strconv.FormatInt(courseID, 10),
				"capacity":  strconv.FormatInt(capacity, 10),
			})
		case c.isTransient(err):
			return storage.Enrollment{}, apperrors.Wrap(apperrors.CodeStoreTransient, "enrollment write kept failing", err)
		default:
			return storage.Enrollment{}, apperrors.Wrap(apperrors.CodeUnknown, "enrollment write failed", err)
		}
	}
	return enrollment, nil
}

// Drop removes the acting student's enrollment in a course. It shares the
// course lock with Enroll, so a drop and an admission for the same course
// never interleave.
func (c *Controller) Drop(ctx context.Context, actor requestctx.Actor, courseID int64) error {
	if courseID <= 0 {
		return apperrors.New(apperrors.CodeCourseIDInvalid, "course id must be positive")
	}
	if !actor.IsStudent() {
		return apperrors.New(apperrors.CodeActorNotStudent, "only students can drop")
	}

	release := c.locks.acquire(courseID)
	defer release()

	err := c.withRetry(ctx, func() error {
		return c.store.Delete(ctx, actor.ID, courseID)
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return apperrors.New(apperrors.CodeNotEnrolled, "student is not enrolled in course")
		case c.isTransient(err):
			return apperrors.Wrap(apperrors.CodeStoreTransient, "enrollment delete kept failing", err)
		default:
			return apperrors.Wrap(apperrors.CodeUnknown, "enrollment delete failed", err)
		}
	}
	return nil
}

// StudentEnrollments returns the acting student's enrollments enriched with
// course and faculty facts for display. A record whose course has since been
// removed from the catalog is returned with empty catalog fields rather than
// dropped.
func (c *Controller) StudentEnrollments(ctx context.Context, actor requestctx.Actor) ([]EnrollmentDetail, error) {
	if !actor.IsStudent() {
		return nil, apperrors.New(apperrors.CodeActorNotStudent, "only students have enrollments")
	}

	enrollments, err := c.reads.StudentEnrollmentsForDisplay(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "enrollment read failed", err)
	}

	details := make([]EnrollmentDetail, 0, len(enrollments))
	for _, enrollment := range enrollments {
		detail := EnrollmentDetail{Enrollment: enrollment}
		fact, err := c.courses.Lookup(ctx, enrollment.CourseID)
		switch {
		case err == nil:
			detail.CourseCode = fact.Code
			detail.CourseTitle = fact.Title
			email, err := c.identity.Email(ctx, fact.FacultyID)
			if err != nil && !errors.Is(err, directory.ErrNotFound) {
				return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "faculty lookup failed", err)
			}
			detail.FacultyEmail = email
		case errors.Is(err, directory.ErrNotFound):
			// Course removed after enrollment; keep the record.
		default:
			return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "course lookup failed", err)
		}
		details = append(details, detail)
	}
	return details, nil
}

// withRetry runs op, retrying transient store faults with doubling backoff.
// Domain rejections (capacity, duplicates, missing rows) surface immediately.
func (c *Controller) withRetry(ctx context.Context, op func() error) error {
	delay := retryBaseDelay
	var err error
	for attempt := 1; attempt <= maxStoreAttempts; attempt++ {
		err = op()
		if err == nil || !c.isTransient(err) {
			return err
		}
		if attempt == maxStoreAttempts {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.sleep(delay)
		delay *= 2
	}
	return err
}
