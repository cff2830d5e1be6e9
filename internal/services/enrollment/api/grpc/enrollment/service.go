// Package enrollment implements the EnrollmentAdmissionService gRPC API.
// The service is read-only: every answer comes through the display read path,
// and no RPC mutates enrollment state.
package enrollment

import (
	"context"
	"errors"
	"strconv"
	"time"

	enrollmentv1 "github.com/campusworks/registrar/api/gen/go/enrollment/v1"
	apperrors "github.com/campusworks/registrar/internal/platform/errors"
	"github.com/campusworks/registrar/internal/services/enrollment/directory"
	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

// Reads is the display read surface the service consumes. The consistency
// coordinator implements it.
type Reads interface {
	ReadForDisplay(ctx context.Context, courseID int64) (int64, error)
	RosterForDisplay(ctx context.Context, courseID int64) ([]storage.Enrollment, error)
}

// Service answers capacity and roster queries over gRPC.
type Service struct {
	enrollmentv1.UnimplementedEnrollmentAdmissionServiceServer

	reads    Reads
	courses  directory.CourseDirectory
	identity directory.IdentityResolver
}

// NewService builds the query service.
func NewService(reads Reads, courses directory.CourseDirectory, identity directory.IdentityResolver) (*Service, error) {
	if reads == nil {
		return nil, errors.New("reads are required")
	}
	if courses == nil {
		return nil, errors.New("course directory is required")
	}
	if identity == nil {
		return nil, errors.New("identity resolver is required")
	}
	return &Service{reads: reads, courses: courses, identity: identity}, nil
}

// GetEnrollmentCount returns the enrollment count for a course. A course with
// no enrollments answers zero, and so does an id the catalog has never seen;
// this RPC is a pure count and does not consult the catalog.
func (s *Service) GetEnrollmentCount(ctx context.Context, req *enrollmentv1.GetEnrollmentCountRequest) (*enrollmentv1.GetEnrollmentCountResponse, error) {
	courseID := req.GetCourseId()
	if courseID <= 0 {
		return nil, apperrors.New(apperrors.CodeCourseIDInvalid, "course id must be positive").ToGRPCStatus()
	}

	count, err := s.reads.ReadForDisplay(ctx, courseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "enrollment count unavailable", err).ToGRPCStatus()
	}
	return &enrollmentv1.GetEnrollmentCountResponse{
		CourseId:      courseID,
		EnrolledCount: count,
	}, nil
}

// CheckCapacity reports whether a course can admit another student. Unknown
// courses are NotFound. Unbounded courses report max_capacity zero and always
// have capacity.
func (s *Service) CheckCapacity(ctx context.Context, req *enrollmentv1.CheckCapacityRequest) (*enrollmentv1.CheckCapacityResponse, error) {
	courseID := req.GetCourseId()
	if courseID <= 0 {
		return nil, apperrors.New(apperrors.CodeCourseIDInvalid, "course id must be positive").ToGRPCStatus()
	}

	fact, err := s.courses.Lookup(ctx, courseID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, apperrors.WithMetadata(apperrors.CodeCourseNotFound, "course not found", map[string]string{
				"course_id": strconv.FormatInt(courseID, 10),
			}).ToGRPCStatus()
		}
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "course lookup failed", err).ToGRPCStatus()
	}

	count, err := s.reads.ReadForDisplay(ctx, courseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "enrollment count unavailable", err).ToGRPCStatus()
	}

	var maxCapacity int64
	hasCapacity := true
	if fact.Capacity != nil {
		maxCapacity = *fact.Capacity
		hasCapacity = count < maxCapacity
	}
	return &enrollmentv1.CheckCapacityResponse{
		CourseId:     courseID,
		HasCapacity:  hasCapacity,
		CurrentCount: count,
		MaxCapacity:  maxCapacity,
	}, nil
}

// GetCourseEnrollments returns the course roster ordered by enrollment time.
// The response is all or nothing: a failing store or identity lookup fails
// the whole RPC rather than returning a partial roster. A student missing
// from the identity system keeps their seat with an empty email.
func (s *Service) GetCourseEnrollments(ctx context.Context, req *enrollmentv1.GetCourseEnrollmentsRequest) (*enrollmentv1.GetCourseEnrollmentsResponse, error) {
	courseID := req.GetCourseId()
	if courseID <= 0 {
		return nil, apperrors.New(apperrors.CodeCourseIDInvalid, "course id must be positive").ToGRPCStatus()
	}

	if _, err := s.courses.Lookup(ctx, courseID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, apperrors.WithMetadata(apperrors.CodeCourseNotFound, "course not found", map[string]string{
				"course_id": strconv.FormatInt(courseID, 10),
			}).ToGRPCStatus()
		}
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "course lookup failed", err).ToGRPCStatus()
	}

	roster, err := s.reads.RosterForDisplay(ctx, courseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "roster unavailable", err).ToGRPCStatus()
	}

	students := make([]*enrollmentv1.EnrolledStudent, 0, len(roster))
	for _, enrollment := range roster {
		email, err := s.identity.Email(ctx, enrollment.StudentID)
		if err != nil && !errors.Is(err, directory.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "identity lookup failed", err).ToGRPCStatus()
		}
		students = append(students, &enrollmentv1.EnrolledStudent{
			StudentId:  enrollment.StudentID,
			Email:      email,
			EnrolledAt: enrollment.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &enrollmentv1.GetCourseEnrollmentsResponse{
		CourseId:      courseID,
		Students:      students,
		TotalEnrolled: int64(len(students)),
	}, nil
}
