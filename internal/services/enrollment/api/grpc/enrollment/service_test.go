package enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	enrollmentv1 "github.com/campusworks/registrar/api/gen/go/enrollment/v1"
	"github.com/campusworks/registrar/internal/services/enrollment/directory"
	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

type fakeReads struct {
	counts    map[int64]int64
	countErr  error
	rosters   map[int64][]storage.Enrollment
	rosterErr error
}

func (f *fakeReads) ReadForDisplay(ctx context.Context, courseID int64) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[courseID], nil
}

func (f *fakeReads) RosterForDisplay(ctx context.Context, courseID int64) ([]storage.Enrollment, error) {
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	return f.rosters[courseID], nil
}

type fakeCourses struct {
	facts map[int64]directory.CourseFact
	err   error
}

func (f *fakeCourses) Lookup(ctx context.Context, courseID int64) (directory.CourseFact, error) {
	if f.err != nil {
		return directory.CourseFact{}, f.err
	}
	fact, ok := f.facts[courseID]
	if !ok {
		return directory.CourseFact{}, directory.ErrNotFound
	}
	return fact, nil
}

type fakeIdentity struct {
	emails map[int64]string
	err    error
}

func (f *fakeIdentity) Email(ctx context.Context, actorID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	email, ok := f.emails[actorID]
	if !ok {
		return "", directory.ErrNotFound
	}
	return email, nil
}

func intptr(v int64) *int64 { return &v }

func newTestService(t *testing.T, reads *fakeReads) *Service {
	t.Helper()
	service, err := NewService(
		reads,
		&fakeCourses{facts: map[int64]directory.CourseFact{
			7: {ID: 7, Code: "CS101", Title: "Intro to Computing", Capacity: intptr(3), FacultyID: 42},
			9: {ID: 9, Code: "CS900", Title: "Open Seminar", FacultyID: 42},
		}},
		&fakeIdentity{emails: map[int64]string{101: "ada@example.edu", 102: "lin@example.edu"}},
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service
}

func wantStatus(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if st.Code() != code {
		t.Fatalf("status = %s, want %s (err: %v)", st.Code(), code, err)
	}
}

func TestGetEnrollmentCount(t *testing.T) {
	service := newTestService(t, &fakeReads{counts: map[int64]int64{7: 2}})

	resp, err := service.GetEnrollmentCount(context.Background(), &enrollmentv1.GetEnrollmentCountRequest{CourseId: 7})
	if err != nil {
		t.Fatalf("get enrollment count: %v", err)
	}
	if resp.GetCourseId() != 7 || resp.GetEnrolledCount() != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetEnrollmentCountUnknownCourseAnswersZero(t *testing.T) {
	service := newTestService(t, &fakeReads{counts: map[int64]int64{}})

	resp, err := service.GetEnrollmentCount(context.Background(), &enrollmentv1.GetEnrollmentCountRequest{CourseId: 404})
	if err != nil {
		t.Fatalf("get enrollment count: %v", err)
	}
	if resp.GetEnrolledCount() != 0 {
		t.Fatalf("count = %d, want 0", resp.GetEnrolledCount())
	}
}

func TestGetEnrollmentCountValidatesCourseID(t *testing.T) {
	service := newTestService(t, &fakeReads{})
	_, err := service.GetEnrollmentCount(context.Background(), &enrollmentv1.GetEnrollmentCountRequest{CourseId: 0})
	wantStatus(t, err, codes.InvalidArgument)
}

func TestGetEnrollmentCountStoreFailure(t *testing.T) {
	service := newTestService(t, &fakeReads{countErr: errors.New("both readers down")})
	_, err := service.GetEnrollmentCount(context.Background(), &enrollmentv1.GetEnrollmentCountRequest{CourseId: 7})
	wantStatus(t, err, codes.Unavailable)
}

func TestCheckCapacityOpenSeat(t *testing.T) {
	service := newTestService(t, &fakeReads{counts: map[int64]int64{7: 2}})

	resp, err := service.CheckCapacity(context.Background(), &enrollmentv1.CheckCapacityRequest{CourseId: 7})
	if err != nil {
		t.Fatalf("check capacity: %v", err)
	}
	if !resp.GetHasCapacity() {
		t.Fatal("expected capacity with 2 of 3 seats taken")
	}
	if resp.GetCurrentCount() != 2 || resp.GetMaxCapacity() != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCheckCapacityFullCourse(t *testing.T) {
	service := newTestService(t, &fakeReads{counts: map[int64]int64{7: 3}})

	resp, err := service.CheckCapacity(context.Background(), &enrollmentv1.CheckCapacityRequest{CourseId: 7})
	if err != nil {
		t.Fatalf("check capacity: %v", err)
	}
	if resp.GetHasCapacity() {
		t.Fatal("expected no capacity at the limit")
	}
}

func TestCheckCapacityUnboundedCourse(t *testing.T) {
	service := newTestService(t, &fakeReads{counts: map[int64]int64{9: 5000}})

	resp, err := service.CheckCapacity(context.Background(), &enrollmentv1.CheckCapacityRequest{CourseId: 9})
	if err != nil {
		t.Fatalf("check capacity: %v", err)
	}
	if !resp.GetHasCapacity() {
		t.Fatal("unbounded course always has capacity")
	}
	if resp.GetMaxCapacity() != 0 {
		t.Fatalf("max capacity = %d, want 0 for unbounded", resp.GetMaxCapacity())
	}
}

func TestCheckCapacityUnknownCourse(t *testing.T) {
	service := newTestService(t, &fakeReads{})
	_, err := service.CheckCapacity(context.Background(), &enrollmentv1.CheckCapacityRequest{CourseId: 404})
	wantStatus(t, err, codes.NotFound)
}

func TestGetCourseEnrollmentsOrderedRoster(t *testing.T) {
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, &fakeReads{rosters: map[int64][]storage.Enrollment{
		7: {
			{ID: 1, StudentID: 101, CourseID: 7, CreatedAt: base},
			{ID: 2, StudentID: 102, CourseID: 7, CreatedAt: base.Add(time.Minute)},
		},
	}})

	resp, err := service.GetCourseEnrollments(context.Background(), &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: 7})
	if err != nil {
		t.Fatalf("get course enrollments: %v", err)
	}
	if resp.GetTotalEnrolled() != 2 || len(resp.GetStudents()) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	first := resp.GetStudents()[0]
	if first.GetStudentId() != 101 || first.GetEmail() != "ada@example.edu" {
		t.Fatalf("unexpected first student: %+v", first)
	}
	if first.GetEnrolledAt() != "2026-03-02T09:00:00Z" {
		t.Fatalf("enrolled at = %q", first.GetEnrolledAt())
	}
}

func TestGetCourseEnrollmentsUnknownCourse(t *testing.T) {
	service := newTestService(t, &fakeReads{})
	_, err := service.GetCourseEnrollments(context.Background(), &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: 404})
	wantStatus(t, err, codes.NotFound)
}

func TestGetCourseEnrollmentsFailsWholeOnRosterError(t *testing.T) {
	service := newTestService(t, &fakeReads{rosterErr: errors.New("both readers down")})
	_, err := service.GetCourseEnrollments(context.Background(), &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: 7})
	wantStatus(t, err, codes.Unavailable)
}

func TestGetCourseEnrollmentsFailsWholeOnIdentityError(t *testing.T) {
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reads := &fakeReads{rosters: map[int64][]storage.Enrollment{
		7: {{ID: 1, StudentID: 101, CourseID: 7, CreatedAt: base}},
	}}
	service, err := NewService(
		reads,
		&fakeCourses{facts: map[int64]directory.CourseFact{7: {ID: 7}}},
		&fakeIdentity{err: errors.New("identity db gone")},
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, rpcErr := service.GetCourseEnrollments(context.Background(), &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: 7})
	wantStatus(t, rpcErr, codes.Unavailable)
}

func TestGetCourseEnrollmentsMissingIdentityKeepsSeat(t *testing.T) {
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, &fakeReads{rosters: map[int64][]storage.Enrollment{
		7: {{ID: 1, StudentID: 999, CourseID: 7, CreatedAt: base}},
	}})

	resp, err := service.GetCourseEnrollments(context.Background(), &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: 7})
	if err != nil {
		t.Fatalf("get course enrollments: %v", err)
	}
	if len(resp.GetStudents()) != 1 || resp.GetStudents()[0].GetEmail() != "" {
		t.Fatalf("unexpected students: %+v", resp.GetStudents())
	}
}
