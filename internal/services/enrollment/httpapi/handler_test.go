package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campusworks/registrar/internal/services/enrollment/admission"
	"github.com/campusworks/registrar/internal/services/enrollment/directory"
	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

type memStore struct {
	nextID int64
	rows   []storage.Enrollment
}

func (m *memStore) InsertIfCapacity(ctx context.Context, studentID, courseID, capacity int64, createdAt time.Time) (storage.Enrollment, error) {
	var count int64
	for _, row := range m.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			return storage.Enrollment{}, storage.ErrAlreadyEnrolled
		}
		if row.CourseID == courseID {
			count++
		}
	}
	if capacity > 0 && count >= capacity {
		return storage.Enrollment{}, storage.ErrCapacityExceeded
	}
	m.nextID++
	row := storage.Enrollment{ID: m.nextID, StudentID: studentID, CourseID: courseID, CreatedAt: createdAt}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memStore) Delete(ctx context.Context, studentID, courseID int64) error {
	for i, row := range m.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memStore) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	for _, row := range m.rows {
		if row.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ListByCourse(ctx context.Context, courseID int64) ([]storage.Enrollment, error) {
	var rows []storage.Enrollment
	for _, row := range m.rows {
		if row.CourseID == courseID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *memStore) ListByStudent(ctx context.Context, studentID int64) ([]storage.Enrollment, error) {
	var rows []storage.Enrollment
	for _, row := range m.rows {
		if row.StudentID == studentID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *memStore) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	for _, row := range m.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

type memReads struct{ store *memStore }

func (m *memReads) ReadForAdmission(ctx context.Context, courseID int64) (int64, error) {
	return m.store.CountByCourse(ctx, courseID)
}

func (m *memReads) StudentEnrollmentsForDisplay(ctx context.Context, studentID int64) ([]storage.Enrollment, error) {
	return m.store.ListByStudent(ctx, studentID)
}

type memCourses struct{ facts map[int64]directory.CourseFact }

func (m *memCourses) Lookup(ctx context.Context, courseID int64) (directory.CourseFact, error) {
	fact, ok := m.facts[courseID]
	if !ok {
		return directory.CourseFact{}, directory.ErrNotFound
	}
	return fact, nil
}

type memIdentity struct{ emails map[int64]string }

func (m *memIdentity) Email(ctx context.Context, actorID int64) (string, error) {
	email, ok := m.emails[actorID]
	if !ok {
		return "", directory.ErrNotFound
	}
	return email, nil
}

func intptr(v int64) *int64 { return &v }

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store := &memStore{}
	controller, err := admission.NewController(admission.Config{
		Store: store,
		Reads: &memReads{store: store},
		Courses: &memCourses{facts: map[int64]directory.CourseFact{
			7: {ID: 7, Code: "CS101", Title: "Intro to Computing", Capacity: intptr(1), FacultyID: 42},
		}},
		Identity: &memIdentity{emails: map[int64]string{42: "prof@example.edu"}},
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	handler, err := NewHandler(controller)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}

func doRequest(handler http.Handler, method, target, body string, actorID, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if actorID != "" {
		req.Header.Set("X-Actor-Id", actorID)
	}
	if role != "" {
		req.Header.Set("X-Actor-Role", role)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestEnrollCreatesEnrollment(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student")
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", resp.Code, resp.Body)
	}
	var body struct {
		ID        int64 `json:"id"`
		StudentID int64 `json:"studentId"`
		CourseID  int64 `json:"courseId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.StudentID != 101 || body.CourseID != 7 || body.ID == 0 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEnrollRequiresActor(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestEnrollRejectsFaculty(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "42", "faculty")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body: %s)", resp.Code, resp.Body)
	}
}

func TestEnrollRejectsMalformedBody(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":`, "101", "student")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":404}`, "101", "student")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestEnrollFullCourseConflicts(t *testing.T) {
	handler := newTestHandler(t)

	if resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student"); resp.Code != http.StatusCreated {
		t.Fatalf("seed enroll status = %d", resp.Code)
	}
	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "102", "student")
	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body: %s)", resp.Code, resp.Body)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "CAPACITY_EXCEEDED" {
		t.Fatalf("error code = %q, want CAPACITY_EXCEEDED", body.Error.Code)
	}
}

func TestEnrollDuplicateConflicts(t *testing.T) {
	handler := newTestHandler(t)

	if resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student"); resp.Code != http.StatusCreated {
		t.Fatalf("seed enroll status = %d", resp.Code)
	}
	resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student")
	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body: %s)", resp.Code, resp.Body)
	}
}

func TestDropEnrollment(t *testing.T) {
	handler := newTestHandler(t)

	if resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student"); resp.Code != http.StatusCreated {
		t.Fatalf("seed enroll status = %d", resp.Code)
	}
	resp := doRequest(handler, http.MethodDelete, "/enroll/drop/7", "", "101", "student")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 (body: %s)", resp.Code, resp.Body)
	}

	resp = doRequest(handler, http.MethodDelete, "/enroll/drop/7", "", "101", "student")
	if resp.Code != http.StatusConflict {
		t.Fatalf("second drop status = %d, want 409", resp.Code)
	}
}

func TestDropRejectsNonNumericCourse(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodDelete, "/enroll/drop/abc", "", "101", "student")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestMineListsEnrollments(t *testing.T) {
	handler := newTestHandler(t)

	if resp := doRequest(handler, http.MethodPost, "/enroll", `{"courseId":7}`, "101", "student"); resp.Code != http.StatusCreated {
		t.Fatalf("seed enroll status = %d", resp.Code)
	}
	resp := doRequest(handler, http.MethodGet, "/enroll/mine", "", "101", "student")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.Code, resp.Body)
	}
	var body struct {
		Enrollments []struct {
			CourseID     int64  `json:"courseId"`
			CourseCode   string `json:"courseCode"`
			FacultyEmail string `json:"facultyEmail"`
		} `json:"enrollments"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Enrollments) != 1 {
		t.Fatalf("enrollments = %+v, want one", body.Enrollments)
	}
	if body.Enrollments[0].CourseCode != "CS101" || body.Enrollments[0].FacultyEmail != "prof@example.edu" {
		t.Fatalf("unexpected enrichment: %+v", body.Enrollments[0])
	}
}

func TestMineEmptyList(t *testing.T) {
	handler := newTestHandler(t)

	resp := doRequest(handler, http.MethodGet, "/enroll/mine", "", "101", "student")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"enrollments":[]`) {
		t.Fatalf("body = %s, want empty enrollments array", resp.Body)
	}
}
