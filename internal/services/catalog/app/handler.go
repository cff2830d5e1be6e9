// Package server wires the catalog runtime: course storage, the enrollment
// query client, and the HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/campusworks/registrar/internal/platform/requestctx"
	"github.com/campusworks/registrar/internal/services/catalog/client"
	"github.com/campusworks/registrar/internal/services/catalog/storage"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// EnrollmentReads is the slice of the enrollment client the handler uses.
type EnrollmentReads interface {
	EnrollmentCount(ctx context.Context, courseID int64) (int64, error)
	Roster(ctx context.Context, courseID int64) ([]client.RosterEntry, error)
}

// Handler serves the catalog HTTP surface.
type Handler struct {
	courses    storage.CourseStore
	enrollment EnrollmentReads
	mux        *http.ServeMux
}

// NewHandler builds the catalog HTTP handler.
func NewHandler(courses storage.CourseStore, enrollment EnrollmentReads) (*Handler, error) {
	if courses == nil {
		return nil, errors.New("course store is required")
	}
	if enrollment == nil {
		return nil, errors.New("enrollment reads are required")
	}
	h := &Handler{courses: courses, enrollment: enrollment, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /courses", h.listCourses)
	h.mux.HandleFunc("POST /courses", h.createCourse)
	h.mux.HandleFunc("GET /courses/{id}", h.getCourse)
	h.mux.HandleFunc("GET /courses/{id}/students", h.courseStudents)
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type courseResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Title     string `json:"title"`
	Capacity  *int64 `json:"capacity"`
	FacultyID int64  `json:"facultyId"`
	CreatedAt string `json:"createdAt"`

	// EnrolledCount is null when the enrollment service could not answer;
	// CountUnavailable distinguishes that from a course nobody enrolled in.
	EnrolledCount    *int64 `json:"enrolledCount"`
	CountUnavailable bool   `json:"countUnavailable,omitempty"`
}

func (h *Handler) courseToResponse(r *http.Request, course storage.Course) courseResponse {
	resp := courseResponse{
		ID:        course.ID,
		Code:      course.Code,
		Title:     course.Title,
		Capacity:  course.Capacity,
		FacultyID: course.FacultyID,
		CreatedAt: course.CreatedAt.UTC().Format(time.RFC3339),
	}
	count, err := h.enrollment.EnrollmentCount(r.Context(), course.ID)
	if err != nil {
		// A failed count must read as unknown, not as an empty course.
		log.Printf("event=enrollment_count_failed course_id=%d error=%q", course.ID, err)
		resp.CountUnavailable = true
		return resp
	}
	resp.EnrolledCount = &count
	return resp
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_FAILED", "could not list courses")
		return
	}
	payload := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		payload = append(payload, h.courseToResponse(r, course))
	}
	writeJSON(w, http.StatusOK, map[string]any{"courses": payload})
}

type createCourseRequest struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Capacity *int64 `json:"capacity"`
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromHeaders(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid actor headers")
		return
	}
	if !actor.IsFaculty() {
		writeError(w, http.StatusForbidden, "ACTOR_NOT_FACULTY", "only faculty can create courses")
		return
	}

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BODY_INVALID", "request body must be JSON")
		return
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		writeError(w, http.StatusBadRequest, "CAPACITY_INVALID", "capacity must be positive when set")
		return
	}

	course, err := h.courses.Create(r.Context(), storage.Course{
		Code:      req.Code,
		Title:     req.Title,
		Capacity:  req.Capacity,
		FacultyID: actor.ID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrCodeTaken) {
			writeError(w, http.StatusConflict, "CODE_TAKEN", "course code already in use")
			return
		}
		writeError(w, http.StatusBadRequest, "COURSE_INVALID", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.courseToResponse(r, course))
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "COURSE_ID_INVALID", "course id must be numeric")
		return
	}
	course, err := h.courses.Get(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "COURSE_NOT_FOUND", "course not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "STORE_FAILED", "could not load course")
		return
	}
	writeJSON(w, http.StatusOK, h.courseToResponse(r, course))
}

type rosterEntryResponse struct {
	StudentID  int64  `json:"studentId"`
	Email      string `json:"email"`
	EnrolledAt string `json:"enrolledAt"`
}

func (h *Handler) courseStudents(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "COURSE_ID_INVALID", "course id must be numeric")
		return
	}
	if _, err := h.courses.Get(r.Context(), courseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "COURSE_NOT_FOUND", "course not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "STORE_FAILED", "could not load course")
		return
	}

	roster, err := h.enrollment.Roster(r.Context(), courseID)
	if err != nil {
		// The roster has no degraded rendering; a failed proxy call is a
		// bad gateway, not an empty class list.
		log.Printf("event=roster_proxy_failed course_id=%d error=%q", courseID, err)
		writeError(w, http.StatusBadGateway, "ENROLLMENT_UNAVAILABLE", "enrollment service did not answer")
		return
	}
	payload := make([]rosterEntryResponse, 0, len(roster))
	for _, entry := range roster {
		payload = append(payload, rosterEntryResponse{
			StudentID:  entry.StudentID,
			Email:      entry.Email,
			EnrolledAt: entry.EnrolledAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"courseId": courseID, "students": payload})
}

func actorFromHeaders(r *http.Request) (requestctx.Actor, bool) {
	id, err := strconv.ParseInt(r.Header.Get(actorIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return requestctx.Actor{}, false
	}
	role := requestctx.Role(r.Header.Get(actorRoleHeader))
	if role != requestctx.RoleStudent && role != requestctx.RoleFaculty {
		return requestctx.Actor{}, false
	}
	return requestctx.Actor{ID: id, Role: role}, true
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("event=response_encode_failed error=%q", err)
	}
}
