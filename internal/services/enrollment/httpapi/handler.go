// Package httpapi exposes the enrollment mutations over HTTP for the
// gateway. The handler is a thin shim: it decodes the request, pulls the
// actor the gateway attached, and forwards to the admission controller.
// Authentication happens upstream; the actor headers are trusted.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/campusworks/registrar/internal/platform/errors"
	"github.com/campusworks/registrar/internal/platform/requestctx"
	"github.com/campusworks/registrar/internal/services/enrollment/admission"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// Handler serves the enrollment HTTP surface.
type Handler struct {
	controller *admission.Controller
	mux        *http.ServeMux
}

// NewHandler builds the HTTP handler over the admission controller.
func NewHandler(controller *admission.Controller) (*Handler, error) {
	if controller == nil {
		return nil, errors.New("admission controller is required")
	}
	h := &Handler{controller: controller, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /enroll", h.withActor(h.enroll))
	h.mux.HandleFunc("DELETE /enroll/drop/{courseId}", h.withActor(h.drop))
	h.mux.HandleFunc("GET /enroll/mine", h.withActor(h.mine))
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// withActor extracts the gateway-supplied actor headers and stores the actor
// in the request context. Requests without a usable actor are rejected.
func (h *Handler) withActor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(actorIDHeader), 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid actor id")
			return
		}
		role := requestctx.Role(r.Header.Get(actorRoleHeader))
		if role != requestctx.RoleStudent && role != requestctx.RoleFaculty {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid actor role")
			return
		}
		ctx := requestctx.WithActor(r.Context(), requestctx.Actor{ID: id, Role: role})
		next(w, r.WithContext(ctx))
	}
}

type enrollRequest struct {
	CourseID int64 `json:"courseId"`
}

type enrollmentResponse struct {
	ID         int64  `json:"id"`
	StudentID  int64  `json:"studentId"`
	CourseID   int64  `json:"courseId"`
	EnrolledAt string `json:"enrolledAt"`
}

type enrollmentDetailResponse struct {
	enrollmentResponse
	CourseCode   string `json:"courseCode,omitempty"`
	CourseTitle  string `json:"courseTitle,omitempty"`
	FacultyEmail string `json:"facultyEmail,omitempty"`
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	actor, _ := requestctx.ActorFromContext(r.Context())

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BODY_INVALID", "request body must be JSON with a courseId")
		return
	}

	enrollment, err := h.controller.Enroll(r.Context(), actor, req.CourseID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enrollmentResponse{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) drop(w http.ResponseWriter, r *http.Request) {
	actor, _ := requestctx.ActorFromContext(r.Context())

	courseID, err := strconv.ParseInt(r.PathValue("courseId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(apperrors.CodeCourseIDInvalid), "course id must be numeric")
		return
	}
	if err := h.controller.Drop(r.Context(), actor, courseID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	actor, _ := requestctx.ActorFromContext(r.Context())

	details, err := h.controller.StudentEnrollments(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	payload := make([]enrollmentDetailResponse, 0, len(details))
	for _, detail := range details {
		payload = append(payload, enrollmentDetailResponse{
			enrollmentResponse: enrollmentResponse{
				ID:         detail.Enrollment.ID,
				StudentID:  detail.Enrollment.StudentID,
				CourseID:   detail.Enrollment.CourseID,
				EnrolledAt: detail.Enrollment.CreatedAt.UTC().Format(time.RFC3339),
			},
			CourseCode:   detail.CourseCode,
			CourseTitle:  detail.CourseTitle,
			FacultyEmail: detail.FacultyEmail,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"enrollments": payload})
}

// httpStatus maps domain error codes to HTTP statuses.
func httpStatus(code apperrors.Code) int {
	switch code {
	case apperrors.CodeCourseIDInvalid, apperrors.CodeStudentIDInvalid:
		return http.StatusBadRequest
	case apperrors.CodeCourseNotFound, apperrors.CodeStudentNotFound:
		return http.StatusNotFound
	case apperrors.CodeActorNotStudent, apperrors.CodeActorNotFaculty:
		return http.StatusForbidden
	case apperrors.CodeAlreadyEnrolled, apperrors.CodeNotEnrolled, apperrors.CodeCapacityExceeded:
		return http.StatusConflict
	case apperrors.CodeStoreTransient, apperrors.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		writeError(w, httpStatus(domainErr.Code), string(domainErr.Code), domainErr.Message)
		return
	}
	log.Printf("event=unclassified_error error=%q", err)
	writeError(w, http.StatusInternalServerError, string(apperrors.CodeUnknown), "internal error")
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
