// Package client wraps the EnrollmentAdmissionService gRPC API for the
// catalog service. Errors always propagate to the caller; a failed lookup is
// reported, never silently rendered as a zero count.
package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	enrollmentv1 "github.com/campusworks/registrar/api/gen/go/enrollment/v1"
	platformgrpc "github.com/campusworks/registrar/internal/platform/grpc"
	"github.com/campusworks/registrar/internal/platform/timeouts"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrCourseNotFound indicates the enrollment service does not know the course.
var ErrCourseNotFound = errors.New("course not found in enrollment service")

// CapacityReport is the enrollment service's capacity answer for a course.
// MaxCapacity zero means the course is unbounded.
type CapacityReport struct {
	CourseID     int64
	HasCapacity  bool
	CurrentCount int64
	MaxCapacity  int64
}

// RosterEntry is one enrolled student on a course roster.
type RosterEntry struct {
	StudentID  int64
	Email      string
	EnrolledAt time.Time
}

// Client calls the enrollment admission query API.
type Client struct {
	conn *grpc.ClientConn
	api  enrollmentv1.EnrollmentAdmissionServiceClient
}

// Dial connects to the enrollment service and waits for its health check.
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		timeouts.GRPCDial,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("dial enrollment service: %w", err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, api: enrollmentv1.NewEnrollmentAdmissionServiceClient(conn)}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// EnrollmentCount returns the current enrollment count for a course.
func (c *Client) EnrollmentCount(ctx context.Context, courseID int64) (int64, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	resp, err := c.api.GetEnrollmentCount(callCtx, &enrollmentv1.GetEnrollmentCountRequest{CourseId: courseID})
	if err != nil {
		return 0, fmt.Errorf("get enrollment count: %w", err)
	}
	return resp.GetEnrolledCount(), nil
}

// Capacity returns the capacity report for a course.
func (c *Client) Capacity(ctx context.Context, courseID int64) (CapacityReport, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	resp, err := c.api.CheckCapacity(callCtx, &enrollmentv1.CheckCapacityRequest{CourseId: courseID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return CapacityReport{}, ErrCourseNotFound
		}
		return CapacityReport{}, fmt.Errorf("check capacity: %w", err)
	}
	return CapacityReport{
		CourseID:     resp.GetCourseId(),
		HasCapacity:  resp.GetHasCapacity(),
		CurrentCount: resp.GetCurrentCount(),
		MaxCapacity:  resp.GetMaxCapacity(),
	}, nil
}

// Roster returns the course roster ordered by enrollment time.
func (c *Client) Roster(ctx context.Context, courseID int64) ([]RosterEntry, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	resp, err := c.api.GetCourseEnrollments(callCtx, &enrollmentv1.GetCourseEnrollmentsRequest{CourseId: courseID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course enrollments: %w", err)
	}

	entries := make([]RosterEntry, 0, len(resp.GetStudents()))
	for _, student := range resp.GetStudents() {
		enrolledAt, err := time.Parse(time.RFC3339, student.GetEnrolledAt())
		if err != nil {
			return nil, fmt.Errorf("parse enrolled_at %q: %w", student.GetEnrolledAt(), err)
		}
		entries = append(entries, RosterEntry{
			StudentID:  student.GetStudentId(),
			Email:      student.GetEmail(),
			EnrolledAt: enrolledAt,
		})
	}
	return entries, nil
}
