package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeCourseIDInvalid, codes.InvalidArgument},
		{CodeCourseNotFound, codes.NotFound},
		{CodeActorNotStudent, codes.PermissionDenied},
		{CodeAlreadyEnrolled, codes.AlreadyExists},
		{CodeNotEnrolled, codes.FailedPrecondition},
		{CodeCapacityExceeded, codes.ResourceExhausted},
		{CodeStoreTransient, codes.Unavailable},
		{CodeUnknown, codes.Internal},
	}
	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("%s maps to %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestTerminal(t *testing.T) {
	if CodeStoreTransient.Terminal() {
		t.Fatal("transient store errors are retryable")
	}
	if !CodeCapacityExceeded.Terminal() {
		t.Fatal("capacity exceeded is terminal")
	}
	if !CodeAlreadyEnrolled.Terminal() {
		t.Fatal("already enrolled is terminal")
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeCapacityExceeded, "course 7 is full"))

	if !stderrors.Is(err, New(CodeCapacityExceeded, "")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(err, New(CodeAlreadyEnrolled, "")) {
		t.Fatal("unexpected match for different code")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := Wrap(CodeStoreTransient, "count enrollments", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "count enrollments" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestToGRPCStatusCarriesErrorInfo(t *testing.T) {
	err := WithMetadata(CodeCapacityExceeded, "course is full", map[string]string{"course_id": "7"})

	st, ok := status.FromError(err.ToGRPCStatus())
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("status code = %v", st.Code())
	}
	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if ei, ok := detail.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.GetReason() != string(CodeCapacityExceeded) {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if info.GetMetadata()["course_id"] != "7" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
}
