package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/campusworks/registrar/internal/services/enrollment/storage"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enrollment.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestInsertIfCapacityAdmitsAndCounts(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	enrollment, err := store.InsertIfCapacity(context.Background(), 101, 7, 30, now)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if enrollment.ID == 0 {
		t.Fatal("expected assigned enrollment id")
	}
	if !enrollment.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", enrollment.CreatedAt, now)
	}

	count, err := store.CountByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestInsertIfCapacityRejectsDuplicatePair(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if _, err := store.InsertIfCapacity(context.Background(), 101, 7, 0, now); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := store.InsertIfCapacity(context.Background(), 101, 7, 0, now.Add(time.Second))
	if !errors.Is(err, storage.ErrAlreadyEnrolled) {
		t.Fatalf("err = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestInsertIfCapacityClosesGateAtCapacity(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	for student := int64(1); student <= 3; student++ {
		if _, err := store.InsertIfCapacity(context.Background(), student, 7, 3, now); err != nil {
			t.Fatalf("insert student %d: %v", student, err)
		}
	}
	_, err := store.InsertIfCapacity(context.Background(), 4, 7, 3, now)
	if !errors.Is(err, storage.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	count, err := store.CountByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestInsertIfCapacityConcurrentDemand(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	const demand = 4
	const capacity = 3

	var wg sync.WaitGroup
	results := make([]error, demand)
	for i := 0; i < demand; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = store.InsertIfCapacity(context.Background(), int64(i+1), 7, capacity, now)
		}(i)
	}
	wg.Wait()

	var admitted, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, storage.ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if admitted != capacity || rejected != demand-capacity {
		t.Fatalf("admitted = %d rejected = %d, want %d/%d", admitted, rejected, capacity, demand-capacity)
	}

	count, err := store.CountByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != capacity {
		t.Fatalf("count = %d, want %d", count, capacity)
	}
}

func TestInsertIfCapacityUnboundedCourse(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	for student := int64(1); student <= 50; student++ {
		if _, err := store.InsertIfCapacity(context.Background(), student, 9, 0, now); err != nil {
			t.Fatalf("insert student %d: %v", student, err)
		}
	}
	count, err := store.CountByCourse(context.Background(), 9)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 50 {
		t.Fatalf("count = %d, want 50", count)
	}
}

func TestDeleteRemovesPairAndAllowsReenroll(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if _, err := store.InsertIfCapacity(context.Background(), 101, 7, 1, now); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Delete(context.Background(), 101, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(context.Background(), 101, 7); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}

	// The deleted row must leave no residual uniqueness conflict.
	if _, err := store.InsertIfCapacity(context.Background(), 101, 7, 1, now.Add(time.Minute)); err != nil {
		t.Fatalf("re-enroll after drop: %v", err)
	}
}

func TestListByCourseOrdersByCreation(t *testing.T) {
	store, _ := openTestStore(t)
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	for i, student := range []int64{31, 12, 55} {
		created := base.Add(time.Duration(i) * time.Minute)
		if _, err := store.InsertIfCapacity(context.Background(), student, 7, 0, created); err != nil {
			t.Fatalf("insert student %d: %v", student, err)
		}
	}

	enrollments, err := store.ListByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(enrollments) != 3 {
		t.Fatalf("len = %d, want 3", len(enrollments))
	}
	want := []int64{31, 12, 55}
	for i, enrollment := range enrollments {
		if enrollment.StudentID != want[i] {
			t.Fatalf("position %d student = %d, want %d", i, enrollment.StudentID, want[i])
		}
		if i > 0 && enrollments[i-1].CreatedAt.After(enrollment.CreatedAt) {
			t.Fatal("expected ascending created_at order")
		}
	}
}

func TestExistsAndListByStudent(t *testing.T) {
	store, _ := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if _, err := store.InsertIfCapacity(context.Background(), 101, 7, 0, now); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.InsertIfCapacity(context.Background(), 101, 8, 0, now.Add(time.Minute)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err := store.Exists(context.Background(), 101, 7)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected pair to exist")
	}
	exists, err = store.Exists(context.Background(), 102, 7)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("did not expect pair for other student")
	}

	mine, err := store.ListByStudent(context.Background(), 101)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	if mine[0].CourseID != 7 || mine[1].CourseID != 8 {
		t.Fatalf("unexpected course order: %+v", mine)
	}
}

func TestReplicaServesReads(t *testing.T) {
	store, path := openTestStore(t)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if _, err := store.InsertIfCapacity(context.Background(), 101, 7, 0, now); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Same-file deployment: the replica handle reads the primary file directly.
	replica, err := OpenReplica(path)
	if err != nil {
		t.Fatalf("open replica: %v", err)
	}
	defer replica.Close()

	count, err := replica.CountByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("replica count: %v", err)
	}
	if count != 1 {
		t.Fatalf("replica count = %d, want 1", count)
	}
	roster, err := replica.ListByCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("replica list: %v", err)
	}
	if len(roster) != 1 || roster[0].StudentID != 101 {
		t.Fatalf("unexpected roster: %+v", roster)
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(errors.New("database is locked (5) (SQLITE_BUSY)")) {
		t.Fatal("busy errors are transient")
	}
	if IsTransient(errors.New("UNIQUE constraint failed: enrollments.student_id, enrollments.course_id")) {
		t.Fatal("constraint rejections are not transient")
	}
	if IsTransient(nil) {
		t.Fatal("nil is not transient")
	}
}
