// Package sqlite provides SQLite-backed enrollment storage. The write-primary
// opens read-write and is the only handle mutations go through; the replica
// opens read-only and serves display traffic.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/campusworks/registrar/internal/platform/storage/sqlitemigrate"
	"github.com/campusworks/registrar/internal/services/enrollment/storage"
	"github.com/campusworks/registrar/internal/services/enrollment/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
)

// Store is the write-primary enrollment store.
type Store struct {
	sqlDB *sql.DB
}

// Replica is a read-only enrollment store over a (possibly lagging) replica
// of the primary database file.
type Replica struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the write-primary store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// OpenReplica opens a read-only handle on a replica of the primary database.
// The replica file is produced by the operator's replication job; it may lag
// the primary and is never migrated or written here.
func OpenReplica(path string) (*Replica, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("replica path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?mode=ro&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=query_only(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite replica: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite replica: %w", err)
	}
	return &Replica{sqlDB: sqlDB}, nil
}

// Close closes the primary SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Close closes the replica SQLite handle.
func (r *Replica) Close() error {
	if r == nil || r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}

// InsertIfCapacity atomically admits one enrollment. The capacity predicate
// and the insert execute as a single statement, so two racing admissions for
// the last seat cannot both pass the gate.
func (s *Store) InsertIfCapacity(ctx context.Context, studentID int64, courseID int64, capacity int64, createdAt time.Time) (storage.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return storage.Enrollment{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Enrollment{}, fmt.Errorf("storage is not configured")
	}
	if studentID <= 0 {
		return storage.Enrollment{}, fmt.Errorf("student id is required")
	}
	if courseID <= 0 {
		return storage.Enrollment{}, fmt.Errorf("course id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO enrollments (student_id, course_id, created_at)
		 SELECT ?, ?, ?
		 WHERE ? <= 0
		    OR (SELECT COUNT(*) FROM enrollments WHERE course_id = ?) < ?`,
		studentID,
		courseID,
		toMillis(createdAt),
		capacity,
		courseID,
		capacity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.Enrollment{}, storage.ErrAlreadyEnrolled
		}
		return storage.Enrollment{}, fmt.Errorf("insert enrollment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Enrollment{}, fmt.Errorf("insert enrollment rows affected: %w", err)
	}
	if affected == 0 {
		return storage.Enrollment{}, storage.ErrCapacityExceeded
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Enrollment{}, fmt.Errorf("insert enrollment last id: %w", err)
	}
	return storage.Enrollment{
		ID:        id,
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: fromMillis(toMillis(createdAt)),
	}, nil
}

// Delete removes the (student, course) enrollment from the primary.
func (s *Store) Delete(ctx context.Context, studentID int64, courseID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM enrollments
		 WHERE student_id = ? AND course_id = ?`,
		studentID,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enrollment rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountByCourse returns the committed enrollment count on the primary.
func (s *Store) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	return countByCourse(ctx, s.db(), courseID)
}

// ListByCourse returns course enrollments ordered by creation time.
func (s *Store) ListByCourse(ctx context.Context, courseID int64) ([]storage.Enrollment, error) {
	return listByCourse(ctx, s.db(), courseID)
}

// ListByStudent returns a student's enrollments ordered by creation time.
func (s *Store) ListByStudent(ctx context.Context, studentID int64) ([]storage.Enrollment, error) {
	return listByStudent(ctx, s.db(), studentID)
}

// Exists reports whether the (student, course) pair is enrolled.
func (s *Store) Exists(ctx context.Context, studentID int64, courseID int64) (bool, error) {
	return pairExists(ctx, s.db(), studentID, courseID)
}

// CountByCourse returns the enrollment count as of the replica's last refresh.
func (r *Replica) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	return countByCourse(ctx, r.db(), courseID)
}

// ListByCourse returns course enrollments as of the replica's last refresh.
func (r *Replica) ListByCourse(ctx context.Context, courseID int64) ([]storage.Enrollment, error) {
	return listByCourse(ctx, r.db(), courseID)
}

// ListByStudent returns student enrollments as of the replica's last refresh.
func (r *Replica) ListByStudent(ctx context.Context, studentID int64) ([]storage.Enrollment, error) {
	return listByStudent(ctx, r.db(), studentID)
}

// Exists reports pair membership as of the replica's last refresh.
func (r *Replica) Exists(ctx context.Context, studentID int64, courseID int64) (bool, error) {
	return pairExists(ctx, r.db(), studentID, courseID)
}

func (s *Store) db() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

func (r *Replica) db() *sql.DB {
	if r == nil {
		return nil
	}
	return r.sqlDB
}

func countByCourse(ctx context.Context, sqlDB *sql.DB, courseID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int64
	err := sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = ?`,
		courseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

func listByCourse(ctx context.Context, sqlDB *sql.DB, courseID int64) ([]storage.Enrollment, error) {
	return listEnrollments(ctx, sqlDB,
		`SELECT id, student_id, course_id, created_at
		 FROM enrollments
		 WHERE course_id = ?
		 ORDER BY created_at ASC, id ASC`,
		courseID,
	)
}

func listByStudent(ctx context.Context, sqlDB *sql.DB, studentID int64) ([]storage.Enrollment, error) {
	return listEnrollments(ctx, sqlDB,
		`SELECT id, student_id, course_id, created_at
		 FROM enrollments
		 WHERE student_id = ?
		 ORDER BY created_at ASC, id ASC`,
		studentID,
	)
}

func listEnrollments(ctx context.Context, sqlDB *sql.DB, query string, arg int64) ([]storage.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := sqlDB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []storage.Enrollment
	for rows.Next() {
		var (
			enrollment storage.Enrollment
			createdAt  int64
		)
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list enrollments: %w", err)
		}
		enrollment.CreatedAt = fromMillis(createdAt)
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func pairExists(ctx context.Context, sqlDB *sql.DB, studentID int64, courseID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	var found int
	err := sqlDB.QueryRowContext(
		ctx,
		`SELECT 1 FROM enrollments WHERE student_id = ? AND course_id = ?`,
		studentID,
		courseID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// isUniqueViolation reports whether err is the UNIQUE(student_id, course_id)
// index rejecting a duplicate pair.
func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return strings.Contains(strings.ToLower(sqliteErr.Error()), "unique constraint failed")
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// IsTransient reports whether err is a retryable infrastructure fault, such
// as a busy or locked database, rather than a constraint rejection.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "database is locked") ||
		strings.Contains(message, "database table is locked") ||
		strings.Contains(message, "busy")
}

var _ storage.EnrollmentStore = (*Store)(nil)
var _ storage.Reader = (*Replica)(nil)
