// Package sqlite provides the SQLite-backed catalog store.
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
	"github.com/campusworks/registrar/internal/services/catalog/storage"
	"github.com/campusworks/registrar/internal/services/catalog/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is the catalog course store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
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

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts a course.
func (s *Store) Create(ctx context.Context, course storage.Course) (storage.Course, error) {
	if err := ctx.Err(); err != nil {
		return storage.Course{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Course{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(course.Code) == "" {
		return storage.Course{}, fmt.Errorf("course code is required")
	}
	if strings.TrimSpace(course.Title) == "" {
		return storage.Course{}, fmt.Errorf("course title is required")
	}
	if course.FacultyID <= 0 {
		return storage.Course{}, fmt.Errorf("faculty id is required")
	}

	var capacity sql.NullInt64
	if course.Capacity != nil {
		capacity = sql.NullInt64{Int64: *course.Capacity, Valid: true}
	}
	createdAt := course.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO courses (code, title, capacity, faculty_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		course.Code,
		course.Title,
		capacity,
		course.FacultyID,
		createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
			return storage.Course{}, storage.ErrCodeTaken
		}
		return storage.Course{}, fmt.Errorf("insert course: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Course{}, fmt.Errorf("insert course last id: %w", err)
	}
	course.ID = id
	course.CreatedAt = time.UnixMilli(createdAt.UTC().UnixMilli()).UTC()
	return course, nil
}

// Get returns a course by id.
func (s *Store) Get(ctx context.Context, courseID int64) (storage.Course, error) {
	if err := ctx.Err(); err != nil {
		return storage.Course{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Course{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, code, title, capacity, faculty_id, created_at
		 FROM courses
		 WHERE id = ?`,
		courseID,
	)
	course, err := scanCourse(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Course{}, storage.ErrNotFound
		}
		return storage.Course{}, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// List returns all courses ordered by creation time.
func (s *Store) List(ctx context.Context) ([]storage.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, code, title, capacity, faculty_id, created_at
		 FROM courses
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []storage.Course
	for rows.Next() {
		course, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list courses: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func scanCourse(scan func(...any) error) (storage.Course, error) {
	var (
		course    storage.Course
		capacity  sql.NullInt64
		createdAt int64
	)
	if err := scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&capacity,
		&course.FacultyID,
		&createdAt,
	); err != nil {
		return storage.Course{}, err
	}
	if capacity.Valid {
		value := capacity.Int64
		course.Capacity = &value
	}
	course.CreatedAt = time.UnixMilli(createdAt).UTC()
	return course, nil
}

var _ storage.CourseStore = (*Store)(nil)
