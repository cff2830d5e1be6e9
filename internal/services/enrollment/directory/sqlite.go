package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// CatalogDirectory reads course facts straight from the catalog service's
// SQLite file. The handle is read-only; the catalog service owns the schema
// and all writes.
type CatalogDirectory struct {
	sqlDB *sql.DB
}

// IdentityDirectory reads contact emails from the identity system's SQLite
// file, read-only.
type IdentityDirectory struct {
	sqlDB *sql.DB
}

func openReadOnly(path string, label string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s path is required", label)
	}
	dsn := filepath.Clean(path) + "?mode=ro&_busy_timeout=5000&_query_only=ON"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", label, err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", label, err)
	}
	return sqlDB, nil
}

// OpenCatalogDirectory opens a read-only course directory over the catalog
// database file.
func OpenCatalogDirectory(path string) (*CatalogDirectory, error) {
	sqlDB, err := openReadOnly(path, "catalog")
	if err != nil {
		return nil, err
	}
	return &CatalogDirectory{sqlDB: sqlDB}, nil
}

// OpenIdentityDirectory opens a read-only identity resolver over the identity
// database file.
func OpenIdentityDirectory(path string) (*IdentityDirectory, error) {
	sqlDB, err := openReadOnly(path, "identity")
	if err != nil {
		return nil, err
	}
	return &IdentityDirectory{sqlDB: sqlDB}, nil
}

// Close closes the catalog handle.
func (d *CatalogDirectory) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Close closes the identity handle.
func (d *IdentityDirectory) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Lookup returns the catalog facts for a course.
func (d *CatalogDirectory) Lookup(ctx context.Context, courseID int64) (CourseFact, error) {
	if err := ctx.Err(); err != nil {
		return CourseFact{}, err
	}
	if d == nil || d.sqlDB == nil {
		return CourseFact{}, fmt.Errorf("catalog directory is not configured")
	}

	var (
		fact     CourseFact
		capacity sql.NullInt64
	)
	err := d.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, code, title, capacity, faculty_id
		 FROM courses
		 WHERE id = ?`,
		courseID,
	).Scan(&fact.ID, &fact.Code, &fact.Title, &capacity, &fact.FacultyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CourseFact{}, ErrNotFound
		}
		return CourseFact{}, fmt.Errorf("lookup course: %w", err)
	}
	if capacity.Valid {
		value := capacity.Int64
		fact.Capacity = &value
	}
	return fact, nil
}

// Email returns the contact email for an actor id.
func (d *IdentityDirectory) Email(ctx context.Context, actorID int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if d == nil || d.sqlDB == nil {
		return "", fmt.Errorf("identity directory is not configured")
	}

	var email string
	err := d.sqlDB.QueryRowContext(
		ctx,
		`SELECT email FROM users WHERE id = ?`,
		actorID,
	).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}
	return email, nil
}

var _ CourseDirectory = (*CatalogDirectory)(nil)
var _ IdentityResolver = (*IdentityDirectory)(nil)
