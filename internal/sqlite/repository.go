package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pavel-fokin/files-gallery/internal/files"
	_ "modernc.org/sqlite"
)

// Repository implements files.Journal using SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite repository
func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &Repository{db: db}

	// Initialize database schema
	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS uploads (
		name TEXT PRIMARY KEY,
		original_name TEXT NOT NULL,
		path TEXT NOT NULL,
		size INTEGER NOT NULL,
		mime_type TEXT NOT NULL,
		uploaded_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_uploads_uploaded_at ON uploads(uploaded_at);
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create uploads table: %w", err)
	}
	return nil
}

// Record stores upload metadata. A name collision replaces the older row,
// matching the file on disk.
func (r *Repository) Record(ctx context.Context, file *files.File) error {
	query := `
	INSERT OR REPLACE INTO uploads (name, original_name, path, size, mime_type, uploaded_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		file.Name,
		file.OriginalName,
		file.Path,
		file.Size,
		file.MimeType,
		file.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}

	return nil
}

// List retrieves the newest upload records
func (r *Repository) List(ctx context.Context, limit int) ([]*files.File, error) {
	query := `
	SELECT name, original_name, path, size, mime_type, uploaded_at
	FROM uploads
	ORDER BY uploaded_at DESC, name DESC
	LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads: %w", err)
	}
	defer rows.Close()

	var uploads []*files.File
	for rows.Next() {
		var file files.File
		err := rows.Scan(
			&file.Name,
			&file.OriginalName,
			&file.Path,
			&file.Size,
			&file.MimeType,
			&file.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		uploads = append(uploads, &file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload rows: %w", err)
	}

	return uploads, nil
}
