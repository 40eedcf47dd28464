package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			html_template TEXT,
			thumbnail_url TEXT,
			fields JSON,
			sections JSON,
			created_at TEXT,
			updated_at TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_templates_name ON templates(name);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Create(ctx context.Context, t *StoredTemplate) (*StoredTemplate, error) {
	fields, err := json.Marshal(t.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields: %w", err)
	}
	sections, err := json.Marshal(t.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (name, description, html_template, thumbnail_url, fields, sections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.Name, t.Description, t.HTMLTemplate, t.ThumbnailURL, fields, sections, now, now)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *t
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id int64) (*StoredTemplate, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, html_template, thumbnail_url, fields, sections, created_at, updated_at
		FROM templates WHERE id = ?
	`, id)
	return scanTemplate(row)
}

func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*StoredTemplate, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, html_template, thumbnail_url, fields, sections, created_at, updated_at
		FROM templates ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*StoredTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *SQLiteStore) Update(ctx context.Context, t *StoredTemplate) error {
	fields, err := json.Marshal(t.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}
	sections, err := json.Marshal(t.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `
		UPDATE templates
		SET name=?, description=?, html_template=?, thumbnail_url=?, fields=?, sections=?, updated_at=?
		WHERE id=?
	`, t.Name, t.Description, t.HTMLTemplate, t.ThumbnailURL, fields, sections, now, t.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("template %d not found", t.ID)
	}
	t.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("template %d not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*StoredTemplate, error) {
	var t StoredTemplate
	var fields, sections sql.NullString
	var description, htmlTemplate, thumbnail, createdAt, updatedAt sql.NullString

	err := row.Scan(&t.ID, &t.Name, &description, &htmlTemplate, &thumbnail, &fields, &sections, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template not found")
	}
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	t.HTMLTemplate = htmlTemplate.String
	t.ThumbnailURL = thumbnail.String
	t.CreatedAt = createdAt.String
	t.UpdatedAt = updatedAt.String

	if fields.Valid && fields.String != "" {
		if err := json.Unmarshal([]byte(fields.String), &t.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode fields: %w", err)
		}
	}
	if sections.Valid && sections.String != "" {
		if err := json.Unmarshal([]byte(sections.String), &t.Sections); err != nil {
			return nil, fmt.Errorf("failed to decode sections: %w", err)
		}
	}
	return &t, nil
}
