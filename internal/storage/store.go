package storage

import (
	"context"

	"github.com/imuii/templatekit/internal/template"
)

// StoredTemplate is a persisted portfolio template record.
type StoredTemplate struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	HTMLTemplate string             `json:"html_template"`
	ThumbnailURL string             `json:"thumbnail_url"`
	Fields       []template.Field   `json:"fields"`
	Sections     []template.Section `json:"sections"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// TemplateStore defines persistence for templates and their derived models.
type TemplateStore interface {
	// Create inserts a template and returns it with its assigned ID.
	Create(ctx context.Context, t *StoredTemplate) (*StoredTemplate, error)

	// Get retrieves a template by ID.
	Get(ctx context.Context, id int64) (*StoredTemplate, error)

	// List returns a page of templates ordered by last update.
	List(ctx context.Context, limit, offset int) ([]*StoredTemplate, error)

	// Update overwrites a template's stored fields.
	Update(ctx context.Context, t *StoredTemplate) error

	// Delete removes a template by ID.
	Delete(ctx context.Context, id int64) error

	Close() error
}
