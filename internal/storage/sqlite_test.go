package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imuii/templatekit/internal/template"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleTemplate() *StoredTemplate {
	return &StoredTemplate{
		Name:         "Minimal",
		Description:  "A minimal portfolio",
		HTMLTemplate: "<html><body><!-- [HERO] Hero --><h1>{{name}}</h1></body></html>",
		Fields: []template.Field{
			{Key: "name", Label: "Name", Type: template.FieldText, Required: true},
		},
		Sections: []template.Section{
			{ID: "section-1", Type: template.TypeHero, Name: "Hero", Order: 1, Visible: true},
		},
	}
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleTemplate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	loaded, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Minimal", loaded.Name)
	assert.Contains(t, loaded.HTMLTemplate, "{{name}}")
	require.Len(t, loaded.Fields, 1)
	assert.Equal(t, "name", loaded.Fields[0].Key)
	require.Len(t, loaded.Sections, 1)
	assert.Equal(t, template.TypeHero, loaded.Sections[0].Type)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 404)
	assert.Error(t, err)
}

func TestSQLiteStore_Update(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleTemplate())
	require.NoError(t, err)

	created.Name = "Renamed"
	created.Sections = append(created.Sections, template.Section{
		ID: "section-2", Type: template.TypeFooter, Name: "Footer", Order: 2,
	})
	require.NoError(t, store.Update(ctx, created))

	loaded, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Name)
	assert.Len(t, loaded.Sections, 2)
}

func TestSQLiteStore_UpdateMissing(t *testing.T) {
	store := newTestStore(t)

	tpl := sampleTemplate()
	tpl.ID = 404
	assert.Error(t, store.Update(context.Background(), tpl))
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleTemplate())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.Error(t, err)

	assert.Error(t, store.Delete(ctx, created.ID))
}

func TestSQLiteStore_ListPagination(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		tpl := sampleTemplate()
		tpl.Name = string(rune('a' + i))
		_, err := store.Create(ctx, tpl)
		require.NoError(t, err)
	}

	page1, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := store.List(ctx, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	all, err := store.List(ctx, 0, 0) // zero limit falls back to default page size
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
