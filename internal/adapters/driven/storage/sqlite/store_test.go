package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []domain.SymbolRecord {
	return []domain.SymbolRecord{
		{
			Ref: "0001", Title: "File:ISO 7000 - Ref-No 0001.svg",
			User: "alice", UserID: 1,
			URL:            "https://upload.example.org/0001.svg",
			LicenseName:    "CC BY-SA 4.0",
			LicenseURL:     "https://creativecommons.org/licenses/by-sa/4.0",
			Description:    "General warning",
			DescriptionURL: "https://commons.example.org/wiki/File:0001.svg",
		},
		{Ref: "0434", Title: "File:ISO 7000 - Ref-No 0434.svg", User: "bob", UserID: 2},
	}
}

func TestStore_ReplaceAllAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, sampleRecords()))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, sampleRecords(), records)
}

func TestStore_ReplaceAll_Replaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, sampleRecords()))
	require.NoError(t, store.ReplaceAll(ctx, []domain.SymbolRecord{
		{Ref: "9999", Title: "File:ISO 7000 - Ref-No 9999.svg"},
	}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9999", records[0].Ref)
}

func TestStore_Count(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.ReplaceAll(ctx, sampleRecords()))
	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStore_LastFetched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.LastFetched(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.ReplaceAll(ctx, sampleRecords()))

	fetched, err := store.LastFetched(ctx)
	require.NoError(t, err)
	assert.False(t, fetched.IsZero())
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(context.Background(), sampleRecords()))
	require.NoError(t, store.Close())

	// Reopening runs migrate again over an up-to-date schema.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
