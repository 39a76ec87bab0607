package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestStore_RecordAndList tests the round trip and newest-first order.
func TestStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := domain.HistoryEntry{
		Label: "first", Locator: "https://example.com/a.pdf",
		OutputRef: "https://drive.example/1", Size: 900_000,
		DPI: 150, Quality: 70, WithinBudget: true,
		ProcessedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := domain.HistoryEntry{
		Label: "second", Locator: "https://example.com/b.pdf",
		OutputRef: "https://drive.example/2", Size: 1_200_000,
		DPI: 72, Quality: 30, WithinBudget: false,
		ProcessedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Record(ctx, older))
	require.NoError(t, store.Record(ctx, newer))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "second", entries[0].Label)
	assert.Equal(t, "first", entries[1].Label)
	assert.False(t, entries[0].WithinBudget)
	assert.Equal(t, int64(900_000), entries[1].Size)
	assert.Equal(t, 150, entries[1].DPI)
	assert.NotEmpty(t, entries[0].ID, "ID should be generated")
}

// TestStore_ListLimit tests the limit clamps the result set.
func TestStore_ListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, domain.HistoryEntry{
			Label: "entry", Locator: "loc", OutputRef: "ref",
			ProcessedAt: time.Date(2026, 8, 1, i, 0, 0, 0, time.UTC),
		}))
	}

	entries, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

// TestStore_EmptyList tests an unused store lists nothing.
func TestStore_EmptyList(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestNewStore_MigrationsIdempotent tests reopening the same directory.
func TestNewStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Record(context.Background(), domain.HistoryEntry{
		Label: "kept", Locator: "loc", OutputRef: "ref",
	}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	entries, err := second.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
