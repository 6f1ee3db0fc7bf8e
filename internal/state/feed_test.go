package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

func feedItem(id string) domain.ContentItem {
	return domain.ContentItem{
		ID:          id,
		Type:        domain.ContentTypeNews,
		Title:       "Item " + id,
		PublishedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      "Test Source",
	}
}

func feedIDs(items []domain.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFeedStore_FetchLifecycle(t *testing.T) {
	store := NewFeedStore()

	gen := store.BeginFetch()
	snapshot := store.Snapshot()
	assert.True(t, snapshot.Loading)
	assert.Empty(t, snapshot.Error)

	applied := store.ApplyResult(gen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("a"), feedItem("b")},
		HasMore:  true,
	})
	require.True(t, applied)

	snapshot = store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Equal(t, []string{"a", "b"}, feedIDs(snapshot.Feed))
	assert.Equal(t, 1, snapshot.Page)
	assert.True(t, snapshot.HasMore)
}

func TestFeedStore_PageOneReplacesLaterPagesAppend(t *testing.T) {
	store := NewFeedStore()

	gen := store.BeginFetch()
	store.ApplyResult(gen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("a"), feedItem("b")},
		HasMore:  true,
	})

	gen = store.BeginFetch()
	store.ApplyResult(gen, 2, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("c")},
		HasMore:  false,
	})

	snapshot := store.Snapshot()
	assert.Equal(t, []string{"a", "b", "c"}, feedIDs(snapshot.Feed))
	assert.Equal(t, 2, snapshot.Page)
	assert.False(t, snapshot.HasMore)

	gen = store.BeginFetch()
	store.ApplyResult(gen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("d")},
		HasMore:  true,
	})

	snapshot = store.Snapshot()
	assert.Equal(t, []string{"d"}, feedIDs(snapshot.Feed))
	assert.Equal(t, 1, snapshot.Page)
}

func TestFeedStore_ErrorLeavesFeedUnchanged(t *testing.T) {
	store := NewFeedStore()

	gen := store.BeginFetch()
	store.ApplyResult(gen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("a")},
	})

	gen = store.BeginFetch()
	applied := store.ApplyError(gen, "Failed to fetch content")
	require.True(t, applied)

	snapshot := store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Equal(t, "Failed to fetch content", snapshot.Error)
	assert.Equal(t, []string{"a"}, feedIDs(snapshot.Feed))
}

func TestFeedStore_StaleCompletionDiscarded(t *testing.T) {
	store := NewFeedStore()

	staleGen := store.BeginFetch()
	newerGen := store.BeginFetch()

	applied := store.ApplyResult(newerGen, 2, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("newer")},
	})
	require.True(t, applied)

	// The slower page-1 fetch resolves afterwards; it must not clobber
	// the newer append.
	applied = store.ApplyResult(staleGen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("stale")},
	})
	assert.False(t, applied)

	snapshot := store.Snapshot()
	assert.Equal(t, []string{"newer"}, feedIDs(snapshot.Feed))

	assert.False(t, store.ApplyError(staleGen, "late failure"))
	assert.Empty(t, store.Snapshot().Error)
}

func TestFeedStore_Reorder(t *testing.T) {
	cases := []struct {
		name    string
		ids     []string
		wantOK  bool
		wantIDs []string
	}{
		{
			name:    "valid_permutation",
			ids:     []string{"c", "a", "b"},
			wantOK:  true,
			wantIDs: []string{"c", "a", "b"},
		},
		{
			name:    "identity_permutation",
			ids:     []string{"a", "b", "c"},
			wantOK:  true,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "unknown_id_rejected",
			ids:     []string{"a", "b", "x"},
			wantOK:  false,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "missing_id_rejected",
			ids:     []string{"a", "b"},
			wantOK:  false,
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "duplicated_id_rejected",
			ids:     []string{"a", "a", "b"},
			wantOK:  false,
			wantIDs: []string{"a", "b", "c"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewFeedStore()
			gen := store.BeginFetch()
			store.ApplyResult(gen, 1, domain.ProviderResponse{
				Articles: []domain.ContentItem{feedItem("a"), feedItem("b"), feedItem("c")},
			})

			assert.Equal(t, tc.wantOK, store.Reorder(tc.ids))
			assert.Equal(t, tc.wantIDs, feedIDs(store.Snapshot().Feed))
		})
	}
}

func TestFeedStore_ReorderPreservesDuplicateIDs(t *testing.T) {
	store := NewFeedStore()
	gen := store.BeginFetch()
	store.ApplyResult(gen, 1, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("a"), feedItem("dup"), feedItem("dup")},
	})

	require.True(t, store.Reorder([]string{"dup", "a", "dup"}))
	assert.Equal(t, []string{"dup", "a", "dup"}, feedIDs(store.Snapshot().Feed))
}

func TestFeedStore_Clear(t *testing.T) {
	store := NewFeedStore()
	gen := store.BeginFetch()
	store.ApplyResult(gen, 3, domain.ProviderResponse{
		Articles: []domain.ContentItem{feedItem("a")},
		HasMore:  false,
	})

	store.Clear()

	snapshot := store.Snapshot()
	assert.Empty(t, snapshot.Feed)
	assert.Equal(t, 1, snapshot.Page)
	assert.True(t, snapshot.HasMore)
}
