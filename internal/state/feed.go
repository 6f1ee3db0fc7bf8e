// Package state holds the process-wide dashboard state: the feed slice,
// the user preference slice, and the UI slice. Each slice is mutated
// only through its own reducer-style entry points, and every mutation is
// atomic under the store's lock.
package state

import (
	"slices"
	"sync"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

// FeedStore owns the current page of merged items and its fetch
// lifecycle. Fetches are not queued or cancelled; instead each fetch
// takes a generation, and completions older than the last applied
// generation are discarded so a stale fetch can never overwrite newer
// state.
type FeedStore struct {
	mu         sync.Mutex
	state      domain.FeedState
	nextGen    uint64
	appliedGen uint64
}

func NewFeedStore() *FeedStore {
	return &FeedStore{
		state: domain.FeedState{HasMore: true, Page: 1},
	}
}

// BeginFetch transitions the store to loading and returns the
// generation to hand back with the fetch's result.
func (s *FeedStore) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextGen++
	s.state.Loading = true
	s.state.Error = ""
	return s.nextGen
}

// ApplyResult applies a fulfilled fetch. The originating request's page
// decides the semantics: page 1 replaces the feed wholesale (refresh,
// category change), later pages append (infinite scroll). Returns false
// if the result was stale and discarded.
func (s *FeedStore) ApplyResult(gen uint64, page int, resp domain.ProviderResponse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen

	if page <= 1 {
		s.state.Feed = slices.Clone(resp.Articles)
	} else {
		s.state.Feed = append(s.state.Feed, resp.Articles...)
	}
	s.state.Loading = false
	s.state.Page = page
	s.state.HasMore = resp.HasMore
	return true
}

// ApplyError records a failed fetch, leaving the feed contents
// untouched. Returns false if the failure was stale and discarded.
func (s *FeedStore) ApplyError(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen

	s.state.Loading = false
	s.state.Error = message
	return true
}

// Reorder replaces the feed with the permutation described by ids. The
// ids must be exactly the current feed's ids as a multiset; anything
// else is a no-op returning false. Reorder never adds or removes items.
func (s *FeedStore) Reorder(ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) != len(s.state.Feed) {
		return false
	}

	remaining := make(map[string][]domain.ContentItem, len(s.state.Feed))
	for _, item := range s.state.Feed {
		remaining[item.ID] = append(remaining[item.ID], item)
	}

	reordered := make([]domain.ContentItem, 0, len(ids))
	for _, id := range ids {
		queue := remaining[id]
		if len(queue) == 0 {
			return false
		}
		reordered = append(reordered, queue[0])
		remaining[id] = queue[1:]
	}

	s.state.Feed = reordered
	return true
}

// Clear resets the feed ahead of a fresh page-1 fetch.
func (s *FeedStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Feed = nil
	s.state.Page = 1
	s.state.HasMore = true
}

// Snapshot returns a copy of the current feed state safe for the caller
// to read without holding the store's lock.
func (s *FeedStore) Snapshot() domain.FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Feed = slices.Clone(s.state.Feed)
	return snapshot
}
