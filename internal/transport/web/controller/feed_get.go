package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/aggregator"
	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// userFacingFetchError is the only failure detail surfaced to the end
// user; per-provider errors stay in the logs.
const userFacingFetchError = "Failed to fetch content"

// FeedGet runs one aggregation fetch through the feed store and
// responds with the resulting feed state. A page-1 fetch replaces the
// feed, later pages append.
type FeedGet struct {
	Aggregator  aggregator.ContentAggregator
	Feed        *state.FeedStore
	Preferences *state.PreferencesStore
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, err := pageFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse page in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	types, err := contentTypesFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse content types in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	categories, ok := categoriesFromQuery(r.URL.Query())
	if !ok {
		categories = c.Preferences.Snapshot().Categories
	}

	gen := c.Feed.BeginFetch()

	resp, err := c.Aggregator.FetchAll(ctx, categories, page, types)
	if err != nil {
		logger.ErrorContext(ctx, "content fetch failed", "error", err, "page", page)
		c.Feed.ApplyError(gen, userFacingFetchError)
	} else {
		c.Feed.ApplyResult(gen, page, resp)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c.Feed.Snapshot()); err != nil {
		logger.ErrorContext(ctx, "unable to write feed state to response", "error", err)
	}
}
