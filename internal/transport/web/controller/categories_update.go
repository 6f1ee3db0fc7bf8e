package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// CategoriesUpdate replaces the category subscription list and clears
// the feed so the next page-1 fetch starts fresh.
type CategoriesUpdate struct {
	Preferences *state.PreferencesStore
	Feed        *state.FeedStore
}

type CategoriesUpdateRequest struct {
	Categories []string `json:"categories"`
}

func (c CategoriesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req CategoriesUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode categories request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.Preferences.SetCategories(req.Categories)
	c.Feed.Clear()

	w.WriteHeader(http.StatusNoContent)
}
