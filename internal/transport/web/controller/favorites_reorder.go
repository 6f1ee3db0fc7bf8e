package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// FavoritesReorder replaces the favorite id list with a user-supplied
// permutation of itself. Favorites order is independent of feed order.
type FavoritesReorder struct {
	Preferences *state.PreferencesStore
}

func (c FavoritesReorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode reorder request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !c.Preferences.ReorderFavorites(req.IDs) {
		logger.WarnContext(ctx, "favorites reorder rejected, ids are not a permutation of current favorites")
		w.WriteHeader(http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
