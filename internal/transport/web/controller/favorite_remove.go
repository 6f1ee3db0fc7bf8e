package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// FavoriteRemove unmarks a content item as a favorite. Removing an id
// that is not a favorite is a no-op, not an error.
type FavoriteRemove struct {
	Preferences *state.PreferencesStore
}

func (c FavoriteRemove) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	if id == "" {
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "missing content id in favorite request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.Preferences.RemoveFavorite(id)
	w.WriteHeader(http.StatusNoContent)
}
