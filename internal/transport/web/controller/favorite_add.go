package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// FavoriteAdd marks a content item as a favorite. Adding an id that is
// already a favorite changes nothing.
type FavoriteAdd struct {
	Preferences *state.PreferencesStore
}

func (c FavoriteAdd) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	if id == "" {
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "missing content id in favorite request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.Preferences.AddFavorite(id)
	w.WriteHeader(http.StatusNoContent)
}
