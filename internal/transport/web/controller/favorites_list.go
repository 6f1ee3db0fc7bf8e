package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// FavoritesList projects the ordered favorite ids onto the current feed
// contents. Favorited items not present in the feed are omitted from
// the view; they stay favorites.
type FavoritesList struct {
	Feed        *state.FeedStore
	Preferences *state.PreferencesStore
}

type FavoritesListResponse struct {
	Data []domain.ContentItem `json:"data"`
}

func (c FavoritesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	favorites := domain.ProjectFavorites(
		c.Preferences.Snapshot().FavoriteContent,
		c.Feed.Snapshot().Feed,
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(FavoritesListResponse{Data: favorites}); err != nil {
		logger.ErrorContext(ctx, "unable to write favorites to response", "error", err)
	}
}
