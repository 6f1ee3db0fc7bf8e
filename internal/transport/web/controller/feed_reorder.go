package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// ReorderRequest carries a drag-and-drop reordering: the full id list
// in its new display order.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// FeedReorder replaces the feed with a user-supplied permutation of the
// same items. A payload that is not a permutation of the current feed is
// rejected without changing anything.
type FeedReorder struct {
	Feed *state.FeedStore
}

func (c FeedReorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode reorder request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !c.Feed.Reorder(req.IDs) {
		logger.WarnContext(ctx, "feed reorder rejected, ids are not a permutation of current feed")
		w.WriteHeader(http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
