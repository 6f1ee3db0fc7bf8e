package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// SearchStateSet updates the UI's search query and search-mode flag.
type SearchStateSet struct {
	UI *state.UIStore
}

type SearchStateRequest struct {
	Query  string `json:"query"`
	Active bool   `json:"active"`
}

func (c SearchStateSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req SearchStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode search state request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.UI.SetSearch(req.Query, req.Active)
	w.WriteHeader(http.StatusNoContent)
}
