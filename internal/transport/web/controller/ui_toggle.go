package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// UIToggleKind selects which UI flag a UIToggle controller flips.
type UIToggleKind int

const (
	UIToggleDarkMode UIToggleKind = iota
	UIToggleSidebar
)

// UIToggle flips one UI flag and responds with the new value.
type UIToggle struct {
	UI   *state.UIStore
	Kind UIToggleKind
}

type UIToggleResponse struct {
	Enabled bool `json:"enabled"`
}

func (c UIToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var enabled bool
	if c.Kind == UIToggleDarkMode {
		enabled = c.UI.ToggleDarkMode()
	} else {
		enabled = c.UI.ToggleSidebar()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(UIToggleResponse{Enabled: enabled}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write UI toggle result to response", "error", err)
	}
}
