package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// LanguageUpdate sets the display language.
type LanguageUpdate struct {
	Preferences *state.PreferencesStore
}

type LanguageUpdateRequest struct {
	Language string `json:"language"`
}

func (c LanguageUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req LanguageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode language request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Language) == "" {
		logger.ErrorContext(ctx, "empty language in request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.Preferences.SetLanguage(req.Language)
	w.WriteHeader(http.StatusNoContent)
}
