package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// SectionSet switches the active dashboard section.
type SectionSet struct {
	UI *state.UIStore
}

func (c SectionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	section := domain.DashboardSection(mux.Vars(r)["section"])

	if !c.UI.SetActiveSection(section) {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unrecognised dashboard section", "section", section)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
