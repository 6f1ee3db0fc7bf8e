package controller

import (
	"encoding/json"
	"net/http"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/state"
)

// NotificationsUpdate merge-patches the notification settings; keys
// absent from the request keep their current value.
type NotificationsUpdate struct {
	Preferences *state.PreferencesStore
}

func (c NotificationsUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var patch domain.NotificationSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.ErrorContext(ctx, "unable to decode notification settings request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.Preferences.MergeNotificationSettings(patch)
	w.WriteHeader(http.StatusNoContent)
}
