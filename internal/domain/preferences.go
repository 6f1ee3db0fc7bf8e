package domain

// NotificationSettings controls which kinds of notifications the user
// has enabled.
type NotificationSettings struct {
	News            bool `json:"news"`
	Recommendations bool `json:"recommendations"`
	Social          bool `json:"social"`
}

// NotificationSettingsPatch is a partial update of NotificationSettings;
// nil fields leave the existing value unchanged.
type NotificationSettingsPatch struct {
	News            *bool `json:"news,omitempty"`
	Recommendations *bool `json:"recommendations,omitempty"`
	Social          *bool `json:"social,omitempty"`
}

// UserPreferences holds the user's category subscriptions, ordered
// favorite item IDs, and display settings. FavoriteContent ordering is
// independent of feed ordering and survives feed refreshes.
type UserPreferences struct {
	Categories           []string             `json:"categories"`
	FavoriteContent      []string             `json:"favoriteContent"`
	Language             string               `json:"language"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
}
