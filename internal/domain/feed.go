package domain

// FeedState is the authoritative ordered list driving the feed display,
// together with its loading, error, and pagination flags.
type FeedState struct {
	Feed    []ContentItem `json:"feed"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	HasMore bool          `json:"hasMore"`
	Page    int           `json:"page"`
}
