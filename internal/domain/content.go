package domain

import (
	"time"
)

// ContentType identifies which kind of upstream source an item came from.
type ContentType string

const (
	ContentTypeNews   ContentType = "news"
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSocial ContentType = "social"
)

var ValidContentTypes = []ContentType{
	ContentTypeNews,
	ContentTypeMovie,
	ContentTypeSocial,
}

// ContentItem is the normalized unit shared by every provider and the
// presentation layer. ID is stable across repeated fetches of the same
// underlying item, but is not deduplicated across providers carrying the
// same real-world story.
type ContentItem struct {
	ID          string      `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	URL         string      `json:"url,omitempty"`
	Category    string      `json:"category"`
	PublishedAt time.Time   `json:"publishedAt"`
	Source      string      `json:"source"`
}

// ProviderResponse is the uniform contract returned by every provider
// adapter and by the aggregation service itself.
type ProviderResponse struct {
	Articles     []ContentItem `json:"articles"`
	HasMore      bool          `json:"hasMore"`
	TotalResults int           `json:"totalResults"`
}
