// Package providers defines the contract every upstream content source
// implements, plus the error classification shared by the HTTP adapters.
package providers

import (
	"context"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

// ContentSource is a provider selected by category subscriptions, such
// as a news or social source. Implementations normalize the provider's
// native payload into domain.ContentItem values and never surface a
// single malformed record as an error; only total failure to reach the
// provider returns one.
type ContentSource interface {
	Name() string
	FetchPage(ctx context.Context, categories []string, page int) (domain.ProviderResponse, error)
	SearchPage(ctx context.Context, query string, categories []string, page int) (domain.ProviderResponse, error)
}

// MovieSource is a provider of movie content. Trending and Discover are
// distinct upstream listings and fan out as separate aggregation calls.
type MovieSource interface {
	Name() string
	TrendingPage(ctx context.Context, page int) (domain.ProviderResponse, error)
	DiscoverPage(ctx context.Context, genre string, page int) (domain.ProviderResponse, error)
	SearchPage(ctx context.Context, query string, page int) (domain.ProviderResponse, error)
}
