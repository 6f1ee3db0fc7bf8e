// Package aggregator fans out to the provider adapters, merges their
// responses, and tolerates partial failure. It is the fail-soft
// boundary: individual provider errors are logged and discarded, and an
// error is returned only when every selected provider failed.
package aggregator

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/providers"
)

// ErrAllProvidersFailed is returned when every fanned-out provider call
// failed. This is the only aggregation error that reaches the user.
var ErrAllProvidersFailed = errors.New("all content providers failed")

// searchMaxPage caps search pagination depth regardless of what the
// providers report. Policy limit, not a provider limitation.
const searchMaxPage = 3

// ContentAggregator is the boundary the transport layer depends on.
type ContentAggregator interface {
	FetchAll(ctx context.Context, categories []string, page int, types []domain.ContentType) (domain.ProviderResponse, error)
	SearchAll(ctx context.Context, query string, categories []string, page int) (domain.ProviderResponse, error)
}

// Service merges content from the configured providers.
type Service struct {
	News   providers.ContentSource
	Movies providers.MovieSource
	Social providers.ContentSource
}

type call struct {
	provider string
	run      func(ctx context.Context) (domain.ProviderResponse, error)
}

type settlement struct {
	provider string
	resp     domain.ProviderResponse
	err      error
}

// FetchAll retrieves one merged page across the requested content types.
// News is skipped entirely when no categories are subscribed; the movie
// type fans out to both the trending and genre-discovery listings.
func (s *Service) FetchAll(
	ctx context.Context,
	categories []string,
	page int,
	types []domain.ContentType,
) (domain.ProviderResponse, error) {
	var calls []call

	if slices.Contains(types, domain.ContentTypeNews) && len(categories) > 0 {
		calls = append(calls, call{
			provider: s.News.Name(),
			run: func(ctx context.Context) (domain.ProviderResponse, error) {
				return s.News.FetchPage(ctx, categories, page)
			},
		})
	}

	if slices.Contains(types, domain.ContentTypeMovie) {
		genre := ""
		if len(categories) > 0 {
			genre = categories[0]
		}
		calls = append(calls,
			call{
				provider: s.Movies.Name() + " trending",
				run: func(ctx context.Context) (domain.ProviderResponse, error) {
					return s.Movies.TrendingPage(ctx, page)
				},
			},
			call{
				provider: s.Movies.Name() + " discover",
				run: func(ctx context.Context) (domain.ProviderResponse, error) {
					return s.Movies.DiscoverPage(ctx, genre, page)
				},
			},
		)
	}

	if slices.Contains(types, domain.ContentTypeSocial) {
		calls = append(calls, call{
			provider: s.Social.Name(),
			run: func(ctx context.Context) (domain.ProviderResponse, error) {
				return s.Social.FetchPage(ctx, categories, page)
			},
		})
	}

	merged, err := s.settleAndMerge(ctx, calls)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	return merged, nil
}

// SearchAll runs every provider's search variant and applies a final
// case-insensitive title/description filter over the merged results, as
// defense in depth against providers whose search is approximate.
func (s *Service) SearchAll(
	ctx context.Context,
	query string,
	categories []string,
	page int,
) (domain.ProviderResponse, error) {
	calls := []call{
		{
			provider: s.News.Name(),
			run: func(ctx context.Context) (domain.ProviderResponse, error) {
				return s.News.SearchPage(ctx, query, categories, page)
			},
		},
		{
			provider: s.Movies.Name(),
			run: func(ctx context.Context) (domain.ProviderResponse, error) {
				return s.Movies.SearchPage(ctx, query, page)
			},
		},
		{
			provider: s.Social.Name(),
			run: func(ctx context.Context) (domain.ProviderResponse, error) {
				return s.Social.SearchPage(ctx, query, categories, page)
			},
		},
	}

	merged, err := s.settleAndMerge(ctx, calls)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	needle := strings.ToLower(query)
	filtered := merged.Articles[:0:0]
	for _, item := range merged.Articles {
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			filtered = append(filtered, item)
		}
	}

	return domain.ProviderResponse{
		Articles:     filtered,
		HasMore:      merged.HasMore && page < searchMaxPage,
		TotalResults: len(filtered),
	}, nil
}

// settleAndMerge issues every call concurrently, waits for all of them
// to settle, then merges the successful responses. Partial or early
// merging is deliberately not done; the feed only updates once complete.
func (s *Service) settleAndMerge(ctx context.Context, calls []call) (domain.ProviderResponse, error) {
	if len(calls) == 0 {
		return domain.ProviderResponse{}, nil
	}

	settlements := make([]settlement, len(calls))

	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := c.run(ctx)
			settlements[i] = settlement{provider: c.provider, resp: resp, err: err}
		}()
	}
	wg.Wait()

	logger := domain.LoggerFromContext(ctx)

	var merged domain.ProviderResponse
	failures := 0
	for _, st := range settlements {
		if st.err != nil {
			failures++
			logger.WarnContext(ctx, "provider call failed",
				"provider", st.provider,
				"error", st.err,
			)
			continue
		}

		merged.Articles = append(merged.Articles, st.resp.Articles...)
		merged.HasMore = merged.HasMore || st.resp.HasMore
		merged.TotalResults += st.resp.TotalResults
	}

	if failures == len(calls) {
		return domain.ProviderResponse{}, ErrAllProvidersFailed
	}

	// Most recent first; ties keep input order, so the stable sort is
	// load-bearing here.
	sort.SliceStable(merged.Articles, func(i, j int) bool {
		return merged.Articles[i].PublishedAt.After(merged.Articles[j].PublishedAt)
	})

	return merged, nil
}
