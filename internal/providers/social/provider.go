// Package social simulates a social media provider. It generates posts
// locally but behaves like a real upstream: bounded random latency and a
// small random failure probability, so the aggregator's partial-failure
// path is exercised in normal operation.
package social

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

const (
	defaultCategory = "technology"
	itemsPerPage    = 10

	fetchPageCount  = 12
	fetchMaxPage    = 5
	fetchTotal      = 50
	searchPageCount = 8
	searchMaxPage   = 3
	searchTotal     = 25
)

var platforms = []string{"Twitter", "Instagram", "LinkedIn", "Facebook", "TikTok"}

var searchPlatforms = []string{"Twitter", "Instagram", "LinkedIn"}

var postTypes = []string{
	"Hot take", "Insight", "Update", "Analysis", "News",
	"Opinion", "Celebration", "Deep dive", "Breaking", "Trending",
}

var errUnavailable = errors.New("social media service temporarily unavailable")

// Provider generates simulated social posts. The randomness, clock, and
// sleep function are injected so tests can force both the success and
// failure paths deterministically.
type Provider struct {
	mu  sync.Mutex
	rng *rand.Rand

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	fetchFailureRate  float64
	searchFailureRate float64
}

func New(rng *rand.Rand) *Provider {
	return &Provider{
		rng:               rng,
		now:               time.Now,
		sleep:             sleepContext,
		fetchFailureRate:  0.02,
		searchFailureRate: 0.01,
	}
}

func (p *Provider) Name() string {
	return "Social"
}

// FetchPage generates a page of posts for the first subscribed category.
func (p *Provider) FetchPage(ctx context.Context, categories []string, page int) (domain.ProviderResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delay := 300*time.Millisecond + time.Duration(p.rng.Float64()*float64(500*time.Millisecond))
	if err := p.sleep(ctx, delay); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("%s fetch interrupted: %w", p.Name(), err)
	}

	if p.rng.Float64() < p.fetchFailureRate {
		return domain.ProviderResponse{}, errUnavailable
	}

	category := defaultCategory
	if len(categories) > 0 && categories[0] != "" {
		category = categories[0]
	}

	posts := make([]domain.ContentItem, fetchPageCount)
	for i := range posts {
		platform := platforms[p.rng.IntN(len(platforms))]
		postType := postTypes[p.rng.IntN(len(postTypes))]
		likes := p.rng.IntN(5000) + 100
		comments := p.rng.IntN(500) + 10

		posts[i] = domain.ContentItem{
			ID:    fmt.Sprintf("social-%s-%d-%d", category, page, i),
			Type:  domain.ContentTypeSocial,
			Title: fmt.Sprintf("%s: %s is revolutionizing the industry", postType, category),
			Description: fmt.Sprintf(
				"Engaging discussion about %s with %d likes, %d comments and growing engagement. "+
					"Community insights and expert opinions on the latest developments in %s.",
				category, likes, comments, category,
			),
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/400?social=%d", page*10+i),
			URL:         "#",
			Category:    category,
			PublishedAt: p.now().Add(-time.Duration(p.rng.Float64() * float64(3*24*time.Hour))),
			Source:      platform,
		}
	}

	return domain.ProviderResponse{
		Articles:     paginate(posts, page),
		HasMore:      page < fetchMaxPage,
		TotalResults: fetchTotal,
	}, nil
}

// SearchPage generates posts matching a free-text query.
func (p *Provider) SearchPage(ctx context.Context, query string, categories []string, page int) (domain.ProviderResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delay := 200*time.Millisecond + time.Duration(p.rng.Float64()*float64(400*time.Millisecond))
	if err := p.sleep(ctx, delay); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("%s search interrupted: %w", p.Name(), err)
	}

	if p.rng.Float64() < p.searchFailureRate {
		return domain.ProviderResponse{}, errUnavailable
	}

	category := query
	if len(categories) > 0 && categories[0] != "" {
		category = categories[0]
	}

	posts := make([]domain.ContentItem, searchPageCount)
	for i := range posts {
		platform := searchPlatforms[p.rng.IntN(len(searchPlatforms))]
		interactions := p.rng.IntN(2000) + 50

		posts[i] = domain.ContentItem{
			ID:    fmt.Sprintf("social-search-%s-%d-%d", query, page, i),
			Type:  domain.ContentTypeSocial,
			Title: fmt.Sprintf("Search result: %s discussion trending now", query),
			Description: fmt.Sprintf(
				"Found relevant content about %q with %d interactions. This post matches your "+
					"search criteria and includes valuable insights from the community.",
				query, interactions,
			),
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/400?search=%s%d", query, i),
			URL:         "#",
			Category:    category,
			PublishedAt: p.now().Add(-time.Duration(p.rng.Float64() * float64(2*24*time.Hour))),
			Source:      platform + " Search",
		}
	}

	return domain.ProviderResponse{
		Articles:     paginate(posts, page),
		HasMore:      page < searchMaxPage,
		TotalResults: searchTotal,
	}, nil
}

func paginate(posts []domain.ContentItem, page int) []domain.ContentItem {
	start := (page - 1) * itemsPerPage
	if start >= len(posts) {
		return nil
	}
	end := start + itemsPerPage
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
