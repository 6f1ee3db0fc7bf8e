// Package tmdb adapts The Movie Database trending, discover, and search
// endpoints into the dashboard's normalized content shape.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/providers"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
	movieBaseURL   = "https://www.themoviedb.org/movie/"

	// Pagination depth caps; trending runs deeper than discover/search.
	trendingMaxPage = 10
	discoverMaxPage = 5
	searchMaxPage   = 5

	trendingMaxTotal = 200

	movieCategory = "entertainment"
)

// genreIDs maps free-form category names onto TMDB genre identifiers.
var genreIDs = map[string]int{
	"action":          28,
	"adventure":       12,
	"animation":       16,
	"comedy":          35,
	"crime":           80,
	"documentary":     99,
	"drama":           18,
	"family":          10751,
	"fantasy":         14,
	"horror":          27,
	"music":           10402,
	"mystery":         9648,
	"romance":         10749,
	"science-fiction": 878,
	"thriller":        53,
	"war":             10752,
	"western":         37,
}

const fallbackGenreID = 28 // action

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
	}
}

// Available returns true if a TMDB key is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

func (c *Client) Name() string {
	return "TMDB"
}

type payload struct {
	Page         int        `json:"page"`
	Results      []rawMovie `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type rawMovie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

// TrendingPage retrieves the daily trending movie listing.
func (c *Client) TrendingPage(ctx context.Context, page int) (domain.ProviderResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("language", "en-US")

	body, err := c.get(ctx, "/trending/movie/day", params)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	totalResults := body.TotalResults
	if totalResults > trendingMaxTotal {
		totalResults = trendingMaxTotal
	}

	return domain.ProviderResponse{
		Articles:     normalizeAll(body.Results, "movie-", "The Movie Database"),
		HasMore:      page < body.TotalPages && page < trendingMaxPage,
		TotalResults: totalResults,
	}, nil
}

// DiscoverPage retrieves movies for a genre, mapping unknown genre names
// onto the fallback genre.
func (c *Client) DiscoverPage(ctx context.Context, genre string, page int) (domain.ProviderResponse, error) {
	genreID, ok := genreIDs[strings.ToLower(genre)]
	if !ok {
		genreID = fallbackGenreID
	}

	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("page", strconv.Itoa(page))
	params.Set("language", "en-US")
	params.Set("sort_by", "popularity.desc")

	body, err := c.get(ctx, "/discover/movie", params)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	return domain.ProviderResponse{
		Articles:     normalizeAll(body.Results, "genre-movie-", "TMDB Genre"),
		HasMore:      page < body.TotalPages && page < discoverMaxPage,
		TotalResults: body.TotalResults,
	}, nil
}

// SearchPage retrieves movies matching a free-text query.
func (c *Client) SearchPage(ctx context.Context, query string, page int) (domain.ProviderResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("language", "en-US")

	body, err := c.get(ctx, "/search/movie", params)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	return domain.ProviderResponse{
		Articles:     normalizeAll(body.Results, "search-movie-", "TMDB Search"),
		HasMore:      page < body.TotalPages && page < searchMaxPage,
		TotalResults: body.TotalResults,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (payload, error) {
	if !c.Available() {
		return payload{}, fmt.Errorf("%s: %w", c.Name(), providers.ErrMissingAPIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return payload{}, fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return payload{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return payload{}, providers.TransportError(c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return payload{}, providers.StatusError(c.Name(), resp.StatusCode)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return payload{}, fmt.Errorf("decoding %s response: %w", c.Name(), err)
	}

	return body, nil
}

func normalizeAll(raws []rawMovie, idPrefix, source string) []domain.ContentItem {
	articles := make([]domain.ContentItem, 0, len(raws))
	for _, raw := range raws {
		if raw.Title == "" {
			continue
		}

		// Unreleased or undated movies keep a zero timestamp and sort
		// to the end of a recency-ordered feed.
		publishedAt, _ := time.Parse("2006-01-02", raw.ReleaseDate)

		imageURL := ""
		if raw.PosterPath != "" {
			imageURL = imageBaseURL + raw.PosterPath
		}

		articles = append(articles, domain.ContentItem{
			ID:          fmt.Sprintf("%s%d", idPrefix, raw.ID),
			Type:        domain.ContentTypeMovie,
			Title:       raw.Title,
			Description: raw.Overview,
			ImageURL:    imageURL,
			URL:         movieBaseURL + strconv.Itoa(raw.ID),
			Category:    movieCategory,
			PublishedAt: publishedAt,
			Source:      source,
		})
	}

	return articles
}
