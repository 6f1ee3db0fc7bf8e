// Package newsapi adapts the NewsAPI.org headline and search endpoints
// into the dashboard's normalized content shape.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/providers"
)

const (
	defaultBaseURL  = "https://newsapi.org/v2"
	pageSize        = 20
	defaultCategory = "general"

	// Upstream marker for articles withdrawn by their publisher.
	removedTitle = "[Removed]"
)

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
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Available returns true if a NewsAPI key is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

func (c *Client) Name() string {
	return "NewsAPI"
}

type payload struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

type rawArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// FetchPage retrieves top headlines for the first subscribed category.
func (c *Client) FetchPage(ctx context.Context, categories []string, page int) (domain.ProviderResponse, error) {
	category := defaultCategory
	if len(categories) > 0 && categories[0] != "" {
		category = categories[0]
	}

	params := url.Values{}
	params.Set("category", category)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("country", "us")
	params.Set("language", "en")

	body, err := c.get(ctx, "/top-headlines", params)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	articles := make([]domain.ContentItem, 0, len(body.Articles))
	for _, raw := range body.Articles {
		item, ok := normalize(raw, category)
		if !ok {
			continue
		}
		item.ID = fmt.Sprintf("news-%s-%d", raw.PublishedAt, len(articles))
		articles = append(articles, item)
	}

	return domain.ProviderResponse{
		Articles:     articles,
		HasMore:      len(body.Articles) == pageSize,
		TotalResults: body.TotalResults,
	}, nil
}

// SearchPage retrieves articles matching a free-text query.
func (c *Client) SearchPage(ctx context.Context, query string, categories []string, page int) (domain.ProviderResponse, error) {
	category := defaultCategory
	if len(categories) > 0 && categories[0] != "" {
		category = categories[0]
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")

	body, err := c.get(ctx, "/everything", params)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	articles := make([]domain.ContentItem, 0, len(body.Articles))
	for _, raw := range body.Articles {
		item, ok := normalize(raw, category)
		if !ok {
			continue
		}
		item.ID = fmt.Sprintf("search-news-%s-%d-%d", query, page, len(articles))
		articles = append(articles, item)
	}

	return domain.ProviderResponse{
		Articles:     articles,
		HasMore:      len(body.Articles) == pageSize,
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

	params.Set("apiKey", c.apiKey)

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

// normalize maps one upstream record into the shared item shape,
// dropping records with a missing title, a publisher-removed marker,
// no source name, or an unparseable timestamp.
func normalize(raw rawArticle, category string) (domain.ContentItem, bool) {
	if raw.Title == "" || raw.Title == removedTitle || raw.Source.Name == "" {
		return domain.ContentItem{}, false
	}

	publishedAt, err := time.Parse(time.RFC3339, raw.PublishedAt)
	if err != nil {
		return domain.ContentItem{}, false
	}

	description := raw.Description
	if description == "" {
		description = raw.Content
	}
	if description == "" {
		description = "No description available"
	}

	return domain.ContentItem{
		Type:        domain.ContentTypeNews,
		Title:       raw.Title,
		Description: description,
		ImageURL:    raw.URLToImage,
		URL:         raw.URL,
		Category:    category,
		PublishedAt: publishedAt,
		Source:      raw.Source.Name,
	}, true
}
