package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/providers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key")
	c.baseURL = srv.URL
	return c
}

func headlinesHandler(t *testing.T, body map[string]any, wantParams map[string]string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		for key, want := range wantParams {
			assert.Equal(t, want, r.URL.Query().Get(key), "query param %s", key)
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}
}

func rawArticleJSON(title, sourceName, publishedAt string) map[string]any {
	return map[string]any{
		"source":      map[string]any{"id": "", "name": sourceName},
		"title":       title,
		"description": "Description of " + title,
		"url":         "https://example.com/" + title,
		"urlToImage":  "https://example.com/" + title + ".jpg",
		"publishedAt": publishedAt,
	}
}

func TestClient_FetchPage(t *testing.T) {
	goodTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	client := newTestClient(t, headlinesHandler(t,
		map[string]any{
			"status":       "ok",
			"totalResults": 42,
			"articles": []map[string]any{
				rawArticleJSON("First", "Tech Today", goodTime.Format(time.RFC3339)),
				rawArticleJSON("", "Tech Today", goodTime.Format(time.RFC3339)),
				rawArticleJSON("[Removed]", "Tech Today", goodTime.Format(time.RFC3339)),
				rawArticleJSON("No Source", "", goodTime.Format(time.RFC3339)),
				rawArticleJSON("Bad Timestamp", "Tech Today", "not-a-date"),
				rawArticleJSON("Second", "Innovation Weekly", goodTime.Add(time.Hour).Format(time.RFC3339)),
			},
		},
		map[string]string{
			"category": "technology",
			"page":     "1",
			"pageSize": "20",
			"country":  "us",
			"language": "en",
			"apiKey":   "test-key",
		},
	))

	resp, err := client.FetchPage(context.Background(), []string{"technology"}, 1)
	require.NoError(t, err)

	require.Len(t, resp.Articles, 2, "malformed records are filtered, not errors")
	assert.Equal(t, 42, resp.TotalResults)
	assert.False(t, resp.HasMore, "fewer raw articles than a full page")

	first := resp.Articles[0]
	assert.Equal(t, "news-"+goodTime.Format(time.RFC3339)+"-0", first.ID)
	assert.Equal(t, domain.ContentTypeNews, first.Type)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, "technology", first.Category)
	assert.Equal(t, "Tech Today", first.Source)
	assert.Equal(t, goodTime, first.PublishedAt)

	assert.Equal(t, "news-"+goodTime.Add(time.Hour).Format(time.RFC3339)+"-1", resp.Articles[1].ID)
}

func TestClient_FetchPage_DefaultsCategory(t *testing.T) {
	client := newTestClient(t, headlinesHandler(t,
		map[string]any{"status": "ok", "articles": []map[string]any{}},
		map[string]string{"category": "general"},
	))

	resp, err := client.FetchPage(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Articles)
	assert.False(t, resp.HasMore)
}

func TestClient_FetchPage_HasMoreOnFullPage(t *testing.T) {
	goodTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	articles := make([]map[string]any, pageSize)
	for i := range articles {
		articles[i] = rawArticleJSON("Item", "Source", goodTime.Format(time.RFC3339))
	}

	client := newTestClient(t, headlinesHandler(t,
		map[string]any{"status": "ok", "totalResults": 100, "articles": articles},
		nil,
	))

	resp, err := client.FetchPage(context.Background(), []string{"technology"}, 1)
	require.NoError(t, err)
	assert.True(t, resp.HasMore)
}

func TestClient_FetchPage_StatusErrors(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		errContains string
	}{
		{name: "rate_limited", status: http.StatusTooManyRequests, errContains: "rate limit"},
		{name: "bad_key", status: http.StatusUnauthorized, errContains: "authentication failed"},
		{name: "upstream_down", status: http.StatusInternalServerError, errContains: "temporarily unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.FetchPage(context.Background(), []string{"technology"}, 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestClient_FetchPage_MissingKey(t *testing.T) {
	client := New("")
	require.False(t, client.Available())

	_, err := client.FetchPage(context.Background(), []string{"technology"}, 1)
	require.ErrorIs(t, err, providers.ErrMissingAPIKey)
}

func TestClient_SearchPage(t *testing.T) {
	goodTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	client := newTestClient(t, headlinesHandler(t,
		map[string]any{
			"status":       "ok",
			"totalResults": 7,
			"articles": []map[string]any{
				rawArticleJSON("Rocket launch", "Space Daily", goodTime.Format(time.RFC3339)),
			},
		},
		map[string]string{
			"q":      "rocket",
			"sortBy": "relevancy",
		},
	))

	resp, err := client.SearchPage(context.Background(), "rocket", nil, 2)
	require.NoError(t, err)

	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "search-news-rocket-2-0", resp.Articles[0].ID)
	assert.Equal(t, "general", resp.Articles[0].Category)
	assert.Equal(t, 7, resp.TotalResults)
}
