package tmdb

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

func moviePayload(totalPages, totalResults int, movies ...map[string]any) map[string]any {
	return map[string]any{
		"page":          1,
		"results":       movies,
		"total_pages":   totalPages,
		"total_results": totalResults,
	}
}

func rawMovieJSON(id int, title, releaseDate string) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        title,
		"overview":     "Overview of " + title,
		"poster_path":  "/poster.jpg",
		"release_date": releaseDate,
	}
}

func TestClient_TrendingPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/day", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		require.NoError(t, json.NewEncoder(w).Encode(
			moviePayload(20, 400, rawMovieJSON(603, "The Matrix", "1999-03-31")),
		))
	})

	resp, err := client.TrendingPage(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Articles, 1)
	movie := resp.Articles[0]
	assert.Equal(t, "movie-603", movie.ID)
	assert.Equal(t, domain.ContentTypeMovie, movie.Type)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", movie.ImageURL)
	assert.Equal(t, "https://www.themoviedb.org/movie/603", movie.URL)
	assert.Equal(t, "entertainment", movie.Category)
	assert.Equal(t, time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC), movie.PublishedAt)
	assert.Equal(t, "The Movie Database", movie.Source)

	assert.True(t, resp.HasMore)
	assert.Equal(t, trendingMaxTotal, resp.TotalResults, "trending totals are capped")
}

func TestClient_TrendingPage_DepthCap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(moviePayload(500, 100)))
	})

	resp, err := client.TrendingPage(context.Background(), trendingMaxPage)
	require.NoError(t, err)
	assert.False(t, resp.HasMore, "pagination stops at the trending depth cap")
	assert.Equal(t, 100, resp.TotalResults)
}

func TestClient_DiscoverPage_GenreMapping(t *testing.T) {
	cases := []struct {
		name        string
		genre       string
		wantGenreID string
	}{
		{name: "known_genre", genre: "horror", wantGenreID: "27"},
		{name: "mixed_case_genre", genre: "Science-Fiction", wantGenreID: "878"},
		{name: "unmapped_genre_falls_back", genre: "technology", wantGenreID: "28"},
		{name: "empty_genre_falls_back", genre: "", wantGenreID: "28"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/discover/movie", r.URL.Path)
				assert.Equal(t, tc.wantGenreID, r.URL.Query().Get("with_genres"))
				assert.Equal(t, "popularity.desc", r.URL.Query().Get("sort_by"))
				require.NoError(t, json.NewEncoder(w).Encode(
					moviePayload(3, 60, rawMovieJSON(1, "Some Movie", "2024-11-15")),
				))
			})

			resp, err := client.DiscoverPage(context.Background(), tc.genre, 1)
			require.NoError(t, err)

			require.Len(t, resp.Articles, 1)
			assert.Equal(t, "genre-movie-1", resp.Articles[0].ID)
			assert.Equal(t, "TMDB Genre", resp.Articles[0].Source)
			assert.True(t, resp.HasMore)
			assert.Equal(t, 60, resp.TotalResults)
		})
	}
}

func TestClient_SearchPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "rocket", r.URL.Query().Get("query"))
		require.NoError(t, json.NewEncoder(w).Encode(
			moviePayload(10, 200, rawMovieJSON(42, "Rocket Science", "2007-08-10")),
		))
	})

	resp, err := client.SearchPage(context.Background(), "rocket", searchMaxPage)
	require.NoError(t, err)

	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "search-movie-42", resp.Articles[0].ID)
	assert.Equal(t, "TMDB Search", resp.Articles[0].Source)
	assert.False(t, resp.HasMore, "search depth is capped")
}

func TestClient_UndatedMovieKeepsZeroTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(
			moviePayload(1, 1, rawMovieJSON(7, "Unreleased", "")),
		))
	})

	resp, err := client.TrendingPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Articles, 1)
	assert.True(t, resp.Articles[0].PublishedAt.IsZero())
}

func TestClient_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.TrendingPage(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestClient_MissingKey(t *testing.T) {
	client := New("")
	require.False(t, client.Available())

	_, err := client.DiscoverPage(context.Background(), "horror", 1)
	require.ErrorIs(t, err, providers.ErrMissingAPIKey)
}
