package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/FlashAdking/personal-dashboard/internal/aggregator"
	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

// Search runs the search fan-out across every provider and responds
// with the merged, filtered results. Search is stateless; it never
// touches the feed store.
type Search struct {
	Aggregator aggregator.ContentAggregator
}

type SearchResponse struct {
	Query string `json:"query"`
	domain.ProviderResponse
}

func (c Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		logger.ErrorContext(ctx, "missing search query")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := pageFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse page in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	categories, _ := categoriesFromQuery(r.URL.Query())

	resp, err := c.Aggregator.SearchAll(ctx, query, categories, page)
	if err != nil {
		logger.ErrorContext(ctx, "content search failed", "error", err, "query", query)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SearchResponse{Query: query, ProviderResponse: resp}); err != nil {
		logger.ErrorContext(ctx, "unable to write search results to response", "error", err)
	}
}
