package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FlashAdking/personal-dashboard/internal/aggregator"
	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

const trendingLimit = 12

// trendingCategories spans the default category spread so the trending
// view is populated regardless of the user's subscriptions.
var trendingCategories = []string{"technology", "sports", "business", "entertainment"}

// Trending responds with the most recent items across all content types
// and the default category spread. It reads nothing from and writes
// nothing to the feed store.
type Trending struct {
	Aggregator  aggregator.ContentAggregator
	CacheMaxAge time.Duration
}

type TrendingResponse struct {
	Data []domain.ContentItem `json:"data"`
}

func (c Trending) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	resp, err := c.Aggregator.FetchAll(ctx, trendingCategories, 1, domain.ValidContentTypes)
	if err != nil {
		logger.ErrorContext(ctx, "trending fetch failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := resp.Articles
	if len(items) > trendingLimit {
		items = items[:trendingLimit]
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(TrendingResponse{Data: items}); err != nil {
		logger.ErrorContext(ctx, "unable to write trending items to response", "error", err)
	}
}
