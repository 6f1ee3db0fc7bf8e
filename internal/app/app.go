package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/FlashAdking/personal-dashboard/internal/aggregator"
	"github.com/FlashAdking/personal-dashboard/internal/domain"
	"github.com/FlashAdking/personal-dashboard/internal/providers/newsapi"
	"github.com/FlashAdking/personal-dashboard/internal/providers/social"
	"github.com/FlashAdking/personal-dashboard/internal/providers/tmdb"
	"github.com/FlashAdking/personal-dashboard/internal/state"
	"github.com/FlashAdking/personal-dashboard/internal/transport/web/router"
	"github.com/FlashAdking/personal-dashboard/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	logger := domain.LoggerFromContext(ctx)

	news := newsapi.New(GetEnvAsString(ctx, "NEWS_API_KEY", ""))
	if !news.Available() {
		logger.WarnContext(ctx, "NewsAPI key not found, news features will fail soft",
			"variable_name", "NEWS_API_KEY")
	}

	movies := tmdb.New(GetEnvAsString(ctx, "TMDB_API_KEY", ""))
	if !movies.Available() {
		logger.WarnContext(ctx, "TMDB key not found, movie features will fail soft",
			"variable_name", "TMDB_API_KEY")
	}

	agg := &aggregator.Service{
		News:   news,
		Movies: movies,
		Social: social.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
	}

	stores := state.NewContainer()

	httpRouter, err := router.MakeRouter(
		agg,
		stores,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "FEED_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}
