package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/FlashAdking/personal-dashboard/internal/aggregator"
	"github.com/FlashAdking/personal-dashboard/internal/state"
	"github.com/FlashAdking/personal-dashboard/internal/transport/web/controller"
)

func MakeRouter(
	agg aggregator.ContentAggregator,
	stores *state.Container,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	cacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/feed", controller.FeedGet{
		Aggregator:  agg,
		Feed:        stores.Feed,
		Preferences: stores.Preferences,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/feed/reorder", controller.FeedReorder{
		Feed: stores.Feed,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/search", controller.Search{
		Aggregator: agg,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/trending", controller.Trending{
		Aggregator:  agg,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/favorites", controller.FavoritesList{
		Feed:        stores.Feed,
		Preferences: stores.Preferences,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/favorites/reorder", controller.FavoritesReorder{
		Preferences: stores.Preferences,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/favorites/{content_id}", controller.FavoriteAdd{
		Preferences: stores.Preferences,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/favorites/{content_id}", controller.FavoriteRemove{
		Preferences: stores.Preferences,
	}).Methods(http.MethodDelete)

	r.Handle("/v1/preferences", controller.PreferencesGet{
		Preferences: stores.Preferences,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences/categories", controller.CategoriesUpdate{
		Preferences: stores.Preferences,
		Feed:        stores.Feed,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/preferences/language", controller.LanguageUpdate{
		Preferences: stores.Preferences,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/preferences/notifications", controller.NotificationsUpdate{
		Preferences: stores.Preferences,
	}).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/ui", controller.UIGet{
		UI: stores.UI,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/ui/dark-mode/toggle", controller.UIToggle{
		UI:   stores.UI,
		Kind: controller.UIToggleDarkMode,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ui/sidebar/toggle", controller.UIToggle{
		UI:   stores.UI,
		Kind: controller.UIToggleSidebar,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ui/section/{section}", controller.SectionSet{
		UI: stores.UI,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/ui/search", controller.SearchStateSet{
		UI: stores.UI,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Feed:            stores.Feed,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
