package controller

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

func pageFromQuery(q url.Values) (int, error) {
	if !q.Has("page") {
		return 1, nil
	}

	page, err := strconv.ParseInt(q.Get("page"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse page from query: %w", err)
	}
	if page < 1 {
		return 0, fmt.Errorf("invalid page value [%d]", page)
	}
	return int(page), nil
}

func categoriesFromQuery(q url.Values) ([]string, bool) {
	if !q.Has("categories") {
		return nil, false
	}

	var categories []string
	for _, category := range strings.Split(q.Get("categories"), ",") {
		if category = strings.TrimSpace(category); category != "" {
			categories = append(categories, category)
		}
	}
	return categories, true
}

func contentTypesFromQuery(q url.Values) ([]domain.ContentType, error) {
	if !q.Has("types") {
		return slices.Clone(domain.ValidContentTypes), nil
	}

	var types []domain.ContentType
	for _, raw := range strings.Split(q.Get("types"), ",") {
		t := domain.ContentType(strings.TrimSpace(raw))
		if !slices.Contains(domain.ValidContentTypes, t) {
			return nil, fmt.Errorf("unrecognised content type: %s", raw)
		}
		types = append(types, t)
	}
	return types, nil
}
