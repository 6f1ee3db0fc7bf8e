package domain

// ProjectFavorites resolves an ordered favorite ID list against the
// current feed contents. IDs with no matching feed item are dropped from
// the result; they remain favorites and reappear if the item returns to
// the feed. When an ID occurs more than once in the feed, the first
// occurrence wins.
func ProjectFavorites(favoriteIDs []string, feed []ContentItem) []ContentItem {
	if len(favoriteIDs) == 0 || len(feed) == 0 {
		return nil
	}

	byID := make(map[string]ContentItem, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		byID[feed[i].ID] = feed[i]
	}

	var projected []ContentItem
	for _, id := range favoriteIDs {
		if item, ok := byID[id]; ok {
			projected = append(projected, item)
		}
	}

	return projected
}
