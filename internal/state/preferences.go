package state

import (
	"slices"
	"sync"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

// PreferencesStore owns the user preference slice: category
// subscriptions, the ordered favorite id list, language, and
// notification settings.
type PreferencesStore struct {
	mu    sync.Mutex
	prefs domain.UserPreferences
}

func NewPreferencesStore() *PreferencesStore {
	return &PreferencesStore{
		prefs: domain.UserPreferences{
			Categories: []string{"technology", "sports"},
			Language:   "en",
			NotificationSettings: domain.NotificationSettings{
				News:            true,
				Recommendations: true,
				Social:          true,
			},
		},
	}
}

// SetCategories replaces the category subscription list wholesale.
func (s *PreferencesStore) SetCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Categories = slices.Clone(categories)
}

// AddFavorite appends an item id to the favorites. Adding an id already
// present leaves the list unchanged.
func (s *PreferencesStore) AddFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.prefs.FavoriteContent, id) {
		return
	}
	s.prefs.FavoriteContent = append(s.prefs.FavoriteContent, id)
}

// RemoveFavorite removes an item id from the favorites. Removing an
// absent id is a no-op.
func (s *PreferencesStore) RemoveFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.FavoriteContent = slices.DeleteFunc(s.prefs.FavoriteContent, func(fav string) bool {
		return fav == id
	})
}

// ReorderFavorites replaces the favorite id list with the given
// permutation of itself. A payload that is not a permutation of the
// current list is a no-op returning false.
func (s *PreferencesStore) ReorderFavorites(ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) != len(s.prefs.FavoriteContent) {
		return false
	}

	counts := make(map[string]int, len(ids))
	for _, id := range s.prefs.FavoriteContent {
		counts[id]++
	}
	for _, id := range ids {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}

	s.prefs.FavoriteContent = slices.Clone(ids)
	return true
}

// SetLanguage sets the display language.
func (s *PreferencesStore) SetLanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Language = language
}

// MergeNotificationSettings shallow-merges a partial update into the
// notification settings; unspecified keys keep their value.
func (s *PreferencesStore) MergeNotificationSettings(patch domain.NotificationSettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.News != nil {
		s.prefs.NotificationSettings.News = *patch.News
	}
	if patch.Recommendations != nil {
		s.prefs.NotificationSettings.Recommendations = *patch.Recommendations
	}
	if patch.Social != nil {
		s.prefs.NotificationSettings.Social = *patch.Social
	}
}

// Snapshot returns a copy of the current preferences.
func (s *PreferencesStore) Snapshot() domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.prefs
	snapshot.Categories = slices.Clone(s.prefs.Categories)
	snapshot.FavoriteContent = slices.Clone(s.prefs.FavoriteContent)
	return snapshot
}
