package state

import (
	"slices"
	"sync"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

// UIStore owns the presentation-level slice: dark mode, sidebar, active
// section, and search state.
type UIStore struct {
	mu    sync.Mutex
	state domain.UIState
}

func NewUIStore() *UIStore {
	return &UIStore{
		state: domain.UIState{
			SidebarOpen:   true,
			ActiveSection: domain.SectionFeed,
		},
	}
}

// ToggleDarkMode flips dark mode and returns the new value.
func (s *UIStore) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DarkMode = !s.state.DarkMode
	return s.state.DarkMode
}

// ToggleSidebar flips sidebar visibility and returns the new value.
func (s *UIStore) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SidebarOpen = !s.state.SidebarOpen
	return s.state.SidebarOpen
}

// SetActiveSection switches the visible dashboard section. Unknown
// sections are rejected.
func (s *UIStore) SetActiveSection(section domain.DashboardSection) bool {
	if !slices.Contains(domain.ValidDashboardSections, section) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ActiveSection = section
	return true
}

// SetSearch updates the search query and whether search mode is active.
func (s *UIStore) SetSearch(query string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SearchQuery = query
	s.state.SearchActive = active
}

// Snapshot returns a copy of the current UI state.
func (s *UIStore) Snapshot() domain.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}
