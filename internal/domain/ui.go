package domain

// DashboardSection names the section of the dashboard currently shown.
type DashboardSection string

const (
	SectionFeed      DashboardSection = "feed"
	SectionTrending  DashboardSection = "trending"
	SectionFavorites DashboardSection = "favorites"
)

var ValidDashboardSections = []DashboardSection{
	SectionFeed,
	SectionTrending,
	SectionFavorites,
}

// UIState holds presentation-level toggles the dashboard persists for
// the duration of the process.
type UIState struct {
	DarkMode      bool             `json:"darkMode"`
	SidebarOpen   bool             `json:"sidebarOpen"`
	ActiveSection DashboardSection `json:"activeSection"`
	SearchQuery   string           `json:"searchQuery"`
	SearchActive  bool             `json:"searchActive"`
}
