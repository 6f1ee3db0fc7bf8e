package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlashAdking/personal-dashboard/internal/domain"
)

func TestUIStore_Defaults(t *testing.T) {
	ui := NewUIStore().Snapshot()

	assert.False(t, ui.DarkMode)
	assert.True(t, ui.SidebarOpen)
	assert.Equal(t, domain.SectionFeed, ui.ActiveSection)
	assert.Empty(t, ui.SearchQuery)
	assert.False(t, ui.SearchActive)
}

func TestUIStore_Toggles(t *testing.T) {
	store := NewUIStore()

	assert.True(t, store.ToggleDarkMode())
	assert.False(t, store.ToggleDarkMode())

	assert.False(t, store.ToggleSidebar())
	assert.True(t, store.ToggleSidebar())
}

func TestUIStore_SetActiveSection(t *testing.T) {
	store := NewUIStore()

	assert.True(t, store.SetActiveSection(domain.SectionTrending))
	assert.Equal(t, domain.SectionTrending, store.Snapshot().ActiveSection)

	assert.False(t, store.SetActiveSection("settings"))
	assert.Equal(t, domain.SectionTrending, store.Snapshot().ActiveSection)
}

func TestUIStore_SetSearch(t *testing.T) {
	store := NewUIStore()

	store.SetSearch("rocket", true)

	ui := store.Snapshot()
	assert.Equal(t, "rocket", ui.SearchQuery)
	assert.True(t, ui.SearchActive)
}
