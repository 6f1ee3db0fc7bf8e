package state

// Container groups the independently-owned state slices. Slices
// reference items across each other by id only; nothing is embedded or
// duplicated between them.
type Container struct {
	Feed        *FeedStore
	Preferences *PreferencesStore
	UI          *UIStore
}

func NewContainer() *Container {
	return &Container{
		Feed:        NewFeedStore(),
		Preferences: NewPreferencesStore(),
		UI:          NewUIStore(),
	}
}
