package tui

import "charm.land/bubbles/v2/key"

// GlobalKeyMap contains keybindings available in every context.
type GlobalKeyMap struct {
	Quit     key.Binding
	Reload   key.Binding
	Search   key.Binding
	Editor   key.Binding
	Help     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
}

// DefaultGlobalKeyMap returns the default global keybindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter topics"),
		),
		Editor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "open in editor"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
	}
}

// NavKeyMap contains keybindings for list navigation.
type NavKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Home  key.Binding
	End   key.Binding
}

// DefaultNavKeyMap returns the default navigation keybindings.
func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// TabKeyMap contains keybindings for switching detail panel tabs (1-3).
type TabKeyMap struct {
	Document key.Binding // 1
	Topic    key.Binding // 2
	Terms    key.Binding // 3
}

// DefaultTabKeyMap returns the default detail tab keybindings.
func DefaultTabKeyMap() TabKeyMap {
	return TabKeyMap{
		Document: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "document"),
		),
		Topic: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "topic"),
		),
		Terms: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "terms"),
		),
	}
}
