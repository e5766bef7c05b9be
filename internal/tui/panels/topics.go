package panels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/bunkatopics/territory/internal/search"
	"github.com/bunkatopics/territory/internal/topics"
	"github.com/bunkatopics/territory/internal/tui/theme"
)

// TopicSelectedMsg is emitted when the cursor lands on a topic.
type TopicSelectedMsg struct {
	Topic topics.Topic
}

// TopicList is a scrollable panel that displays the topics of the loaded
// territory map, optionally narrowed by a filter query.
type TopicList struct {
	all      []topics.Topic
	visible  []int // indices into all, filter applied
	cursor   int   // index into visible
	selected *topics.Topic
	filter   string
	loading  bool

	// Keybindings
	up    key.Binding
	down  key.Binding
	enter key.Binding
	home  key.Binding
	end   key.Binding
}

// NewTopicList creates a new, empty TopicList panel.
func NewTopicList() TopicList {
	return TopicList{
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		end: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// SetTopics replaces the topic list, re-applies the filter and resets the
// cursor.
func (l TopicList) SetTopics(ts []topics.Topic) TopicList {
	l.all = ts
	return l.applyFilter()
}

// SetFilter narrows the list to topics matching query and resets the cursor.
func (l TopicList) SetFilter(query string) TopicList {
	l.filter = query
	return l.applyFilter()
}

// ClearFilter removes the active filter.
func (l TopicList) ClearFilter() TopicList {
	return l.SetFilter("")
}

// Filter returns the active filter query.
func (l TopicList) Filter() string {
	return l.filter
}

// SetLoading sets the loading indicator state.
func (l TopicList) SetLoading(loading bool) TopicList {
	l.loading = loading
	return l
}

// applyFilter recomputes the visible indices and repoints the selection.
func (l TopicList) applyFilter() TopicList {
	names := make([]string, len(l.all))
	for i, t := range l.all {
		names[i] = t.Name
	}
	l.visible = search.Rank(l.filter, names)
	l.cursor = 0
	if len(l.visible) > 0 {
		t := l.all[l.visible[0]]
		l.selected = &t
	} else {
		l.selected = nil
	}
	return l
}

// Selected returns a pointer to the currently highlighted topic, or nil.
func (l TopicList) Selected() *topics.Topic {
	return l.selected
}

// Cursor returns the current cursor index within the visible list.
func (l TopicList) Cursor() int {
	return l.cursor
}

// Len returns the number of visible topics.
func (l TopicList) Len() int {
	return len(l.visible)
}

// Update handles key events for the topic list.
func (l TopicList) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l TopicList) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, l.down):
		if len(l.visible) > 0 {
			return l.moveTo(min(l.cursor+1, len(l.visible)-1))
		}

	case key.Matches(msg, l.up):
		if len(l.visible) > 0 {
			return l.moveTo(max(l.cursor-1, 0))
		}

	case key.Matches(msg, l.enter):
		if l.selected != nil {
			t := *l.selected
			return l, func() tea.Msg { return TopicSelectedMsg{Topic: t} }
		}

	case key.Matches(msg, l.home):
		if len(l.visible) > 0 {
			return l.moveTo(0)
		}

	case key.Matches(msg, l.end):
		if len(l.visible) > 0 {
			return l.moveTo(len(l.visible) - 1)
		}
	}

	return l, nil
}

// moveTo repositions the cursor and announces the newly highlighted topic.
func (l TopicList) moveTo(cursor int) (Panel, tea.Cmd) {
	l.cursor = cursor
	t := l.all[l.visible[cursor]]
	l.selected = &t
	return l, func() tea.Msg { return TopicSelectedMsg{Topic: t} }
}

// View renders the topic list panel.
func (l TopicList) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	panelTitle := "Topics"
	if len(l.all) > 0 {
		panelTitle = fmt.Sprintf("Topics (%d)", len(l.all))
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" " + panelTitle + " ")

	// Account for border size.
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	var lines []string

	if l.filter != "" {
		indicator := theme.Truncate("filter: "+l.filter, innerWidth)
		lines = append(lines, theme.FilterIndicatorStyle.Render(indicator))
	}

	if l.loading && len(l.all) == 0 {
		lines = append(lines, theme.LoadingStyle.Render("Loading territory..."))
	} else if len(l.all) == 0 {
		lines = append(lines, theme.NormalItemStyle.Render("No topics loaded"))
	} else if len(l.visible) == 0 {
		lines = append(lines, theme.NormalItemStyle.Render("No matching topics"))
	} else {
		for i, idx := range l.visible {
			label := theme.Truncate(l.all[idx].Label(), innerWidth-4)
			if i == l.cursor {
				lines = append(lines, theme.CursorStyle.Render("> ")+theme.SelectedItemStyle.Render(label))
			} else {
				lines = append(lines, "  "+theme.NormalItemStyle.Render(label))
			}
			if len(lines) >= innerHeight {
				break
			}
		}
	}

	// Pad to fill the panel height.
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(title + "\n" + content)
}

// HelpBindings returns the key hints for the topic list.
func (l TopicList) HelpBindings() []HelpBinding {
	return []HelpBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "select"},
		{Key: "/", Desc: "filter"},
		{Key: "g/G", Desc: "top/bottom"},
		{Key: "tab", Desc: "switch panel"},
		{Key: "ctrl+r", Desc: "reload"},
		{Key: "q", Desc: "quit"},
	}
}
