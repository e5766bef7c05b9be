package panels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/bunkatopics/territory/internal/tui/theme"
)

// DocActivatedMsg is emitted when the user toggles a document row on the
// topic card. Selected is false when the toggle cleared the previous
// selection.
type DocActivatedMsg struct {
	Index    int
	Content  string
	Selected bool
}

// noSelection marks a card with no document row selected.
const noSelection = -1

// TopicCard shows one topic: its name, its share of the territory, and a
// selectable list of its top documents. At most one row is selected at any
// time; activating the selected row again deselects it.
type TopicCard struct {
	title    string
	percent  string
	docs     []string
	cursor   int
	selected int

	// Keybindings
	up    key.Binding
	down  key.Binding
	enter key.Binding
	home  key.Binding
	end   key.Binding
}

// NewTopicCard creates a new, empty TopicCard panel.
func NewTopicCard() TopicCard {
	return TopicCard{
		selected: noSelection,
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
			key.WithHelp("enter", "toggle select"),
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

// SetContent replaces the card's topic. Title and percent are required;
// docs may be empty. Cursor and selection are reset, so a selection never
// survives a topic change.
func (c TopicCard) SetContent(title, percent string, docs []string) (TopicCard, error) {
	if title == "" {
		return c, fmt.Errorf("topic card: missing title")
	}
	if percent == "" {
		return c, fmt.Errorf("topic card: missing percent")
	}
	c.title = title
	c.percent = percent
	c.docs = docs
	c.cursor = 0
	c.selected = noSelection
	return c, nil
}

// Docs returns the number of document rows on the card.
func (c TopicCard) Docs() int {
	return len(c.docs)
}

// Cursor returns the current cursor index.
func (c TopicCard) Cursor() int {
	return c.cursor
}

// Selected returns the selected row index, or -1 when none is selected.
func (c TopicCard) Selected() int {
	return c.selected
}

// SelectedDoc returns the selected document's content, if any.
func (c TopicCard) SelectedDoc() (string, bool) {
	if c.selected == noSelection {
		return "", false
	}
	return c.docs[c.selected], true
}

// activate toggles the selection state of row i: selecting it, or
// deselecting it if it was already selected. Any prior selection is
// replaced.
func (c TopicCard) activate(i int) (TopicCard, tea.Cmd) {
	if i < 0 || i >= len(c.docs) {
		return c, nil
	}

	var msg DocActivatedMsg
	if c.selected == i {
		c.selected = noSelection
		msg = DocActivatedMsg{Index: i, Content: c.docs[i], Selected: false}
	} else {
		c.selected = i
		msg = DocActivatedMsg{Index: i, Content: c.docs[i], Selected: true}
	}
	return c, func() tea.Msg { return msg }
}

// Update handles key events for the topic card.
func (c TopicCard) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

func (c TopicCard) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, c.down):
		if len(c.docs) > 0 {
			c.cursor = min(c.cursor+1, len(c.docs)-1)
		}

	case key.Matches(msg, c.up):
		if len(c.docs) > 0 {
			c.cursor = max(c.cursor-1, 0)
		}

	case key.Matches(msg, c.enter):
		return c.activate(c.cursor)

	case key.Matches(msg, c.home):
		c.cursor = 0

	case key.Matches(msg, c.end):
		if len(c.docs) > 0 {
			c.cursor = len(c.docs) - 1
		}
	}

	return c, nil
}

// View renders the topic card panel.
func (c TopicCard) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	panelTitle := "Topic"
	if c.title != "" {
		panelTitle = c.title
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

	if c.title == "" {
		lines = append(lines, theme.NormalItemStyle.Render("Select a topic"))
	} else {
		subHeader := fmt.Sprintf("%s%% of the Territory", c.percent)
		lines = append(lines, theme.SubHeaderStyle.Render(theme.Truncate(subHeader, innerWidth)))
		lines = append(lines, "")

		if len(c.docs) == 0 {
			lines = append(lines, theme.NormalItemStyle.Render("No documents"))
		}
		for i, doc := range c.docs {
			lines = append(lines, c.renderRow(i, doc, innerWidth))
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

// renderRow renders one document row with its cursor and selection markers.
func (c TopicCard) renderRow(i int, doc string, innerWidth int) string {
	prefix := "  "
	if i == c.cursor {
		prefix = theme.CursorStyle.Render("> ")
	}

	marker := "  "
	if i == c.selected {
		marker = theme.MarkerStyle.Render("● ")
	}

	text := theme.Truncate(doc, innerWidth-6)
	switch {
	case i == c.selected:
		text = theme.MarkedItemStyle.Render(text)
	case i == c.cursor:
		text = theme.SelectedItemStyle.Render(text)
	default:
		text = theme.NormalItemStyle.Render(text)
	}

	return prefix + marker + text
}

// HelpBindings returns the key hints for the topic card.
func (c TopicCard) HelpBindings() []HelpBinding {
	return []HelpBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "toggle select"},
		{Key: "e", Desc: "open in editor"},
		{Key: "g/G", Desc: "top/bottom"},
		{Key: "esc", Desc: "back"},
		{Key: "tab", Desc: "switch panel"},
		{Key: "q", Desc: "quit"},
	}
}
