package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/bunkatopics/territory/internal/config"
	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/tui/theme"
)

// setupValidateMsg is returned after attempting to load the dataset.
type setupValidateMsg struct {
	source dataset.Source
	topics int
	docs   int
	err    error
}

// Setup is a standalone bubbletea model for the first-run dataset setup.
// It runs before the main App when no dataset is configured.
type Setup struct {
	config     *config.Config
	input      textinput.Model
	err        error
	validating bool
	done       bool
	source     dataset.Source
	topicCount int
	docCount   int
	width      int
	height     int
}

// NewSetup creates a new Setup model with the given configuration.
func NewSetup(cfg *config.Config) Setup {
	ti := textinput.New()
	ti.Placeholder = "path or URL of a topic export"
	ti.Prompt = "> "
	ti.Focus()

	return Setup{
		config: cfg,
		input:  ti,
	}
}

// Done reports whether setup completed successfully.
func (s Setup) Done() bool {
	return s.done
}

// Source returns the validated dataset source. Only meaningful when Done.
func (s Setup) Source() dataset.Source {
	return s.source
}

// Init returns the initial command.
func (s Setup) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup flow.
func (s Setup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyPressMsg:
		// If setup is done (success screen), Enter exits.
		if s.done {
			if key.Matches(msg, key.NewBinding(key.WithKeys("enter"))) {
				return s, tea.Quit
			}
			return s, nil
		}

		// If currently validating, ignore key input.
		if s.validating {
			return s, nil
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			ref := strings.TrimSpace(s.input.Value())
			if ref == "" {
				s.err = nil
				return s, nil
			}
			s.validating = true
			s.err = nil
			return s, s.validateDataset(ref)

		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "ctrl+c"))):
			return s, tea.Quit
		}

		// Delegate to the textinput for regular character input.
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case setupValidateMsg:
		s.validating = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}

		// Success: save the dataset reference to the config.
		s.config.Dataset.Path = msg.source.Ref
		if err := s.config.Save(); err != nil {
			s.err = err
			return s, nil
		}

		s.source = msg.source
		s.topicCount = msg.topics
		s.docCount = msg.docs
		s.done = true
		return s, nil
	}

	return s, nil
}

// View renders the setup screen.
func (s Setup) View() tea.View {
	var content string

	if s.done {
		content = s.viewSuccess()
	} else {
		content = s.viewInput()
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// viewInput renders the dataset input screen.
func (s Setup) viewInput() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorPrimary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorFg)

	hintStyle := lipgloss.NewStyle().
		Foreground(theme.ColorMuted)

	errorStyle := lipgloss.NewStyle().
		Foreground(theme.ColorError).
		Bold(true)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, titleStyle.Render("  Welcome to Territory"))
	lines = append(lines, "")
	lines = append(lines, subtitleStyle.Render("  Topic map explorer"))
	lines = append(lines, "")

	if s.validating {
		lines = append(lines, hintStyle.Render("  Loading dataset..."))
	} else {
		lines = append(lines, subtitleStyle.Render("  Enter a dataset to explore:"))
		lines = append(lines, "  "+s.input.View())
	}

	lines = append(lines, "")

	if s.err != nil {
		lines = append(lines, errorStyle.Render("  "+s.err.Error()))
		lines = append(lines, "")
	}

	lines = append(lines, hintStyle.Render("  Accepts a JSON export, a SQLite"))
	lines = append(lines, hintStyle.Render("  database or an http(s) URL."))
	lines = append(lines, "")

	inner := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorPrimary).
		Padding(0, 2).
		Width(44).
		Render(inner)

	return s.center(box)
}

// viewSuccess renders the success screen after validation.
func (s Setup) viewSuccess() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorSecondary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorFg)

	hintStyle := lipgloss.NewStyle().
		Foreground(theme.ColorMuted)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, titleStyle.Render("  Dataset loaded!"))
	lines = append(lines, "")
	lines = append(lines, subtitleStyle.Render(
		fmt.Sprintf("  %d topics, %d documents", s.topicCount, s.docCount)))
	lines = append(lines, "")
	lines = append(lines, subtitleStyle.Render("  Config saved to:"))
	lines = append(lines, hintStyle.Render("  "+config.DefaultPath()))
	lines = append(lines, "")
	lines = append(lines, hintStyle.Render("  Press Enter to continue..."))
	lines = append(lines, "")

	inner := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorSecondary).
		Padding(0, 2).
		Width(44).
		Render(inner)

	return s.center(box)
}

// center places content in the center of the terminal.
func (s Setup) center(box string) string {
	boxH := lipgloss.Height(box)
	boxW := lipgloss.Width(box)

	topPad := (s.height - boxH) / 2
	if topPad < 0 {
		topPad = 0
	}

	leftPad := (s.width - boxW) / 2
	if leftPad < 0 {
		leftPad = 0
	}

	boxLines := strings.Split(box, "\n")
	var out strings.Builder
	for i := 0; i < topPad; i++ {
		out.WriteString("\n")
	}
	for _, line := range boxLines {
		out.WriteString(strings.Repeat(" ", leftPad))
		out.WriteString(line)
		out.WriteString("\n")
	}

	return out.String()
}

// validateDataset creates a command that resolves and loads the dataset.
func (s Setup) validateDataset(ref string) tea.Cmd {
	return func() tea.Msg {
		src, err := dataset.Resolve(ref)
		if err != nil {
			return setupValidateMsg{err: err}
		}
		ex, err := src.Load(context.Background())
		if err != nil {
			return setupValidateMsg{err: err}
		}
		return setupValidateMsg{
			source: src,
			topics: len(ex.Topics),
			docs:   len(ex.Docs),
		}
	}
}
