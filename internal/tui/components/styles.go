package components

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/bunkatopics/territory/internal/tui/theme"
)

// Dialog box style — rounded border, centered content.
var dialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.ColorPrimary).
	Padding(1, 2).
	Background(theme.ColorBg)

// Dialog text style for the question/label.
var dialogText = lipgloss.NewStyle().
	Foreground(theme.ColorFg).
	Bold(true)

// Dialog hint style for key hints.
var dialogHint = lipgloss.NewStyle().
	Foreground(theme.ColorMuted)
