package tui

// This file re-exports styles and colours from the shared theme package so
// the tui package reads cleanly. New code should import theme directly when
// possible.

import "github.com/bunkatopics/territory/internal/tui/theme"

// Colour aliases.
var (
	colorPrimary = theme.ColorPrimary
	colorSubtle  = theme.ColorSubtle
)

// Panel border styles.
var (
	ActiveBorderStyle   = theme.ActiveBorderStyle
	InactiveBorderStyle = theme.InactiveBorderStyle
)

// Help bar styles.
var (
	HelpBarStyle = theme.HelpBarStyle
	HelpKeyStyle = theme.HelpKeyStyle
)

// List item styles.
var (
	SelectedItemStyle = theme.SelectedItemStyle
	NormalItemStyle   = theme.NormalItemStyle
)

// Toast styles.
var (
	ToastStyle      = theme.ToastStyle
	ToastErrorStyle = theme.ToastErrorStyle
)

// Detail panel label/value styles.
var (
	LabelStyle = theme.LabelStyle
	ValueStyle = theme.ValueStyle
)
