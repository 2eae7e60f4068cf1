package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moltenlabs/brand/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	ListPanel   lipgloss.Style
	DetailPanel lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	// Namespace tabs
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
	Hex          lipgloss.Style

	// Detail
	DetailTitle lipgloss.Style
	Label       lipgloss.Style

	// Filter input
	FilterPrompt lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		ListPanel: lipgloss.NewStyle().
			Padding(0, 1),

		DetailPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(ui.ColorTextLight).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorText).
			Background(ui.ColorSelection).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(ui.ColorSelection).
			Foreground(ui.ColorText),

		NormalItem: lipgloss.NewStyle().
			Foreground(ui.ColorText),

		Hex: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorTextBrand),

		Label: lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Width(12),

		FilterPrompt: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),
	}
}
