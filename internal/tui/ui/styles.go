package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the report browser
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Period list
	PeriodList     lipgloss.Style
	PeriodSelected lipgloss.Style
	PeriodNormal   lipgloss.Style
	PeriodEmpty    lipgloss.Style

	// Report pane
	Report lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Help overlay
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	HelpLabel   lipgloss.Style

	// Errors
	Error lipgloss.Style
}

// DefaultStyles returns the default browser styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		// Period list
		PeriodList: lipgloss.NewStyle().
			PaddingRight(1).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		PeriodSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		PeriodNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		PeriodEmpty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		// Report pane
		Report: lipgloss.NewStyle().
			PaddingLeft(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Help overlay
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		HelpLabel: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		// Errors
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint
// registry. Theme colors map to semantic browser elements:
// - Purple: active tab, selected period, dialog accents
// - Cyan: status bar keys, help labels
// - BrightBlack: inactive elements, borders
// - Red: load errors
func NewStylesFromRegistry(r *tint.Registry) Styles {
	// Get colors from registry (uses current theme)
	primary := r.Purple()
	secondary := r.Cyan()
	muted := r.BrightBlack()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		// Period list
		PeriodList: lipgloss.NewStyle().
			PaddingRight(1).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		PeriodSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		PeriodNormal: lipgloss.NewStyle().
			Foreground(fg),
		PeriodEmpty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		// Report pane
		Report: lipgloss.NewStyle().
			PaddingLeft(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Help overlay
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		HelpLabel: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		// Errors
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}
