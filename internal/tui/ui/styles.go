package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Entry list
	EntrySelected  lipgloss.Style
	EntryNormal    lipgloss.Style
	EntryIndex     lipgloss.Style
	EntryHours     lipgloss.Style
	EntryBillable  lipgloss.Style
	EntryProject   lipgloss.Style
	EntryDesc      lipgloss.Style
	EntryTimestamp lipgloss.Style

	// Totals footer
	TotalsLabel lipgloss.Style
	TotalsValue lipgloss.Style
	DirtyMarker lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red
	fg := lipgloss.Color("252")
	bg := lipgloss.Color("236")

	return buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg)
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles, projects)
// - Secondary: Cyan (hours, keys)
// - Accent: BrightPurple (totals, timestamps)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(
		r.Purple(),
		r.Cyan(),
		r.BrightPurple(),
		r.BrightBlack(),
		r.Green(),
		r.Yellow(),
		r.Red(),
		r.Fg(),
		r.Bg(),
	)
}

func buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg lipgloss.TerminalColor) Styles {
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
		TabSeparator: lipgloss.NewStyle().
			Foreground(muted).
			SetString("|"),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

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

		// Entry list
		EntrySelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryIndex: lipgloss.NewStyle().
			Foreground(muted).
			Width(6),
		EntryHours: lipgloss.NewStyle().
			Foreground(secondary).
			Width(7).
			Align(lipgloss.Right),
		EntryBillable: lipgloss.NewStyle().
			Foreground(success).
			Width(3).
			Align(lipgloss.Center),
		EntryProject: lipgloss.NewStyle().
			Foreground(primary),
		EntryDesc: lipgloss.NewStyle().
			Foreground(fg),
		EntryTimestamp: lipgloss.NewStyle().
			Foreground(accent).
			Width(13).
			Align(lipgloss.Right),

		// Totals footer
		TotalsLabel: lipgloss.NewStyle().
			Foreground(muted),
		TotalsValue: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		DirtyMarker: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		// Stats
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(24),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(56),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
