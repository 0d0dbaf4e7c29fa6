// Package themes defines the visual styles of the Add Tax form.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Focused        lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Adornment      lipgloss.Style
	FieldError     lipgloss.Style
	CategoryHeader lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	Divider        lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	StatusPending  lipgloss.Style
	Box            lipgloss.Style
	Primary        lipgloss.Color
	Muted          lipgloss.Color
	Border         lipgloss.Color
	Foreground     lipgloss.Color
	Error          lipgloss.Color
	Success        lipgloss.Color
}

type palette struct {
	primary, foreground, subtle, muted, border, header, error, success, onPrimary lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Error:      p.error,
		Success:    p.success,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Focused: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		Adornment: lipgloss.NewStyle().
			Foreground(p.muted),
		FieldError: lipgloss.NewStyle().
			Foreground(p.error),

		CategoryHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			Background(p.header).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(p.onPrimary).
			Background(p.primary).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(p.onPrimary).
			Background(p.primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		Divider: lipgloss.NewStyle().
			Foreground(p.border),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.error).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		Box: lipgloss.NewStyle().
			Padding(1, 2),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#007bff"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	muted:      lipgloss.Color("#737373"),
	border:     lipgloss.Color("#404040"),
	header:     lipgloss.Color("#343a40"),
	error:      lipgloss.Color("#ef4444"),
	success:    lipgloss.Color("#10b981"),
	onPrimary:  lipgloss.Color("#ffffff"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#89b4fa"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	muted:      lipgloss.Color("#6c7086"),
	border:     lipgloss.Color("#45475a"),
	header:     lipgloss.Color("#313244"),
	error:      lipgloss.Color("#f38ba8"),
	success:    lipgloss.Color("#a6e3a1"),
	onPrimary:  lipgloss.Color("#1e1e2e"),
})

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
