package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"timelinedeck/internal/config"
)

// Palette holds the colors of one theme variant.
type Palette struct {
	Accent    lipgloss.Color // titles, month label
	Highlight lipgloss.Color // focused task, borders
	Danger    lipgloss.Color // errors
	Muted     lipgloss.Color // hints, dimmed text
	Text      lipgloss.Color // normal text
	Track     lipgloss.Color // empty day cells
}

var (
	darkPalette = Palette{
		Accent:    "75",
		Highlight: "205",
		Danger:    "196",
		Muted:     "241",
		Text:      "252",
		Track:     "237",
	}
	lightPalette = Palette{
		Accent:    "26",
		Highlight: "161",
		Danger:    "160",
		Muted:     "245",
		Text:      "235",
		Track:     "252",
	}
)

// Theme contains the styles used across views and overlays.
type Theme struct {
	Dark    bool
	Palette Palette

	Title    lipgloss.Style // header title
	Subtitle lipgloss.Style // header subtitle
	Month    lipgloss.Style // month label between the nav arrows
	Row      lipgloss.Style // row (team) headers
	Task     lipgloss.Style // unfocused task labels
	Focused  lipgloss.Style // focused task label
	Track    lipgloss.Style // empty day cells
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Key      lipgloss.Style // key names in hint bars
	Error    lipgloss.Style
	Empty    lipgloss.Style
	Box      lipgloss.Style // overlay frame
	HintBox  lipgloss.Style // leader hint frame
}

// NewTheme builds the dark or light theme.
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Theme{
		Dark:     dark,
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Month:    lipgloss.NewStyle().Bold(true).Foreground(p.Text).Padding(0, 2),
		Row:      lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Task:     lipgloss.NewStyle().Foreground(p.Text),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(p.Highlight),
		Track:    lipgloss.NewStyle().Foreground(p.Track),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Hint:     lipgloss.NewStyle().Foreground(p.Muted),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(p.Highlight),
		Error:    lipgloss.NewStyle().Foreground(p.Danger),
		Empty:    lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight).
			Padding(1, 2),
		HintBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1).
			MarginTop(1),
	}
}

// Bar returns the style for a task bar in the task's own color.
// Tasks without a color use the theme accent.
func (t Theme) Bar(color string) lipgloss.Style {
	if strings.TrimSpace(color) == "" {
		return lipgloss.NewStyle().Foreground(t.Palette.Accent)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// ResolveDark turns a theme mode into a dark/light decision.
// "auto" asks the terminal for its background color.
func ResolveDark(mode string) bool {
	switch mode {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	}
	return termenv.HasDarkBackground()
}

// ApplyColorProfile honors NO_COLOR and otherwise follows the terminal's capabilities.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
