package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects how colored output is resolved.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode normalizes a config color value. Unknown values mean auto.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(s)) {
	case ModeAlways:
		return ModeAlways
	case ModeNever:
		return ModeNever
	}
	return ModeAuto
}

// Palette holds the four accent styles used across the interface. The
// styles are bound to a renderer with a pinned color profile, so the
// same palette produces the same bytes on every run.
type Palette struct {
	Cyan   lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Red    lipgloss.Style

	enabled bool
}

// NewPalette builds the accent styles for w. With ModeAuto, color is
// on when w is a terminal and NO_COLOR is unset.
func NewPalette(w io.Writer, mode Mode) *Palette {
	var enabled bool
	switch mode {
	case ModeAlways:
		enabled = true
	case ModeNever:
		enabled = false
	default:
		enabled = os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}

	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Palette{
		Cyan:    r.NewStyle().Foreground(lipgloss.Color("14")),
		Green:   r.NewStyle().Foreground(lipgloss.Color("10")),
		Yellow:  r.NewStyle().Foreground(lipgloss.Color("11")),
		Red:     r.NewStyle().Foreground(lipgloss.Color("9")),
		enabled: enabled,
	}
}

// Enabled reports whether the styles emit color codes.
func (p *Palette) Enabled() bool { return p.enabled }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
