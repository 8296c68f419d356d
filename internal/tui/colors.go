package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"webchan.dev/wcgit/internal/config"
)

// Palette renders the four named colors used by the helpers: red, green, gold and reset.
// Colors are bright ANSI colors, so the escape codes match every terminal profile.
type Palette struct {
	red   lipgloss.Style
	green lipgloss.Style
	gold  lipgloss.Style
}

// NewPalette creates a palette for output w.
// mode is one of config.ColorAuto, config.ColorAlways or config.ColorNever.
func NewPalette(w io.Writer, mode string) *Palette {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	}

	return &Palette{
		red:   r.NewStyle().Foreground(lipgloss.Color("9")),
		green: r.NewStyle().Foreground(lipgloss.Color("10")),
		gold:  r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Red colors text red
func (p *Palette) Red(text string) string {
	return render(p.red, text)
}

// Green colors text green
func (p *Palette) Green(text string) string {
	return render(p.green, text)
}

// Gold colors text gold
func (p *Palette) Gold(text string) string {
	return render(p.gold, text)
}

// render styles each line on its own; lipgloss would pad multi-line blocks to a common width
func render(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
