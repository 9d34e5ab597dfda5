package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box art geometry: 57 columns total, a 53-character content field
// between the "| " and " |" gutters, 25-character fields in two-column
// rows.
const (
	fieldWidth = 53
	halfWidth  = 25

	boxTop     = `/=======================================================\`
	boxBottom  = `\=======================================================/`
	boxDivider = `|-------------------------------------------------------|`
)

// Box writes fixed-width box art rows. Menu bodies build their frames
// with it; the screen builds banner and footers with it.
type Box struct {
	w   io.Writer
	pal *Palette
}

// NewBox returns a box writing to w with pal's styles.
func NewBox(w io.Writer, pal *Palette) *Box {
	return &Box{w: w, pal: pal}
}

// Top writes the opening border.
func (b *Box) Top() { fmt.Fprintln(b.w, boxTop) }

// Bottom writes the closing border.
func (b *Box) Bottom() { fmt.Fprintln(b.w, boxBottom) }

// Divider writes the section rule.
func (b *Box) Divider() { fmt.Fprintln(b.w, boxDivider) }

// Blank writes an empty content row.
func (b *Box) Blank() { b.Row("") }

// Row writes a left-aligned content row, truncating to the field.
func (b *Box) Row(text string) {
	fmt.Fprintf(b.w, "| %s |\n", pad(text, fieldWidth))
}

// Rowf formats and writes a left-aligned content row.
func (b *Box) Rowf(format string, args ...any) {
	b.Row(fmt.Sprintf(format, args...))
}

// Title writes a tilde-centered row styled as a whole field.
func (b *Box) Title(text string, style lipgloss.Style) {
	fmt.Fprintf(b.w, "| %s |\n", style.Render(center(text, fieldWidth, '~')))
}

// Centered writes a space-centered row styled as a whole field.
func (b *Box) Centered(text string, style lipgloss.Style) {
	fmt.Fprintf(b.w, "| %s |\n", style.Render(center(text, fieldWidth, ' ')))
}

// TwoCol writes a two-column row, each column centered and styled as a
// whole half field.
func (b *Box) TwoCol(left, right string, leftStyle, rightStyle lipgloss.Style) {
	fmt.Fprintf(b.w, "| %s | %s |\n",
		leftStyle.Render(center(left, halfWidth, ' ')),
		rightStyle.Render(center(right, halfWidth, ' ')),
	)
}

// clip drops trailing runes until text fits the width.
func clip(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	rs := []rune(text)
	for len(rs) > 0 && lipgloss.Width(string(rs)) > width {
		rs = rs[:len(rs)-1]
	}
	return string(rs)
}

// pad left-aligns text in the given width.
func pad(text string, width int) string {
	text = clip(text, width)
	return text + strings.Repeat(" ", width-lipgloss.Width(text))
}

// center pads text on both sides with fill. An odd gap leaves the
// extra fill character on the right.
func center(text string, width int, fill rune) string {
	text = clip(text, width)
	gap := width - lipgloss.Width(text)
	left := gap / 2
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), gap-left)
}
