package ui

import (
	"fmt"
	"io"

	"kmaint/internal/menu"
)

// Screen renders the fixed chrome: program banner, canned footers and
// the input prompt. It satisfies menu.Screen.
type Screen struct {
	w   io.Writer
	pal *Palette
	box *Box
}

// NewScreen returns a screen writing to w with pal's styles.
func NewScreen(w io.Writer, pal *Palette) *Screen {
	return &Screen{w: w, pal: pal, box: NewBox(w, pal)}
}

// Banner draws the program header box.
func (s *Screen) Banner() {
	s.box.Top()
	s.box.Title(" [ kmaint ] ", s.pal.Cyan)
	s.box.Centered("Klipper Maintenance Console", s.pal.Cyan)
	s.box.Title("", s.pal.Cyan)
	s.box.Bottom()
}

// Footer draws the canned footer for kind. The rendered hints match
// the kind's navigation tokens exactly.
func (s *Screen) Footer(kind menu.FooterKind) error {
	switch kind {
	case menu.FooterQuit:
		s.box.Divider()
		s.box.Centered("Q) Quit", s.pal.Red)
		s.box.Bottom()
	case menu.FooterBack:
		s.box.Divider()
		s.box.Centered("B) « Back", s.pal.Green)
		s.box.Bottom()
	case menu.FooterBackHelp:
		s.box.Divider()
		s.box.TwoCol("B) « Back", "H) Help [?]", s.pal.Green, s.pal.Yellow)
		s.box.Bottom()
	default:
		return fmt.Errorf("%w: %s", menu.ErrUnknownFooter, kind)
	}
	return nil
}

// Prompt writes the input prompt without a trailing newline.
func (s *Screen) Prompt(label string) {
	fmt.Fprint(s.w, s.pal.Cyan.Render("###### "+label+": "))
}
