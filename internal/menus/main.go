package menus

import (
	"io"

	"kmaint/internal/menu"
	"kmaint/internal/ui"
)

// Main is the root menu. Its history entry is a shared instance, so
// the ledger view keeps its place across visits.
type Main struct {
	d       *Deps
	history *History
}

func NewMain(d *Deps) *Main {
	return &Main{d: d, history: NewHistory(d)}
}

func (m *Main) Name() string { return "main" }

func (m *Main) Footer() menu.FooterKind { return menu.FooterQuit }

func (m *Main) Body(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(" [ Main Menu ] ", m.d.Palette.Cyan)
	b.Divider()
	b.Row(" 1) [Advanced]")
	b.Row(" 2) [History]")
	b.Row(" 3) [Settings]")
}

func (m *Main) Options() menu.Table {
	d := m.d
	return menu.Table{
		"1": menu.Submenu(func() menu.Menu { return NewAdvanced(d) }),
		"2": menu.Instance(m.history),
		"3": menu.Submenu(func() menu.Menu { return NewSettings(d) }),
	}
}
