package menus

import (
	"io"

	"kmaint/internal/menu"
	"kmaint/internal/ui"
)

// Advanced bundles the maintenance actions: repository rollbacks and
// the firmware build/flash cycle.
type Advanced struct {
	menu.Crumb
	d *Deps
}

func NewAdvanced(d *Deps) *Advanced {
	return &Advanced{d: d}
}

func (m *Advanced) Name() string { return "advanced" }

func (m *Advanced) Footer() menu.FooterKind { return menu.FooterBack }

func (m *Advanced) Body(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(" [ Advanced Menu ] ", m.d.Palette.Yellow)
	b.Divider()
	b.Row("Repo Rollback:")
	b.Row(" 1) [Klipper]")
	b.Row(" 2) [Moonraker]")
	b.Blank()
	b.Row("Klipper Firmware:")
	b.Row(" 3) [Build]")
	b.Row(" 4) [Flash]")
	b.Row(" 5) [Build + Flash]")
	b.Row(" 6) [Get MCU ID]")
}

func (m *Advanced) Options() menu.Table {
	d := m.d
	return menu.Table{
		"1": menu.Submenu(func() menu.Menu { return NewRollback(d, "klipper", d.Config.KlipperDir) }),
		"2": menu.Submenu(func() menu.Menu { return NewRollback(d, "moonraker", d.Config.MoonrakerDir) }),
		"3": menu.Call(func() error {
			return d.Firmware.Build(d.Ctx, d.Config.KlipperDir, d.Config.BuildJobs)
		}),
		"4": menu.Submenu(func() menu.Menu { return NewFlashMethod(d, false) }),
		"5": menu.Submenu(func() menu.Menu { return NewFlashMethod(d, true) }),
		"6": menu.Submenu(func() menu.Menu {
			return NewMCUConnection(d, d.Firmware.QueryMCU)
		}),
	}
}
