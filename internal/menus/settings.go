package menus

import (
	"io"

	"kmaint/internal/menu"
	"kmaint/internal/paths"
	"kmaint/internal/ui"
)

// Settings is a read-only view of the effective configuration and the
// data paths. It carries no options; only the navigation tokens work.
type Settings struct {
	menu.Crumb
	d *Deps
}

func NewSettings(d *Deps) *Settings {
	return &Settings{d: d}
}

func (s *Settings) Name() string { return "settings" }

func (s *Settings) Footer() menu.FooterKind { return menu.FooterBack }

func (s *Settings) Body(w io.Writer) {
	cfg := s.d.Config
	b := ui.NewBox(w, s.d.Palette)
	b.Top()
	b.Title(" [ Settings ] ", s.d.Palette.Cyan)
	b.Divider()
	b.Rowf("Klipper dir:   %s", cfg.KlipperDir)
	b.Rowf("Moonraker dir: %s", cfg.MoonrakerDir)
	b.Rowf("Color mode:    %s", cfg.Color)
	b.Rowf("Build jobs:    %d", cfg.BuildJobs)
	b.Blank()
	b.Rowf("Config file:   %s", paths.ConfigPath())
	b.Rowf("History db:    %s", paths.HistoryDBPath())
	b.Rowf("Log file:      %s", paths.LogPath())
}

func (s *Settings) Options() menu.Table { return menu.Table{} }
