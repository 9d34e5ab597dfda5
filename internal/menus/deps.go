package menus

import (
	"context"

	"go.uber.org/zap"

	"kmaint/internal/config"
	"kmaint/internal/klipper"
	"kmaint/internal/menu"
	"kmaint/internal/repo"
	"kmaint/internal/store"
	"kmaint/internal/ui"
)

// Deps carries the shared services the concrete menus draw on. One
// value is built at startup and threaded through every constructor.
type Deps struct {
	// Ctx is the application context. An interrupt cancels it, so a
	// running build can be aborted without losing the session.
	Ctx      context.Context
	Config   *config.Config
	Palette  *ui.Palette
	Store    *store.DB
	Repos    *repo.Service
	Firmware *klipper.Service
	// DevRoot is where serial devices are discovered, "/dev" outside
	// of tests.
	DevRoot string
	Logger  *zap.Logger
}

// Register binds the named menus and marks main as the root.
func Register(reg *menu.Registry, d *Deps) error {
	reg.Register("main", func() menu.Menu { return NewMain(d) })
	reg.Register("advanced", func() menu.Menu { return NewAdvanced(d) })
	reg.Register("history", func() menu.Menu { return NewHistory(d) })
	reg.Register("settings", func() menu.Menu { return NewSettings(d) })
	return reg.SetRoot("main")
}
