package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"kmaint/internal/config"
	"kmaint/internal/klipper"
	"kmaint/internal/lock"
	"kmaint/internal/logging"
	"kmaint/internal/menu"
	"kmaint/internal/menus"
	"kmaint/internal/paths"
	"kmaint/internal/repo"
	"kmaint/internal/shell"
	"kmaint/internal/store"
	"kmaint/internal/ui"
)

// Params holds the resolved startup configuration passed to the fx module.
type Params struct {
	// Ctx is canceled on interrupt; shell commands run under it.
	Ctx context.Context
	// ConfigPath overrides the default config location; empty = default.
	ConfigPath string
	// Color overrides the configured color mode; empty = use config.
	Color string
	// DevRoot overrides where serial devices are discovered; empty = /dev.
	DevRoot string
}

// Module returns the fx module for the console, composing all
// providers and lifecycle hooks. Fx's own events go to the log file,
// never to the terminal.
func Module(p Params) fx.Option {
	return fx.Module("kmaint",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideLock,
			provideStore,
			providePalette,
			provideRunner,
			provideRepoService,
			provideFirmwareService,
			provideScreen,
			provideConsole,
			provideSession,
			provideDeps,
			provideRegistry,
		),
		fx.Invoke(registerLifecycle),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)
}

func provideLogger() (*zap.Logger, error) {
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create data dirs: %w", err)
	}
	return logging.New(paths.LogPath())
}

// provideConfig loads the config, writing the defaults on first run so
// the user has a file to edit.
func provideConfig(p Params, logger *zap.Logger) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}

	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
		if err := config.Save(path, cfg); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
		logger.Info("default config written", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", zap.String("path", path))
	return cfg, nil
}

func provideLock(logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring instance lock", zap.String("dir", paths.BaseDir()))
	l, err := lock.Acquire(paths.BaseDir())
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return l, nil
}

func provideStore(logger *zap.Logger) (*store.DB, error) {
	dbPath := paths.HistoryDBPath()
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func providePalette(p Params, cfg *config.Config) *ui.Palette {
	mode := ui.ParseMode(cfg.Color)
	if p.Color != "" {
		mode = ui.ParseMode(p.Color)
	}
	return ui.NewPalette(os.Stdout, mode)
}

func provideRunner(logger *zap.Logger) shell.Runner {
	return shell.NewExec(os.Stdout, logger)
}

func provideRepoService(run shell.Runner, db *store.DB, logger *zap.Logger) *repo.Service {
	return repo.NewService(run, db, logger)
}

func provideFirmwareService(run shell.Runner, db *store.DB, logger *zap.Logger) *klipper.Service {
	return klipper.NewService(run, db, os.Stdout, logger)
}

func provideScreen(pal *ui.Palette) *ui.Screen {
	return ui.NewScreen(os.Stdout, pal)
}

func provideConsole(pal *ui.Palette, logger *zap.Logger) *ui.Console {
	return ui.NewConsole(os.Stdout, pal, logger)
}

func provideSession(screen *ui.Screen, console *ui.Console, logger *zap.Logger) (*menu.Session, error) {
	return menu.NewSession(os.Stdin, os.Stdout, screen, console, logger)
}

func provideDeps(p Params, cfg *config.Config, pal *ui.Palette, db *store.DB, repos *repo.Service, firmware *klipper.Service, logger *zap.Logger) *menus.Deps {
	ctx := p.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	devRoot := p.DevRoot
	if devRoot == "" {
		devRoot = "/dev"
	}
	return &menus.Deps{
		Ctx:      ctx,
		Config:   cfg,
		Palette:  pal,
		Store:    db,
		Repos:    repos,
		Firmware: firmware,
		DevRoot:  devRoot,
		Logger:   logger,
	}
}

func provideRegistry(d *menus.Deps) (*menu.Registry, error) {
	reg := menu.NewRegistry()
	if err := menus.Register(reg, d); err != nil {
		return nil, err
	}
	return reg, nil
}

func registerLifecycle(lc fx.Lifecycle, lk *lock.Lock, db *store.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("kmaint started")
			return nil
		},
		OnStop: func(context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("kmaint stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
