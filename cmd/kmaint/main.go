package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"kmaint/internal/app"
	"kmaint/internal/menu"
)

func main() {
	configFlag := flag.String("config", "", "config file path (overrides the default)")
	colorFlag := flag.String("color", "", "color mode: auto, always or never (overrides config)")
	flag.Parse()

	// An interrupt aborts the running shell command, not the session.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sess *menu.Session
		reg  *menu.Registry
	)
	fxApp := fx.New(
		app.Module(app.Params{
			Ctx:        ctx,
			ConfigPath: *configFlag,
			Color:      *colorFlag,
		}),
		fx.Populate(&sess, &reg),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	root, err := reg.NewRoot()
	if err == nil {
		_, err = sess.Run(root)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	if stopErr := fxApp.Stop(stopCtx); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
