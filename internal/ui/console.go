package ui

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Console prints user-facing status lines and mirrors them to the log
// file. It satisfies menu.Reporter.
type Console struct {
	w   io.Writer
	pal *Palette
	log *zap.Logger
}

// NewConsole returns a console writing to w with pal's styles.
func NewConsole(w io.Writer, pal *Palette, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{w: w, pal: pal, log: log}
}

// Ok prints msg in green.
func (c *Console) Ok(msg string) {
	fmt.Fprintln(c.w, c.pal.Green.Render(msg))
	c.log.Info(msg)
}

// Warn prints msg in yellow.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.w, c.pal.Yellow.Render(msg))
	c.log.Warn(msg)
}

// Error prints msg in red.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.w, c.pal.Red.Render(msg))
	c.log.Error(msg)
}

// Info prints msg unstyled.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.w, msg)
	c.log.Info(msg)
}
