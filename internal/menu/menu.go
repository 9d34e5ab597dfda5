package menu

import "io"

// Menu is the contract every screen implements.
type Menu interface {
	// Name returns a stable identifier used for registry lookup and log fields.
	Name() string
	// Body writes the menu body shown between banner and footer.
	Body(w io.Writer)
	// Options returns the selectable option table.
	Options() Table
	// Footer declares which canned footer the menu carries.
	Footer() FooterKind
}

// Table maps input tokens to options.
type Table map[string]Option

// Defaulter is implemented by menus with a fallback option. The
// fallback fires on empty input or an empty table entry, never on an
// unmatched token.
type Defaulter interface {
	Default() Option
}

// Helper is implemented by menus that answer the "h" navigation token.
// Menus without it silently redisplay.
type Helper interface {
	Help(w io.Writer)
}

// Labeler overrides the prompt label. Menus without it are prompted
// with "Perform action".
type Labeler interface {
	InputLabel() string
}

// CallerAware is implemented by menus that remember which menu opened
// them. The session stamps the live caller right before entering the
// sub-menu's loop, so a menu reachable from several parents always
// knows the one that actually opened it.
type CallerAware interface {
	SetCaller(Menu)
}

// BannerHider is implemented by menus that suppress the program banner
// above their body.
type BannerHider interface {
	HideBanner() bool
}

// Crumb is an embeddable caller field satisfying CallerAware.
type Crumb struct {
	caller Menu
}

// SetCaller records the menu that opened this one.
func (c *Crumb) SetCaller(m Menu) { c.caller = m }

// Caller returns the menu that opened this one, or nil.
func (c *Crumb) Caller() Menu { return c.caller }
