package menu

import "fmt"

// Navigation tokens.
const (
	TokenQuit = "q"
	TokenBack = "b"
	TokenHelp = "h"
)

// FooterKind selects which canned footer a menu carries and therefore
// which navigation tokens are live. Option tables must not reuse a
// token accepted by the menu's footer kind; navigation always wins.
type FooterKind int

const (
	FooterQuit FooterKind = iota
	FooterBack
	FooterBackHelp
)

// NavTokens returns the navigation tokens the kind accepts.
func (k FooterKind) NavTokens() []string {
	switch k {
	case FooterQuit:
		return []string{TokenQuit}
	case FooterBack:
		return []string{TokenBack}
	case FooterBackHelp:
		return []string{TokenBack, TokenHelp}
	}
	return nil
}

// Accepts reports whether token is a navigation token for the kind.
func (k FooterKind) Accepts(token string) bool {
	for _, t := range k.NavTokens() {
		if t == token {
			return true
		}
	}
	return false
}

func (k FooterKind) String() string {
	switch k {
	case FooterQuit:
		return "quit"
	case FooterBack:
		return "back"
	case FooterBackHelp:
		return "back+help"
	}
	return fmt.Sprintf("FooterKind(%d)", int(k))
}
