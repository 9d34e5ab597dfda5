package menu

import "errors"

var (
	// ErrUnknownFooter reports a footer kind the renderer has no art
	// for. Always a programming error.
	ErrUnknownFooter = errors.New("unknown footer kind")

	// ErrUnresolvedOption reports dispatch of an absent option. The
	// validator never hands one out, so hitting it means the loop was
	// bypassed.
	ErrUnresolvedOption = errors.New("unresolved option dispatched")
)
