package menu

import "strings"

// ChoiceKind classifies the outcome of resolving one line of input.
type ChoiceKind int

const (
	// ChoiceNone means the input matched nothing; the caller reprompts.
	ChoiceNone ChoiceKind = iota
	// ChoiceNav means the input is a live navigation token.
	ChoiceNav
	// ChoiceOption means the input resolved to a table or default option.
	ChoiceOption
)

// Choice is the outcome of resolving one line of user input.
type Choice struct {
	Kind  ChoiceKind
	Token string // lowered input
	Opt   Option // set for ChoiceOption
}

// Resolve classifies one line of user input against m's option table
// and footer kind. Input is lowered, never trimmed. Navigation tokens
// win over table entries. The default option fires only for empty
// input or an empty table entry; a non-empty unmatched token is no
// match even when a default exists.
func Resolve(m Menu, raw string) Choice {
	input := strings.ToLower(raw)

	if m.Footer().Accepts(input) {
		return Choice{Kind: ChoiceNav, Token: input}
	}

	opt, matched := m.Options()[input]

	if input == "" || (matched && opt.IsZero()) {
		if d, ok := m.(Defaulter); ok {
			if def := d.Default(); !def.IsZero() {
				return Choice{Kind: ChoiceOption, Token: input, Opt: def}
			}
		}
		return Choice{Kind: ChoiceNone, Token: input}
	}

	if matched {
		return Choice{Kind: ChoiceOption, Token: input, Opt: opt}
	}

	return Choice{Kind: ChoiceNone, Token: input}
}
