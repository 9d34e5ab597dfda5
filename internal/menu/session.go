package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Signal is the way a menu loop ended.
type Signal int

const (
	// SignalBack returns control to the invoking menu's loop.
	SignalBack Signal = iota
	// SignalQuit unwinds every enclosing loop; the process exits after
	// the outermost one returns.
	SignalQuit
)

// DefaultLabel is the prompt label for menus without a Labeler.
const DefaultLabel = "Perform action"

// Farewell is printed exactly once when the user quits.
const Farewell = "###### Happy printing!"

// Screen renders the fixed chrome around a menu body.
type Screen interface {
	Banner()
	Footer(kind FooterKind) error
	Prompt(label string)
}

// Reporter surfaces user-facing status lines.
type Reporter interface {
	Ok(msg string)
	Error(msg string)
}

// Session owns the input reader and drives menu loops. One session
// runs the whole program; nesting depth is call-stack recursion.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	screen Screen
	report Reporter
	log    *zap.Logger
}

// NewSession wires the collaborators for menu loops. All of in, out,
// screen and report are required.
func NewSession(in io.Reader, out io.Writer, screen Screen, report Reporter, log *zap.Logger) (*Session, error) {
	if in == nil || out == nil || screen == nil || report == nil {
		return nil, errors.New("nil session collaborator")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		screen: screen,
		report: report,
		log:    log,
	}, nil
}

// Run drives m's event loop: display, prompt, dispatch, redisplay.
// It returns SignalBack when the user backs out of m and SignalQuit
// when a quit request must unwind every enclosing loop.
func (s *Session) Run(m Menu) (Signal, error) {
	sm := NewMachine()
	s.log.Info("menu opened", zap.String("menu", m.Name()))

	for {
		if err := s.display(m); err != nil {
			return 0, err
		}

		choice, err := s.promptChoice(m, sm)
		if err != nil {
			return 0, err
		}

		switch choice.Kind {
		case ChoiceNav:
			switch choice.Token {
			case TokenQuit:
				if err := sm.Transition(StateTerminatedQuit); err != nil {
					return 0, err
				}
				s.report.Ok(Farewell)
				s.log.Info("quit requested", zap.String("menu", m.Name()))
				return SignalQuit, nil

			case TokenBack:
				if err := sm.Transition(StateTerminatedBack); err != nil {
					return 0, err
				}
				return SignalBack, nil

			case TokenHelp:
				if err := sm.Transition(StateDisplaying); err != nil {
					return 0, err
				}
				if h, ok := m.(Helper); ok {
					h.Help(s.out)
				}
			}

		case ChoiceOption:
			if err := sm.Transition(StateDispatching); err != nil {
				return 0, err
			}
			sig, err := s.dispatch(m, choice)
			if err != nil {
				return 0, err
			}
			if sig == SignalQuit {
				if err := sm.Transition(StateTerminatedQuit); err != nil {
					return 0, err
				}
				return SignalQuit, nil
			}
			if err := sm.Transition(StateDisplaying); err != nil {
				return 0, err
			}
		}
	}
}

// display renders banner, body and footer for one pass of the loop.
func (s *Session) display(m Menu) error {
	if h, ok := m.(BannerHider); !ok || !h.HideBanner() {
		s.screen.Banner()
	}
	m.Body(s.out)
	return s.screen.Footer(m.Footer())
}

// promptChoice prompts until the input resolves. Invalid attempts are
// reported and reprompted without redisplaying the menu.
func (s *Session) promptChoice(m Menu, sm *Machine) (Choice, error) {
	for {
		if err := sm.Transition(StateAwaitingInput); err != nil {
			return Choice{}, err
		}
		s.screen.Prompt(inputLabel(m))

		line, err := s.readLine()
		if err != nil {
			return Choice{}, fmt.Errorf("read input: %w", err)
		}

		choice := Resolve(m, line)
		if choice.Kind == ChoiceNone {
			s.report.Error("Invalid input!")
			s.log.Warn("invalid input",
				zap.String("menu", m.Name()),
				zap.String("input", line),
			)
			continue
		}
		return choice, nil
	}
}

// dispatch executes a resolved option. Action errors are reported and
// absorbed; the returned signal is SignalQuit only when a nested menu
// quit.
func (s *Session) dispatch(m Menu, choice Choice) (Signal, error) {
	o := choice.Opt
	switch {
	case o.action != nil:
		if err := o.action(); err != nil {
			s.report.Error(err.Error())
			s.log.Error("action failed",
				zap.String("menu", m.Name()),
				zap.String("input", choice.Token),
				zap.Error(err),
			)
		}
		return SignalBack, nil

	case o.factory != nil:
		return s.enter(m, o.factory())

	case o.inst != nil:
		return s.enter(m, o.inst)

	default:
		return 0, fmt.Errorf("%w (menu %q, input %q)", ErrUnresolvedOption, m.Name(), choice.Token)
	}
}

// enter stamps the live caller on sub and runs its loop. The stamp
// happens on every entry, so a menu reachable from several parents
// always records the one that actually opened it.
func (s *Session) enter(from, sub Menu) (Signal, error) {
	if ca, ok := sub.(CallerAware); ok {
		ca.SetCaller(from)
	}
	return s.Run(sub)
}

// readLine reads one line, stripping the terminator. A final unterminated
// line before EOF is still delivered.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func inputLabel(m Menu) string {
	if l, ok := m.(Labeler); ok {
		return l.InputLabel()
	}
	return DefaultLabel
}
