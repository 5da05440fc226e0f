// Package chord implements a two-step prefix-key command machine. A
// prefix press arms the machine; the next key either quits or is
// swallowed. An armed machine that sees no key within its timeout
// disarms itself.
//
// The machine is pure: Handle and Expire return effects describing what
// the host interface should do, and never touch the terminal themselves.
// That keeps every transition unit-testable without a running program.
package chord

import (
	"fmt"
	"time"
)

// State is the machine's input mode.
type State int

const (
	// StateIdle forwards keys untouched to the host.
	StateIdle State = iota
	// StateArmed interprets the next key as a chord completion.
	StateArmed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Effect is one instruction to the host interface. Effects are applied in
// the order returned.
type Effect interface{ isEffect() }

// ShowStatus displays text on the status surface.
type ShowStatus struct{ Text string }

// ResetStatus restores the status surface to its default.
type ResetStatus struct{}

// StartTimeout asks the host to call Expire(Gen) after the delay. The
// generation lets the machine ignore timeouts that were superseded by a
// later key press; hosts never need to cancel a timer.
type StartTimeout struct {
	Gen   uint64
	After time.Duration
}

// Quit terminates the interface.
type Quit struct{}

// Forward delivers the key to whatever view currently has focus.
type Forward struct{ Key string }

func (ShowStatus) isEffect()   {}
func (ResetStatus) isEffect()  {}
func (StartTimeout) isEffect() {}
func (Quit) isEffect()         {}
func (Forward) isEffect()      {}

const (
	// DefaultPrefix is the arming key in bubbletea key notation.
	DefaultPrefix = "ctrl+x"
	// DefaultQuitKey completes the quit chord.
	DefaultQuitKey = "q"
)

// Machine is the chord state machine. It is not safe for concurrent use;
// drive it from a single update loop.
type Machine struct {
	prefix  string
	quitKey string
	timeout time.Duration

	state State
	gen   uint64
}

// New returns an idle machine using the default prefix and quit key.
func New(timeout time.Duration) *Machine {
	return &Machine{
		prefix:  DefaultPrefix,
		quitKey: DefaultQuitKey,
		timeout: timeout,
	}
}

// State returns the current input mode.
func (m *Machine) State() State { return m.state }

// Handle processes one key press and returns the effects to apply.
func (m *Machine) Handle(key string) []Effect {
	if m.state == StateIdle {
		if key == m.prefix {
			m.state = StateArmed
			m.gen++
			return []Effect{
				ShowStatus{Text: "^X -"},
				StartTimeout{Gen: m.gen, After: m.timeout},
			}
		}
		return []Effect{Forward{Key: key}}
	}

	// Any key press resolves the chord one way or another. Bumping the
	// generation invalidates the pending timeout.
	m.state = StateIdle
	m.gen++

	if key == m.quitKey {
		return []Effect{Quit{}}
	}

	// Every other key is swallowed: never forwarded, and never treated
	// as a shortcut, even when the same key is one on the menu. The
	// status surface reverts to its default text immediately.
	return []Effect{ResetStatus{}}
}

// Expire handles a timeout firing for the given generation. Stale
// generations are ignored; a live one disarms the machine.
func (m *Machine) Expire(gen uint64) []Effect {
	if m.state != StateArmed || gen != m.gen {
		return nil
	}
	m.state = StateIdle
	return []Effect{ResetStatus{}}
}
