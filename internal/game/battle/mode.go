package battle

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/rng"
)

// Mode is a per-combatant policy that selects the Strategy for the upcoming
// round. The engine calls NextStrategy exactly once per combatant per round.
//
// A Mode must never return nil; a policy that cannot decide is a defect, not
// a recoverable condition. Modes may keep internal state (round counters) and
// are therefore owned by a single battle — they must not be shared.
type Mode interface {
	NextStrategy() Strategy
}

// MostlyEvasiveMode returns Aggressive on every 3rd call (calls 3, 6, 9, …)
// and Evasive on all others. The counter persists for the lifetime of the
// mode and never resets.
type MostlyEvasiveMode struct {
	calls int
}

// NewMostlyEvasiveMode creates a MostlyEvasiveMode with its counter at zero,
// so the first Aggressive round is the 3rd call.
func NewMostlyEvasiveMode() *MostlyEvasiveMode {
	return &MostlyEvasiveMode{}
}

// NextStrategy advances the call counter and returns the selected strategy.
//
// Postcondition: Returns Aggressive when the (1-based) call count is a
// multiple of 3, Evasive otherwise. Never returns nil.
func (m *MostlyEvasiveMode) NextStrategy() Strategy {
	m.calls++
	if m.calls%3 == 0 {
		return Aggressive
	}
	return Evasive
}

// RandomMode draws uniformly from the built-in strategies on every call,
// independently across calls.
type RandomMode struct {
	src rng.Source
}

// NewRandomMode creates a RandomMode drawing from src.
//
// Precondition: src must not be nil.
func NewRandomMode(src rng.Source) *RandomMode {
	if src == nil {
		panic("battle: NewRandomMode: src must not be nil")
	}
	return &RandomMode{src: src}
}

// NextStrategy returns one of the built-in strategies chosen uniformly at
// random.
//
// Postcondition: Never returns nil.
func (m *RandomMode) NextStrategy() Strategy {
	return Strategies[m.src.Intn(len(Strategies))]
}

// AdaptiveMode selects by the owning combatant's current health: Defensive
// when health has dropped below the threshold, Aggressive otherwise.
type AdaptiveMode struct {
	owner     *Combatant
	threshold float64
}

// NewAdaptiveMode creates an AdaptiveMode watching owner.
//
// Precondition: owner must not be nil; threshold must be > 0.
func NewAdaptiveMode(owner *Combatant, threshold float64) (*AdaptiveMode, error) {
	if owner == nil {
		return nil, fmt.Errorf("battle: NewAdaptiveMode: owner must not be nil: %w", ErrInvalidArgument)
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("battle: NewAdaptiveMode: threshold must be > 0, got %v: %w", threshold, ErrInvalidArgument)
	}
	return &AdaptiveMode{owner: owner, threshold: threshold}, nil
}

// NextStrategy returns Defensive when the owner's health is below the
// threshold, Aggressive otherwise.
//
// Postcondition: Never returns nil.
func (m *AdaptiveMode) NextStrategy() Strategy {
	if m.owner.Health < m.threshold {
		return Defensive
	}
	return Aggressive
}

// Mode kind identifiers accepted by NewMode and the roster templates.
const (
	ModeMostlyEvasive = "mostly_evasive"
	ModeRandom        = "random"
	ModeAdaptive      = "adaptive"
)

// NewMode constructs a built-in Mode by kind. Script-backed modes are
// constructed separately since they need a script path.
//
// Precondition: owner must not be nil; src must not be nil when kind is
// ModeRandom.
// Postcondition: Returns a fresh Mode owned by the caller, or an error
// wrapping ErrInvalidArgument for an unknown kind.
func NewMode(kind string, owner *Combatant, src rng.Source) (Mode, error) {
	if owner == nil {
		return nil, fmt.Errorf("battle: NewMode: owner must not be nil: %w", ErrInvalidArgument)
	}
	switch kind {
	case ModeMostlyEvasive:
		return NewMostlyEvasiveMode(), nil
	case ModeRandom:
		if src == nil {
			return nil, fmt.Errorf("battle: NewMode: src must not be nil for %q: %w", kind, ErrInvalidArgument)
		}
		return NewRandomMode(src), nil
	case ModeAdaptive:
		// Below half of starting health the combatant turtles up.
		return NewAdaptiveMode(owner, owner.Health/2)
	default:
		return nil, fmt.Errorf("battle: NewMode: unknown mode kind %q: %w", kind, ErrInvalidArgument)
	}
}
