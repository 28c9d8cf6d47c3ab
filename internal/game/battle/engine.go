package battle

import (
	"fmt"

	"github.com/google/uuid"
)

// State is the battle's position in its lifecycle, derived from combatant
// health. Won and Draw are terminal; no further rounds may execute.
type State int

const (
	// Ongoing means both combatants still have health remaining.
	Ongoing State = iota
	// Won means exactly one combatant has health remaining.
	Won
	// Draw means both combatants reached zero health in the same round.
	Draw
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Battle steps two combatants through rounds until one or both fall.
//
// A Battle exclusively owns its combatants and their modes for its lifetime:
// in-combat stats and mode counters are mutated in place, so neither may be
// shared with a concurrent battle. A Battle is not safe for concurrent use;
// hosts running many battles create one Battle per fight.
type Battle struct {
	id      uuid.UUID
	a, b    *Combatant
	modeA   Mode
	modeB   Mode
	history []Round
}

// New creates a Battle between a and b, with each side's strategy selected
// per round by its Mode.
//
// Precondition: a, b, modeA, and modeB must not be nil; both combatants must
// start with Health > 0.
// Postcondition: Returns an Ongoing battle with empty history, or an error
// wrapping ErrInvalidArgument.
func New(a, b *Combatant, modeA, modeB Mode) (*Battle, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("battle: New: combatants must not be nil: %w", ErrInvalidArgument)
	}
	if modeA == nil || modeB == nil {
		return nil, fmt.Errorf("battle: New: modes must not be nil: %w", ErrInvalidArgument)
	}
	if !a.IsAlive() {
		return nil, fmt.Errorf("battle: New: combatant %q must start with health > 0, got %v: %w", a.Class, a.Health, ErrInvalidArgument)
	}
	if !b.IsAlive() {
		return nil, fmt.Errorf("battle: New: combatant %q must start with health > 0, got %v: %w", b.Class, b.Health, ErrInvalidArgument)
	}
	return &Battle{id: uuid.New(), a: a, b: b, modeA: modeA, modeB: modeB}, nil
}

// ID returns the unique identifier of this battle.
func (bt *Battle) ID() uuid.UUID { return bt.id }

// State derives the current battle state from combatant health.
//
// Postcondition: Returns Ongoing iff both are alive, Draw iff neither is,
// and Won otherwise.
func (bt *Battle) State() State {
	switch {
	case bt.a.IsAlive() && bt.b.IsAlive():
		return Ongoing
	case !bt.a.IsAlive() && !bt.b.IsAlive():
		return Draw
	default:
		return Won
	}
}

// IsOngoing reports whether further rounds may execute.
func (bt *Battle) IsOngoing() bool { return bt.State() == Ongoing }

// IsDraw reports whether both combatants fell in the same round.
func (bt *Battle) IsDraw() bool { return bt.State() == Draw }

// Winner returns the winning combatant once the battle is Won.
//
// Postcondition: Returns (winner, true) iff State() == Won; (nil, false)
// while Ongoing or after a Draw.
func (bt *Battle) Winner() (*Combatant, bool) {
	if bt.State() != Won {
		return nil, false
	}
	if bt.a.IsAlive() {
		return bt.a, true
	}
	return bt.b, true
}

// RunRound executes one round, pulling each side's strategy from its Mode.
//
// Precondition: the battle must be Ongoing.
// Postcondition: On success one Round is appended to history. Fails with an
// error wrapping ErrInvalidState when the battle is already terminal, in
// which case nothing is mutated.
func (bt *Battle) RunRound() (Round, error) {
	if !bt.IsOngoing() {
		return Round{}, fmt.Errorf("battle: RunRound: battle already %s after %d rounds: %w", bt.State(), len(bt.history), ErrInvalidState)
	}
	return bt.runRound(bt.modeA.NextStrategy(), bt.modeB.NextStrategy())
}

// RunRoundWith executes one round using the explicitly supplied strategies,
// bypassing both Modes.
//
// Precondition: sa and sb must not be nil; the battle must be Ongoing.
// Postcondition: As for RunRound. Fails with ErrInvalidArgument on a nil
// strategy, checked before any mutation.
func (bt *Battle) RunRoundWith(sa, sb Strategy) (Round, error) {
	if sa == nil {
		return Round{}, fmt.Errorf("battle: RunRoundWith: strategy for %q must not be nil: %w", bt.a.Class, ErrInvalidArgument)
	}
	if sb == nil {
		return Round{}, fmt.Errorf("battle: RunRoundWith: strategy for %q must not be nil: %w", bt.b.Class, ErrInvalidArgument)
	}
	if !bt.IsOngoing() {
		return Round{}, fmt.Errorf("battle: RunRoundWith: battle already %s after %d rounds: %w", bt.State(), len(bt.history), ErrInvalidState)
	}
	return bt.runRound(sa, sb)
}

// runRound applies both strategies, computes bilateral damage from the
// post-strategy stats of the same round, applies it, and records the round.
//
// Both damages are computed before either health is mutated, so the result
// is symmetric and order-independent within the round.
func (bt *Battle) runRound(sa, sb Strategy) (Round, error) {
	if _, err := sa.Apply(bt.a); err != nil {
		return Round{}, err
	}
	if _, err := sb.Apply(bt.b); err != nil {
		return Round{}, err
	}

	dmgToA := bt.b.Attack - bt.a.Defence
	if dmgToA < 0 {
		dmgToA = 0
	}
	dmgToB := bt.a.Attack - bt.b.Defence
	if dmgToB < 0 {
		dmgToB = 0
	}

	bt.a.ReceiveDamage(dmgToA)
	bt.b.ReceiveDamage(dmgToB)

	rec := Round{
		Number:    len(bt.history) + 1,
		StrategyA: sa.Name(),
		StrategyB: sb.Name(),
		DamageToA: dmgToA,
		DamageToB: dmgToB,
		SnapshotA: *bt.a.Clone(),
		SnapshotB: *bt.b.Clone(),
	}
	bt.history = append(bt.history, rec)
	return rec, nil
}

// RunToCompletion executes rounds until the battle reaches a terminal state.
//
// There is deliberately no internal round cap: when neither side's effective
// attack can exceed the other's defence the loop never terminates. Callers
// needing bounded execution drive RunRound themselves with their own limit.
//
// Precondition: the battle must be Ongoing.
// Postcondition: State() is Won or Draw; returns the number of rounds
// executed by this call.
func (bt *Battle) RunToCompletion() (int, error) {
	if !bt.IsOngoing() {
		return 0, fmt.Errorf("battle: RunToCompletion: battle already %s: %w", bt.State(), ErrInvalidState)
	}
	executed := 0
	for bt.IsOngoing() {
		if _, err := bt.RunRound(); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

// History returns a copy of the ordered round records executed so far.
// Mutating the returned slice never affects the battle's own history.
//
// Postcondition: len(result) equals the number of successfully executed rounds.
func (bt *Battle) History() []Round {
	out := make([]Round, len(bt.history))
	copy(out, bt.history)
	return out
}
