// Package battle implements the round-based arena battle engine: combatants,
// fight strategies, combat modes, and the engine that steps a battle round by
// round while recording an immutable history.
package battle

import "fmt"

// Combatant is one participant in a battle.
//
// Base attack and defence are fixed at creation. The in-combat Attack and
// Defence fields start equal to the base values and are only ever overwritten
// by a Strategy application — never directly by engine arithmetic.
//
// Invariant: Health >= 0 and is monotonically non-increasing under damage.
type Combatant struct {
	// ID uniquely identifies this combatant instance.
	ID string
	// Class is the display label, e.g. "Ranger" or "Skeleton".
	Class string
	// Health is the current hit points, floored at zero.
	Health float64
	// BaseAttack is the attack stat before any strategy modifier.
	BaseAttack float64
	// BaseDefence is the defence stat before any strategy modifier.
	BaseDefence float64
	// Attack is the in-combat attack stat for the current round.
	Attack float64
	// Defence is the in-combat defence stat for the current round.
	Defence float64
}

// NewCombatant creates a Combatant with in-combat stats initialised to the
// base stats.
//
// Precondition: class must be non-empty; attack > 0; defence > 0; health > 0.
// Postcondition: Returns a combatant with Attack == BaseAttack and
// Defence == BaseDefence, or an error wrapping ErrInvalidArgument.
func NewCombatant(id, class string, health, attack, defence float64) (*Combatant, error) {
	if class == "" {
		return nil, fmt.Errorf("battle: class must not be empty: %w", ErrInvalidArgument)
	}
	if health <= 0 {
		return nil, fmt.Errorf("battle: combatant %q: health must be > 0, got %v: %w", class, health, ErrInvalidArgument)
	}
	if attack <= 0 {
		return nil, fmt.Errorf("battle: combatant %q: attack must be > 0, got %v: %w", class, attack, ErrInvalidArgument)
	}
	if defence <= 0 {
		return nil, fmt.Errorf("battle: combatant %q: defence must be > 0, got %v: %w", class, defence, ErrInvalidArgument)
	}
	return &Combatant{
		ID:          id,
		Class:       class,
		Health:      health,
		BaseAttack:  attack,
		BaseDefence: defence,
		Attack:      attack,
		Defence:     defence,
	}, nil
}

// IsAlive reports whether this combatant still has health remaining.
//
// Postcondition: Returns true iff Health > 0.
func (c *Combatant) IsAlive() bool { return c.Health > 0 }

// ReceiveDamage reduces Health by amount, flooring at zero. Negative amounts
// are ignored so that damage application can never heal.
//
// Postcondition: Health == max(0, old Health - max(0, amount)).
func (c *Combatant) ReceiveDamage(amount float64) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// Clone returns an independent deep copy of this combatant. Later mutation of
// the live combatant never affects the copy; history snapshots rely on this.
//
// Postcondition: Returns a non-nil copy with identical field values.
func (c *Combatant) Clone() *Combatant {
	dup := *c
	return &dup
}

// String returns a short human-readable description of the combatant.
func (c *Combatant) String() string {
	return fmt.Sprintf("%s (health %g, attack %g, defence %g)", c.Class, c.Health, c.Attack, c.Defence)
}
