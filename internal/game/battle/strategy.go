package battle

import "fmt"

// Strategy transforms a combatant's base stats into in-combat stats by fixed
// multiplicative factors. Implementations are stateless and safe to share
// across combatants and concurrent battles.
type Strategy interface {
	// Apply overwrites c's in-combat stats, recomputing them from the base
	// stats so that repeated applications never compound.
	//
	// Precondition: c must not be nil.
	// Postcondition: c.Attack == c.BaseAttack * attack factor and
	// c.Defence == c.BaseDefence * defence factor; health and base stats are
	// untouched. Returns c for chaining, or an error wrapping
	// ErrInvalidArgument when c is nil.
	Apply(c *Combatant) (*Combatant, error)
	// Name returns the short variant name, e.g. "Aggressive".
	Name() string
	// String returns the full descriptive label used in logs and records.
	String() string
}

// factorStrategy is the shared implementation behind all fixed-factor
// strategies.
type factorStrategy struct {
	name          string
	attackFactor  float64
	defenceFactor float64
}

// The three built-in strategies. Each is stateless; the package-level values
// are reused everywhere rather than constructed per round.
var (
	Aggressive Strategy = factorStrategy{name: "Aggressive", attackFactor: 1.8, defenceFactor: 0.6}
	Defensive  Strategy = factorStrategy{name: "Defensive", attackFactor: 0.6, defenceFactor: 1.8}
	Evasive    Strategy = factorStrategy{name: "Evasive", attackFactor: 0.4, defenceFactor: 0.8}
)

// Strategies lists every built-in strategy in a stable order. Random modes
// index into this slice.
var Strategies = []Strategy{Aggressive, Defensive, Evasive}

// StrategyByName returns the built-in strategy with the given name,
// case-sensitively.
//
// Postcondition: Returns (strategy, true) when name matches a built-in
// variant, or (nil, false) otherwise.
func StrategyByName(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (s factorStrategy) Apply(c *Combatant) (*Combatant, error) {
	if c == nil {
		return nil, fmt.Errorf("battle: %s.Apply: combatant must not be nil: %w", s.name, ErrInvalidArgument)
	}
	c.Attack = c.BaseAttack * s.attackFactor
	c.Defence = c.BaseDefence * s.defenceFactor
	return c, nil
}

func (s factorStrategy) Name() string { return s.name }

func (s factorStrategy) String() string {
	return fmt.Sprintf("%s Strategy - Attack factor: %g - Defence factor %g", s.name, s.attackFactor, s.defenceFactor)
}
