package battle

// Round is an immutable audit record of one executed round. It is created
// exactly once per round, appended to the battle's history, and never
// mutated afterwards.
type Round struct {
	// Number is the 1-based round number.
	Number int
	// StrategyA and StrategyB are the short names of the strategies each
	// side used this round.
	StrategyA string
	StrategyB string
	// DamageToA and DamageToB are the damage amounts applied this round.
	// Both are >= 0.
	DamageToA float64
	DamageToB float64
	// SnapshotA and SnapshotB are independent deep copies of both combatants
	// taken after damage was applied. They are held by value so that neither
	// later mutation of the live combatants nor writes through a History()
	// copy can reach the recorded state.
	SnapshotA Combatant
	SnapshotB Combatant
}
