// Package report renders battle histories as human-readable text. The battle
// engine never formats output itself; this package is the presentation
// collaborator consuming its round records.
package report

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/arena/internal/game/battle"
)

// RenderHistory formats the full round-by-round transcript of a battle.
//
// Postcondition: Returns one line per round plus a header; empty history
// renders the header only.
func RenderHistory(rounds []battle.Round) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Battle transcript (%d rounds)\n", len(rounds)))
	for _, r := range rounds {
		b.WriteString(fmt.Sprintf("Round %d: %s [%s] took %.1f damage (health %.1f) | %s [%s] took %.1f damage (health %.1f)\n",
			r.Number,
			r.SnapshotA.Class, r.StrategyA, r.DamageToA, r.SnapshotA.Health,
			r.SnapshotB.Class, r.StrategyB, r.DamageToB, r.SnapshotB.Health,
		))
	}

	return b.String()
}

// RenderOutcome formats the terminal result of a battle, or a note that it is
// still undecided.
func RenderOutcome(bt *battle.Battle) string {
	switch {
	case bt.IsDraw():
		return "The battle ends in a draw: both combatants have fallen.\n"
	case bt.IsOngoing():
		return fmt.Sprintf("The battle is undecided after %d rounds.\n", len(bt.History()))
	default:
		winner, _ := bt.Winner()
		return fmt.Sprintf("%s wins with %.1f health remaining after %d rounds.\n",
			winner.Class, winner.Health, len(bt.History()))
	}
}
