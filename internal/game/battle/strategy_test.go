package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/battle"
)

func TestStrategy_Factors(t *testing.T) {
	tests := []struct {
		strategy    battle.Strategy
		wantAttack  float64
		wantDefence float64
	}{
		{battle.Aggressive, 18, 6},
		{battle.Defensive, 6, 18},
		{battle.Evasive, 4, 8},
	}
	for _, tc := range tests {
		c, err := battle.NewCombatant("id", "X", 10, 10, 10)
		require.NoError(t, err)
		got, err := tc.strategy.Apply(c)
		require.NoError(t, err)
		assert.Same(t, c, got) // returns the same entity for chaining
		assert.InDelta(t, tc.wantAttack, c.Attack, 1e-9, "strategy=%s", tc.strategy.Name())
		assert.InDelta(t, tc.wantDefence, c.Defence, 1e-9, "strategy=%s", tc.strategy.Name())
	}
}

func TestStrategy_Apply_DoesNotTouchHealthOrBase(t *testing.T) {
	c, err := battle.NewCombatant("id", "X", 15, 12, 8)
	require.NoError(t, err)
	_, err = battle.Defensive.Apply(c)
	require.NoError(t, err)
	assert.Equal(t, 15.0, c.Health)
	assert.Equal(t, 12.0, c.BaseAttack)
	assert.Equal(t, 8.0, c.BaseDefence)
}

func TestStrategy_Apply_NilCombatant(t *testing.T) {
	for _, s := range battle.Strategies {
		_, err := s.Apply(nil)
		require.Error(t, err, "strategy=%s", s.Name())
		assert.ErrorIs(t, err, battle.ErrInvalidArgument)
	}
}

// Strategies recompute from base stats, so applying one strategy after
// another yields the same result as applying the second alone.
func TestStrategy_Property_NonCompounding(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attack := rapid.Float64Range(0.1, 100).Draw(rt, "attack")
		defence := rapid.Float64Range(0.1, 100).Draw(rt, "defence")

		chained, err := battle.NewCombatant("a", "X", 10, attack, defence)
		require.NoError(rt, err)
		direct, err := battle.NewCombatant("b", "X", 10, attack, defence)
		require.NoError(rt, err)

		_, err = battle.Evasive.Apply(chained)
		require.NoError(rt, err)
		_, err = battle.Aggressive.Apply(chained)
		require.NoError(rt, err)
		_, err = battle.Aggressive.Apply(direct)
		require.NoError(rt, err)

		assert.InDelta(rt, direct.Attack, chained.Attack, 1e-9)
		assert.InDelta(rt, direct.Defence, chained.Defence, 1e-9)
	})
}

func TestStrategy_Labels(t *testing.T) {
	assert.Equal(t, "Aggressive Strategy - Attack factor: 1.8 - Defence factor 0.6", battle.Aggressive.String())
	assert.Equal(t, "Defensive Strategy - Attack factor: 0.6 - Defence factor 1.8", battle.Defensive.String())
	assert.Equal(t, "Evasive Strategy - Attack factor: 0.4 - Defence factor 0.8", battle.Evasive.String())
}

func TestStrategyByName(t *testing.T) {
	s, ok := battle.StrategyByName("Aggressive")
	require.True(t, ok)
	assert.Equal(t, "Aggressive", s.Name())

	_, ok = battle.StrategyByName("Berserk")
	assert.False(t, ok)
}
