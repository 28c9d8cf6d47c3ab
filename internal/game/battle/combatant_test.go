package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/battle"
)

func TestNewCombatant(t *testing.T) {
	c, err := battle.NewCombatant("id-1", "Ranger", 15, 12, 8)
	require.NoError(t, err)
	assert.Equal(t, "Ranger", c.Class)
	assert.Equal(t, 15.0, c.Health)
	// In-combat stats start equal to base stats.
	assert.Equal(t, c.BaseAttack, c.Attack)
	assert.Equal(t, c.BaseDefence, c.Defence)
}

func TestNewCombatant_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		class   string
		health  float64
		attack  float64
		defence float64
	}{
		{"empty class", "", 10, 5, 5},
		{"zero health", "X", 0, 5, 5},
		{"negative health", "X", -1, 5, 5},
		{"zero attack", "X", 10, 0, 5},
		{"negative attack", "X", 10, -2, 5},
		{"zero defence", "X", 10, 5, 0},
		{"negative defence", "X", 10, 5, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := battle.NewCombatant("id", tc.class, tc.health, tc.attack, tc.defence)
			require.Error(t, err)
			assert.ErrorIs(t, err, battle.ErrInvalidArgument)
		})
	}
}

func TestCombatant_ReceiveDamage(t *testing.T) {
	c, err := battle.NewCombatant("id", "X", 10, 5, 5)
	require.NoError(t, err)

	c.ReceiveDamage(4)
	assert.InDelta(t, 6, c.Health, 1e-9)

	c.ReceiveDamage(20)
	assert.Equal(t, 0.0, c.Health) // floors at 0
}

func TestCombatant_ReceiveDamage_NegativeIgnored(t *testing.T) {
	c, err := battle.NewCombatant("id", "X", 10, 5, 5)
	require.NoError(t, err)
	c.ReceiveDamage(-3)
	assert.Equal(t, 10.0, c.Health)
}

func TestCombatant_Property_DamageClampsAtZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		health := rapid.Float64Range(0.1, 1000).Draw(rt, "health")
		dmg := rapid.Float64Range(0, 2000).Draw(rt, "dmg")
		c, err := battle.NewCombatant("id", "X", health, 1, 1)
		require.NoError(rt, err)
		c.ReceiveDamage(dmg)
		want := health - dmg
		if want < 0 {
			want = 0
		}
		assert.InDelta(rt, want, c.Health, 1e-9)
		assert.GreaterOrEqual(rt, c.Health, 0.0)
	})
}

func TestCombatant_Property_HealthNeverIncreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c, err := battle.NewCombatant("id", "X", 50, 1, 1)
		require.NoError(rt, err)
		prev := c.Health
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			c.ReceiveDamage(rapid.Float64Range(-10, 30).Draw(rt, "dmg"))
			assert.LessOrEqual(rt, c.Health, prev)
			prev = c.Health
		}
	})
}

func TestCombatant_Clone_Independence(t *testing.T) {
	c, err := battle.NewCombatant("id", "X", 10, 5, 5)
	require.NoError(t, err)

	snap := c.Clone()
	c.ReceiveDamage(7)
	if _, err := battle.Aggressive.Apply(c); err != nil {
		t.Fatal(err)
	}

	// The clone is unaffected by later mutation of the live combatant.
	assert.Equal(t, 10.0, snap.Health)
	assert.Equal(t, 5.0, snap.Attack)
	assert.Equal(t, 5.0, snap.Defence)
}

func TestCombatant_IsAlive(t *testing.T) {
	c, err := battle.NewCombatant("id", "X", 1, 5, 5)
	require.NoError(t, err)
	assert.True(t, c.IsAlive())
	c.ReceiveDamage(1)
	assert.False(t, c.IsAlive())
}
