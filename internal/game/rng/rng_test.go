package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/rng"
)

func TestCryptoSource_InRange(t *testing.T) {
	src := rng.NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_PanicsOnInvalidN(t *testing.T) {
	src := rng.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-1) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := rng.NewSeededSource(42)
	b := rng.NewSeededSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100), "draw %d", i)
	}
}

func TestSeededSource_DifferentSeedsDiverge(t *testing.T) {
	a := rng.NewSeededSource(1)
	b := rng.NewSeededSource(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			same = false
		}
	}
	require.False(t, same)
}

func TestSeededSource_PanicsOnInvalidN(t *testing.T) {
	src := rng.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_Property_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		src := rng.NewSeededSource(seed)
		v := src.Intn(n)
		assert.GreaterOrEqual(rt, v, 0)
		assert.Less(rt, v, n)
	})
}
