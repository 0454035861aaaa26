// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/rng"
)

func TestSource_DeterministicAcrossInstances(t *testing.T) {
	a := rng.NewSource(12345)
	b := rng.NewSource(12345)

	for i := 0; i < 50; i++ {
		va, err := a.RollD20()
		require.NoError(t, err)
		vb, err := b.RollD20()
		require.NoError(t, err)
		require.Equal(t, va, vb, "draw %d diverged", i)
	}
}

func TestSource_DifferentSeedsDiverge(t *testing.T) {
	a := rng.NewSource(1)
	b := rng.NewSource(2)

	var same int
	for i := 0; i < 20; i++ {
		va, _ := a.RollD20()
		vb, _ := b.RollD20()
		if va == vb {
			same++
		}
	}
	require.Less(t, same, 20, "two different seeds produced an identical sequence")
}

func TestSource_RollIndexIncrementsPerPrimitive(t *testing.T) {
	s := rng.NewSource(7)
	require.EqualValues(t, 0, s.RollIndex())

	_, err := s.RollD20()
	require.NoError(t, err)
	require.EqualValues(t, 1, s.RollIndex())

	_, _, _, err = s.RollWithAdvantage()
	require.NoError(t, err)
	require.EqualValues(t, 3, s.RollIndex())

	_, err = s.RollN(4, 6)
	require.NoError(t, err)
	require.EqualValues(t, 7, s.RollIndex())
}

func TestSource_SetStateRestoresFutureDraws(t *testing.T) {
	seed := uint64(999)

	reference := rng.NewSource(seed)
	for i := 0; i < 10; i++ {
		_, err := reference.RollD20()
		require.NoError(t, err)
	}
	want, err := reference.RollD20()
	require.NoError(t, err)

	restored := rng.NewSource(0xDEAD)
	require.NoError(t, restored.SetState(seed, 10))
	got, err := restored.RollD20()
	require.NoError(t, err)

	require.Equal(t, want, got)
	require.EqualValues(t, 11, restored.RollIndex())
}

func TestSource_SetStateNegativeIndexFails(t *testing.T) {
	s := rng.NewSource(1)
	err := s.SetState(1, -1)
	require.Error(t, err)
}

func TestSource_InvalidDieSize(t *testing.T) {
	s := rng.NewSource(1)
	_, err := s.Roll(1, 0, 0)
	require.Error(t, err)

	_, err = s.RollN(-1, 6)
	require.Error(t, err)
}

func TestSource_RollSumsDiceAndBonus(t *testing.T) {
	s := rng.NewSource(42)
	result, err := s.Roll(3, 6, 2)
	require.NoError(t, err)
	require.Len(t, result.Dice, 3)

	sum := result.Bonus
	for _, d := range result.Dice {
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, 6)
		sum += d
	}
	require.Equal(t, sum, result.Total)
}

func TestSource_AdvantageTakesHigher(t *testing.T) {
	s := rng.NewSource(3)
	for i := 0; i < 30; i++ {
		taken, a, b, err := s.RollWithAdvantage()
		require.NoError(t, err)
		require.Equal(t, taken, max(a, b))
	}
}

func TestSource_DisadvantageTakesLower(t *testing.T) {
	s := rng.NewSource(3)
	for i := 0; i < 30; i++ {
		taken, a, b, err := s.RollWithDisadvantage()
		require.NoError(t, err)
		require.Equal(t, taken, min(a, b))
	}
}

func TestFixedSource_ReplaysInOrder(t *testing.T) {
	f := rng.NewFixedSource(12, 3, 20, 1)

	v, err := f.RollD20()
	require.NoError(t, err)
	require.Equal(t, 12, v)

	dice, err := f.RollN(2, 20)
	require.NoError(t, err)
	require.Equal(t, []int{3, 20}, dice)

	v, err = f.RollD20()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.EqualValues(t, 4, f.RollIndex())
}
