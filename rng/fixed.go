// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rng

import "fmt"

// FixedSource replays a predetermined sequence of die results instead of
// generating them. It satisfies the same primitive-draw shape as Source
// (each die drawn consumes one entry and advances RollIndex) so code
// written against *Source's method set can be tested with exact, named
// rolls rather than a mocking framework's call expectations — mirroring
// the dice package's MockRoller in the teacher repo.
type FixedSource struct {
	results []int
	index   int
	rolled  int64
}

// NewFixedSource creates a FixedSource that yields results in order, then
// panics if exhausted (tests should supply exactly as many results as the
// scenario consumes; silently wrapping would hide a miscounted scenario).
func NewFixedSource(results ...int) *FixedSource {
	return &FixedSource{results: results}
}

func (f *FixedSource) next(sides int) (int, error) {
	if f.index >= len(f.results) {
		panic(fmt.Sprintf("rng: FixedSource exhausted after %d results", len(f.results)))
	}
	v := f.results[f.index]
	f.index++
	f.rolled++
	if v < 1 || v > sides {
		panic(fmt.Sprintf("rng: FixedSource result %d invalid for d%d", v, sides))
	}
	return v, nil
}

// RollD20 returns the next predetermined d20 result.
func (f *FixedSource) RollD20() (int, error) { return f.next(20) }

// RollN returns the next count predetermined results for sides.
func (f *FixedSource) RollN(count, sides int) ([]int, error) {
	out := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := f.next(sides)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Roll returns the next count predetermined results plus bonus.
func (f *FixedSource) Roll(count, sides, bonus int) (*Result, error) {
	dice, err := f.RollN(count, sides)
	if err != nil {
		return nil, err
	}
	total := bonus
	for _, d := range dice {
		total += d
	}
	return &Result{Dice: dice, Bonus: bonus, Total: total}, nil
}

// RollWithAdvantage consumes two predetermined d20 results and takes the higher.
func (f *FixedSource) RollWithAdvantage() (taken, a, b int, err error) {
	a, _ = f.next(20)
	b, _ = f.next(20)
	if a >= b {
		return a, a, b, nil
	}
	return b, a, b, nil
}

// RollWithDisadvantage consumes two predetermined d20 results and takes the lower.
func (f *FixedSource) RollWithDisadvantage() (taken, a, b int, err error) {
	a, _ = f.next(20)
	b, _ = f.next(20)
	if a <= b {
		return a, a, b, nil
	}
	return b, a, b, nil
}

// RollIndex returns the number of results consumed so far.
func (f *FixedSource) RollIndex() int64 { return f.rolled }
