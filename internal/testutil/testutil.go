// Package testutil provides fixtures shared by the tests of the packages
// built on top of the submarine engine.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// MassTolerance is how far a field's total may drift from the expected
// submarine count.
const MassTolerance = 1e-6

// Seeded returns a deterministic random source.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Lattice returns the cells of the built-in 2x2 lattice layout.
func Lattice() []submarine.Position {
	return []submarine.Position{submarine.Pos(1, 1), submarine.Pos(1, 3), submarine.Pos(3, 1), submarine.Pos(3, 3)}
}

// NewState returns a default game with full-HP own submarines at fleet.
func NewState(t *testing.T, fleet ...submarine.Position) *submarine.BattleState {
	t.Helper()
	s := submarine.NewBattleState(submarine.DefaultRules())
	for _, p := range fleet {
		if !submarine.IsWithinArea(p) {
			t.Fatalf("fleet cell %v is off the board", p)
		}
		s.MyGrid[p.Row][p.Col] = submarine.DefaultMaxHP
	}
	s.MyAliveCount = len(fleet)
	return s
}

// FlatField returns a field with every cell at v.
func FlatField(v float64) submarine.Field {
	var f submarine.Field
	for i := range f {
		f[i] = v
	}
	return f
}

// SoloLayout returns a single one-cell submarine at A1 with the given HP.
func SoloLayout(t *testing.T, hp int) submarine.Layout {
	t.Helper()
	l, err := submarine.ParseLayout("solo", []string{"X....", ".....", ".....", ".....", "....."}, hp)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

// AssertMass fails the test when the total of f is not want.
func AssertMass(t *testing.T, f *submarine.Field, want float64) {
	t.Helper()
	if got := f.Sum(); math.Abs(got-want) > MassTolerance {
		t.Errorf("field mass = %v, want %v", got, want)
	}
}
