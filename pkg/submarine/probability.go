package submarine

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// unitTolerance bounds how far one extracted submarine's worth of mass may
// stray from 1 before a hit falls back to rescaling.
const unitTolerance = 1e-9

// The update rules below keep Sum() equal to the number of live enemy
// submarines. n is always the count before any kill is processed.

// ApplyHit pins c to 1: c's mass is spread over the board, then one
// submarine's worth is pulled back from everywhere else and placed on c.
// Hitting an already pinned cell is a no-op.
func (f *Field) ApplyHit(c Position, n int) {
	if IsSettledOne(f.At(c)) {
		return
	}
	if f.SettledOneCount() >= n {
		// Every submarine is already accounted for, so the other cells
		// shrink proportionally to make room for c.
		f.rescaleAround(c)
		return
	}
	before := *f
	if !f.evacuate(c) {
		f.rescaleAround(c)
		return
	}
	// Evacuation can push the other cells onto 1, leaving nothing to
	// extract. Fall back to rescaling the field as it was before.
	rest := f.unsettledExcept(func(p Position) bool { return p == c })
	if got := f.extractOneUnit(rest, n); math.Abs(got-1) > unitTolerance {
		*f = before
		f.rescaleAround(c)
		return
	}
	f.Set(c, 1)
}

// rescaleAround pins c to 1 while scaling every other cell so the total mass
// is unchanged.
func (f *Field) rescaleAround(c Position) {
	total := f.Sum()
	f.Set(c, 0)
	others := f.Sum()
	if others <= 0 {
		f.Set(c, total)
		return
	}
	floats.Scale((total-1)/others, f[:])
	f.Set(c, 1)
}

// ApplyDead applies a hit at c and then takes one submarine off the cell.
// The total mass drops by exactly one. A cell left holding more than one
// unit, which only contradictory responses produce, keeps the surplus.
func (f *Field) ApplyDead(c Position, n int) {
	f.ApplyHit(c, n)
	f.Set(c, math.Max(f.At(c)-1, 0))
}

// ApplyNear handles a Near response at c: c is emptied and one submarine's
// worth of mass is moved onto c's unsettled neighbours. Nothing changes when
// a neighbour is already pinned or c is already settled at zero.
func (f *Field) ApplyNear(c Position, n int) {
	around := Around(c)
	for _, q := range around {
		if IsSettledOne(f.At(q)) {
			return
		}
	}
	if IsSettledZero(f.At(c)) {
		return
	}

	f.evacuate(c)
	var dests []Position
	for _, q := range around {
		if !isSettled(f.At(q)) {
			dests = append(dests, q)
		}
	}
	if len(dests) == 0 {
		return
	}
	rest := f.unsettledExcept(func(p Position) bool { return p == c })
	unit := f.extractOneUnit(rest, n)
	f.distribute(unit, dests)
}

// ApplyNothing zeroes c and its neighbours and spreads their mass over the
// unsettled cells outside that neighbourhood.
func (f *Field) ApplyNothing(c Position) {
	zone := func(p Position) bool { return p == c || IsAround(c, p) }

	sum := f.At(c)
	f.Set(c, 0)
	for _, q := range Around(c) {
		sum += f.At(q)
		f.Set(q, 0)
	}
	if sum == 0 {
		return
	}

	dests := f.unsettledExcept(zone)
	if len(dests) == 0 {
		for _, p := range AllCells() {
			if !zone(p) {
				dests = append(dests, p)
			}
		}
	}
	f.distribute(sum, dests)
}

// ApplyOpponentAttack treats an observed enemy attack at c like a Near
// response at c.
func (f *Field) ApplyOpponentAttack(c Position, n int) {
	f.ApplyNear(c, n)
}

// ApplyOpponentMove shifts one submarine's worth of mass by (dy, dx). Each
// source cell whose destination stays on the board sends value/T, capped at
// its own value, where T is the total mass of all such sources. Amounts are
// computed from the field before any destination is written.
func (f *Field) ApplyOpponentMove(dy, dx int) {
	var sources []Position
	total := 0.0
	for _, p := range AllCells() {
		if IsWithinArea(p.Add(dy, dx)) {
			sources = append(sources, p)
			total += f.At(p)
		}
	}
	if IsSettledZero(total) {
		return
	}

	var moved Field
	for _, s := range sources {
		v := f.At(s)
		amt := v / total
		if amt > v {
			amt = v
		}
		moved.Set(s, amt)
	}
	for _, s := range sources {
		amt := moved.At(s)
		f[s.Index()] -= amt
		f[s.Add(dy, dx).Index()] += amt
	}
}
