package submarine

import (
	"gonum.org/v1/gonum/floats"
)

// SettledTolerance is how close a cell must be to 0 or 1 to count as
// resolved. Settled cells are skipped by most redistribution.
const SettledTolerance = 1e-7

// Field holds, per cell in row-major order, the estimated likelihood that an
// enemy submarine occupies it. The sum over all cells tracks the number of
// enemy submarines still alive.
type Field [CellCount]float64

// NewField returns a uniform field carrying n submarines of mass.
func NewField(n int) Field {
	var f Field
	for i := range f {
		f[i] = float64(n) / CellCount
	}
	return f
}

// IsSettledZero reports whether v is within SettledTolerance of 0.
func IsSettledZero(v float64) bool {
	return v > -SettledTolerance && v < SettledTolerance
}

// IsSettledOne reports whether v is within SettledTolerance of 1.
func IsSettledOne(v float64) bool {
	return v > 1-SettledTolerance && v < 1+SettledTolerance
}

func isSettled(v float64) bool {
	return IsSettledZero(v) || IsSettledOne(v)
}

// At returns the value at p.
func (f *Field) At(p Position) float64 {
	return f[p.Index()]
}

// Set overwrites the value at p.
func (f *Field) Set(p Position, v float64) {
	f[p.Index()] = v
}

// Sum returns the total mass.
func (f *Field) Sum() float64 {
	return floats.Sum(f[:])
}

// Grid returns the field as a row/col matrix for rendering.
func (f *Field) Grid() [Rows][Cols]float64 {
	var g [Rows][Cols]float64
	for i, v := range f {
		p := PositionAt(i)
		g[p.Row][p.Col] = v
	}
	return g
}

// Max returns the highest-probability cell on the board. Ties go to the
// first cell in row-major order.
func (f *Field) Max() (Position, float64) {
	idx := floats.MaxIdx(f[:])
	return PositionAt(idx), f[idx]
}

// MaxOf returns the highest-probability cell among cells, with ties going to
// the earliest entry. ok is false when cells is empty.
func (f *Field) MaxOf(cells []Position) (best Position, value float64, ok bool) {
	for _, c := range cells {
		v := f.At(c)
		if !ok || v > value {
			best, value, ok = c, v, true
		}
	}
	return best, value, ok
}

// SettledOneCount returns how many cells are pinned at 1.
func (f *Field) SettledOneCount() int {
	k := 0
	for _, v := range f {
		if IsSettledOne(v) {
			k++
		}
	}
	return k
}

// unsettledExcept lists the cells that are neither settled nor in skip.
func (f *Field) unsettledExcept(skip func(Position) bool) []Position {
	var cells []Position
	for i, v := range f {
		p := PositionAt(i)
		if isSettled(v) || (skip != nil && skip(p)) {
			continue
		}
		cells = append(cells, p)
	}
	return cells
}

// distribute spreads amount evenly over dests. dests must be non-empty.
func (f *Field) distribute(amount float64, dests []Position) {
	share := amount / float64(len(dests))
	for _, d := range dests {
		f[d.Index()] += share
	}
}

// evacuate zeroes pos and spreads its previous value over every other
// unsettled cell. When no such cell exists the value stays where it is and
// evacuate returns false.
func (f *Field) evacuate(pos Position) bool {
	v := f.At(pos)
	dests := f.unsettledExcept(func(p Position) bool { return p == pos })
	if len(dests) == 0 {
		return false
	}
	f.Set(pos, 0)
	f.distribute(v, dests)
	return true
}

// extractOneUnit removes one submarine's worth of mass from the unsettled
// cells in candidates, each giving up value/(n-k) where k is the number of
// settled-one cells on the board. It returns the amount removed, which is 0
// when every remaining submarine is already pinned.
func (f *Field) extractOneUnit(candidates []Position, n int) float64 {
	k := f.SettledOneCount()
	if k >= n {
		return 0
	}
	ratio := 1 / float64(n-k)
	total := 0.0
	for _, c := range candidates {
		v := f.At(c)
		if isSettled(v) {
			continue
		}
		take := v * ratio
		f.Set(c, v-take)
		total += take
	}
	return total
}
