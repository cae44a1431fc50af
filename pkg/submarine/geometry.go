package submarine

// Board dimensions are fixed.
const (
	Rows      = 5
	Cols      = 5
	CellCount = Rows * Cols
)

// Position is a 0-indexed (row, col) cell on the board.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Index returns the dense row-major index (0..CellCount-1) of p.
// The result is meaningless when p is outside the board.
func (p Position) Index() int {
	return p.Row*Cols + p.Col
}

// PositionAt is the inverse of Index.
func PositionAt(idx int) Position {
	return Position{Row: idx / Cols, Col: idx % Cols}
}

// Add returns p shifted by (dy, dx). The result may be off the board.
func (p Position) Add(dy, dx int) Position {
	return Position{Row: p.Row + dy, Col: p.Col + dx}
}

// Manhattan returns |dr| + |dc| between p and q.
func (p Position) Manhattan(q Position) int {
	return absInt(p.Row-q.Row) + absInt(p.Col-q.Col)
}

// IsWithinArea reports whether p lies on the 5x5 board.
func IsWithinArea(p Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// IsInterior reports whether p is on the board and not on an edge.
func IsInterior(p Position) bool {
	return p.Row >= 1 && p.Row < Rows-1 && p.Col >= 1 && p.Col < Cols-1
}

// Around returns the in-bounds 8-neighbourhood of center, excluding center
// itself, in row-major order.
func Around(center Position) []Position {
	cells := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			p := center.Add(dy, dx)
			if IsWithinArea(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// IsAround reports whether p is one of center's 8 neighbours.
func IsAround(center, p Position) bool {
	if p == center {
		return false
	}
	return absInt(p.Row-center.Row) <= 1 && absInt(p.Col-center.Col) <= 1
}

// AllCells returns every board cell in row-major order.
func AllCells() []Position {
	cells := make([]Position, 0, CellCount)
	for i := 0; i < CellCount; i++ {
		cells = append(cells, PositionAt(i))
	}
	return cells
}

// rookSteps lists the (dy, dx) shifts a submarine may move by.
var rookSteps = [][2]int{
	{-2, 0}, {-1, 0}, {1, 0}, {2, 0},
	{0, -2}, {0, -1}, {0, 1}, {0, 2},
}

// AttackRange returns the cells attackable from the given fleet: the union
// of each submarine's neighbourhood minus the fleet's own cells.
func AttackRange(fleet []Position) []Position {
	var occupied, seen [CellCount]bool
	for _, p := range fleet {
		occupied[p.Index()] = true
	}
	for _, p := range fleet {
		for _, q := range Around(p) {
			if !occupied[q.Index()] {
				seen[q.Index()] = true
			}
		}
	}
	return collect(seen)
}

// MoveRange returns the cells the submarine at from can reach with a one
// or two cell cardinal move onto a cell not held by the fleet.
func MoveRange(from Position, fleet []Position) []Position {
	var occupied, seen [CellCount]bool
	for _, p := range fleet {
		occupied[p.Index()] = true
	}
	for _, s := range rookSteps {
		to := from.Add(s[0], s[1])
		if IsWithinArea(to) && !occupied[to.Index()] {
			seen[to.Index()] = true
		}
	}
	return collect(seen)
}

func collect(mask [CellCount]bool) []Position {
	var cells []Position
	for i, ok := range mask {
		if ok {
			cells = append(cells, PositionAt(i))
		}
	}
	return cells
}

// Contains reports whether p is in cells.
func Contains(cells []Position, p Position) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
