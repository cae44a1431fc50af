package submarine

// Default game parameters.
const (
	DefaultSubmarineCount = 4
	DefaultMaxHP          = 3
)

// Rules holds the per-game parameters. The board size is fixed.
type Rules struct {
	SubmarineCount int
	MaxHP          int
}

// DefaultRules returns 4 submarines with 3 HP each.
func DefaultRules() Rules {
	return Rules{SubmarineCount: DefaultSubmarineCount, MaxHP: DefaultMaxHP}
}

// BattleState is everything one side knows about a game in progress: its own
// fleet, its belief about the enemy fleet, and both action histories.
type BattleState struct {
	Rules              Rules
	MyAliveCount       int
	OpponentAliveCount int
	MyGrid             [Rows][Cols]int // remaining HP per cell, 0 = empty
	Field              Field
	MyHistory          []Action
	OpponentHistory    []Action
	TrackingCell       *Position // cell known to hold a live enemy submarine
}

// NewBattleState returns the state at the start of a game, before own
// placement.
func NewBattleState(rules Rules) *BattleState {
	return &BattleState{
		Rules:              rules,
		MyAliveCount:       rules.SubmarineCount,
		OpponentAliveCount: rules.SubmarineCount,
		Field:              NewField(rules.SubmarineCount),
	}
}

// HasGameFinished reports whether either fleet has been wiped out.
func (s *BattleState) HasGameFinished() bool {
	return s.MyAliveCount <= 0 || s.OpponentAliveCount <= 0
}

// HPAt returns the own submarine HP at p, or 0.
func (s *BattleState) HPAt(p Position) int {
	return s.MyGrid[p.Row][p.Col]
}

// MySubmarinePositions returns the cells holding live own submarines in
// row-major order.
func (s *BattleState) MySubmarinePositions() []Position {
	var fleet []Position
	for _, p := range AllCells() {
		if s.HPAt(p) > 0 {
			fleet = append(fleet, p)
		}
	}
	return fleet
}

// AttackableCells returns the cells the own fleet can attack.
func (s *BattleState) AttackableCells() []Position {
	return AttackRange(s.MySubmarinePositions())
}

// MovableCells returns the cells the own submarine at from can move to.
// It returns nil when from holds no live submarine.
func (s *BattleState) MovableCells(from Position) []Position {
	if !IsWithinArea(from) || s.HPAt(from) <= 0 {
		return nil
	}
	return MoveRange(from, s.MySubmarinePositions())
}

// LastMyAction returns the most recent own action, or nil.
func (s *BattleState) LastMyAction() Action {
	if len(s.MyHistory) == 0 {
		return nil
	}
	return s.MyHistory[len(s.MyHistory)-1]
}

// LastOpponentAction returns the most recent opponent action, or nil.
func (s *BattleState) LastOpponentAction() Action {
	if len(s.OpponentHistory) == 0 {
		return nil
	}
	return s.OpponentHistory[len(s.OpponentHistory)-1]
}

// Clone returns a deep copy of the state. Recorded attack outcomes in the
// clone's histories are independent of the original.
func (s *BattleState) Clone() *BattleState {
	c := *s
	c.MyHistory = cloneHistory(s.MyHistory)
	c.OpponentHistory = cloneHistory(s.OpponentHistory)
	if s.TrackingCell != nil {
		tc := *s.TrackingCell
		c.TrackingCell = &tc
	}
	return &c
}

func cloneHistory(h []Action) []Action {
	if h == nil {
		return nil
	}
	out := make([]Action, len(h))
	for i, a := range h {
		switch v := a.(type) {
		case *AttackAction:
			cp := *v
			out[i] = &cp
		case MoveAction:
			if v.From != nil {
				from := *v.From
				v.From = &from
			}
			out[i] = v
		}
	}
	return out
}
