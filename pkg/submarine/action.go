package submarine

import "fmt"

// Response is the outcome reported for an attack.
type Response int

const (
	// Unresolved marks an attack whose outcome has not been reported yet.
	Unresolved Response = iota
	Hit
	Dead
	Near
	Nothing
)

func (r Response) String() string {
	switch r {
	case Hit:
		return "Hit"
	case Dead:
		return "Dead"
	case Near:
		return "Near"
	case Nothing:
		return "Nothing"
	default:
		return "Unresolved"
	}
}

// Action is either an *AttackAction or a MoveAction.
type Action interface {
	fmt.Stringer
	isAction()
}

// AttackAction targets a single cell. Resp is filled in once the outcome is
// known.
type AttackAction struct {
	Target Position
	Resp   Response
}

// Attack returns a new unresolved attack on target.
func Attack(target Position) *AttackAction {
	return &AttackAction{Target: target}
}

func (*AttackAction) isAction() {}

// Resolved reports whether an outcome has been recorded.
func (a *AttackAction) Resolved() bool {
	return a.Resp != Unresolved
}

func (a *AttackAction) String() string {
	return fmt.Sprintf("Attack(to: %s)", a.Target.Code())
}

// MoveAction shifts a submarine one or two cells in a cardinal direction.
// From is nil when the mover is not observable (opponent moves).
type MoveAction struct {
	From *Position
	DY   int
	DX   int
}

// Move returns a move of the submarine at from by (dy, dx).
func Move(from Position, dy, dx int) MoveAction {
	return MoveAction{From: &from, DY: dy, DX: dx}
}

// OpponentMove returns a move whose source is unknown.
func OpponentMove(dy, dx int) MoveAction {
	return MoveAction{DY: dy, DX: dx}
}

func (MoveAction) isAction() {}

// Valid reports whether exactly one delta is nonzero with magnitude 1 or 2.
func (m MoveAction) Valid() bool {
	if (m.DY == 0) == (m.DX == 0) {
		return false
	}
	d := m.Distance()
	return d == 1 || d == 2
}

// Distance returns the number of cells moved.
func (m MoveAction) Distance() int {
	return absInt(m.DY) + absInt(m.DX)
}

// Direction names the compass direction of the move.
func (m MoveAction) Direction() string {
	switch {
	case m.DY > 0:
		return "Down(South)"
	case m.DY < 0:
		return "Up(North)"
	case m.DX > 0:
		return "Right(East)"
	case m.DX < 0:
		return "Left(West)"
	}
	return "-unknown-"
}

// To returns the destination cell. It panics on moves without a source.
func (m MoveAction) To() Position {
	return m.From.Add(m.DY, m.DX)
}

func (m MoveAction) String() string {
	from := "None"
	if m.From != nil {
		from = m.From.Code()
	}
	return fmt.Sprintf("Move(from: %s, dir: %s, dist: %d)", from, m.Direction(), m.Distance())
}

// AsMove returns a as a MoveAction when it is one.
func AsMove(a Action) (MoveAction, bool) {
	m, ok := a.(MoveAction)
	return m, ok
}

// AsAttack returns a as an *AttackAction when it is one.
func AsAttack(a Action) (*AttackAction, bool) {
	at, ok := a.(*AttackAction)
	return at, ok
}
