package submarine

import (
	"errors"
	"fmt"
)

// Contract violations returned by the state mutators. Callers are expected to
// validate inputs first, so any of these indicates a programming error.
var (
	ErrNoPendingAttack     = errors.New("no unresolved attack to respond to")
	ErrEmptySource         = errors.New("no submarine at move source")
	ErrOccupiedDestination = errors.New("move destination is occupied")
	ErrInvalidMove         = errors.New("move must shift 1 or 2 cells in one cardinal direction")
	ErrOutOfArea           = errors.New("position is outside the board")
	ErrInvalidResponse     = errors.New("response must be Hit, Dead, Near or Nothing")
)

// ContractError describes which operation rejected its input.
type ContractError struct {
	Op  string
	Err error
	At  *Position
}

func (e *ContractError) Error() string {
	if e.At != nil {
		return fmt.Sprintf("submarine: %s at %s: %v", e.Op, e.At.Code(), e.Err)
	}
	return fmt.Sprintf("submarine: %s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func contractErr(op string, err error, at *Position) error {
	return &ContractError{Op: op, Err: err, At: at}
}
