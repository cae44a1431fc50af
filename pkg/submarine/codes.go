package submarine

import (
	"fmt"
	"strings"
)

// Code returns the display code of p: row letter A-E followed by column
// digit 1-5, e.g. (0,0) -> "A1".
func (p Position) Code() string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Row), p.Col+1)
}

func (p Position) String() string {
	return p.Code()
}

// ParsePosition parses a cell code such as "B3" or "e5". Case is ignored.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("cell code %q: want 2 characters", s)
	}
	row := int(s[0]) - 'a'
	col := int(s[1]) - '1'
	if row < 0 || row >= Rows {
		return Position{}, fmt.Errorf("cell code %q: row must be one of ABCDE", s)
	}
	if col < 0 || col >= Cols {
		return Position{}, fmt.Errorf("cell code %q: column must be one of 12345", s)
	}
	return Pos(row, col), nil
}

// ParseResponse accepts any prefix of "hit", "dead" or "near", or "x" for
// Nothing.
func ParseResponse(s string) (Response, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Unresolved, fmt.Errorf("empty response")
	case s == "x":
		return Nothing, nil
	case strings.HasPrefix("hit", s):
		return Hit, nil
	case strings.HasPrefix("dead", s):
		return Dead, nil
	case strings.HasPrefix("near", s):
		return Near, nil
	}
	return Unresolved, fmt.Errorf("response %q: want hit, dead, near or x", s)
}

// ParseMove parses an opponent move of the form "<U|D|L|R> <1|2>".
func ParseMove(s string) (MoveAction, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return MoveAction{}, fmt.Errorf("move %q: want direction and distance separated by a space", s)
	}
	var dist int
	switch fields[1] {
	case "1":
		dist = 1
	case "2":
		dist = 2
	default:
		return MoveAction{}, fmt.Errorf("move %q: invalid distance %s", s, fields[1])
	}
	switch strings.ToUpper(fields[0]) {
	case "U":
		return OpponentMove(-dist, 0), nil
	case "D":
		return OpponentMove(dist, 0), nil
	case "L":
		return OpponentMove(0, -dist), nil
	case "R":
		return OpponentMove(0, dist), nil
	}
	return MoveAction{}, fmt.Errorf("move %q: direction must be one of U/D/L/R", s)
}
