package submarine

import (
	"errors"
	"fmt"
	"strings"
)

// Layout is a candidate initial placement of the own fleet.
type Layout struct {
	Name  string
	Cells [Rows][Cols]int
}

// LayoutError explains why a layout was rejected.
type LayoutError struct {
	Name   string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout %q: %s", e.Name, e.Reason)
}

// ErrNoLayouts is returned when no candidate layout is available.
var ErrNoLayouts = errors.New("no placement layouts to choose from")

// BuiltinLayouts returns the stock placements for the default 4-submarine
// fleet, with every submarine at maxHP.
func BuiltinLayouts(maxHP int) []Layout {
	rows := map[string][]string{
		"lattice": {
			".....",
			".X.X.",
			".....",
			".X.X.",
			".....",
		},
		"spread": {
			"X....",
			"...X.",
			".....",
			".X...",
			"....X",
		},
	}
	var layouts []Layout
	for _, name := range []string{"lattice", "spread"} {
		l, err := ParseLayout(name, rows[name], maxHP)
		if err != nil {
			panic(err)
		}
		layouts = append(layouts, l)
	}
	return layouts
}

// ParseLayout builds a layout from Rows strings of Cols characters, where
// 'X' is a submarine at maxHP and '.' is empty.
func ParseLayout(name string, rows []string, maxHP int) (Layout, error) {
	l := Layout{Name: name}
	if len(rows) != Rows {
		return l, &LayoutError{name, fmt.Sprintf("want %d rows, got %d", Rows, len(rows))}
	}
	for r, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != Cols {
			return l, &LayoutError{name, fmt.Sprintf("row %d: want %d cells, got %d", r+1, Cols, len(line))}
		}
		for c, ch := range line {
			switch ch {
			case 'X', 'x':
				l.Cells[r][c] = maxHP
			case '.':
			default:
				return l, &LayoutError{name, fmt.Sprintf("row %d: unexpected %q", r+1, ch)}
			}
		}
	}
	return l, nil
}

// ValidateLayout checks that every cell is 0 or MaxHP and that the HP total
// is MaxHP times SubmarineCount.
func ValidateLayout(l Layout, rules Rules) error {
	sum := 0
	for r := range l.Cells {
		for c, hp := range l.Cells[r] {
			if hp != 0 && hp != rules.MaxHP {
				return &LayoutError{l.Name, fmt.Sprintf("cell %s has HP %d, want 0 or %d", Pos(r, c).Code(), hp, rules.MaxHP)}
			}
			sum += hp
		}
	}
	if want := rules.MaxHP * rules.SubmarineCount; sum != want {
		return &LayoutError{l.Name, fmt.Sprintf("HP total %d, want %d", sum, want)}
	}
	return nil
}

// IntSource is the random source used to pick a layout.
type IntSource interface {
	Intn(n int) int
}

// InitializeMyPlacement validates every candidate, picks one with rng and
// writes it into s.MyGrid.
func InitializeMyPlacement(s *BattleState, layouts []Layout, rng IntSource) (Layout, error) {
	if len(layouts) == 0 {
		return Layout{}, ErrNoLayouts
	}
	for _, l := range layouts {
		if err := ValidateLayout(l, s.Rules); err != nil {
			return Layout{}, err
		}
	}
	chosen := layouts[rng.Intn(len(layouts))]
	s.MyGrid = chosen.Cells
	return chosen, nil
}

// CandidateLayouts returns the built-in layouts that fit rules followed by
// extra. Unlike the built-ins, every extra layout must be valid.
func CandidateLayouts(rules Rules, extra []Layout) ([]Layout, error) {
	var out []Layout
	for _, l := range BuiltinLayouts(rules.MaxHP) {
		if ValidateLayout(l, rules) == nil {
			out = append(out, l)
		}
	}
	for _, l := range extra {
		if err := ValidateLayout(l, rules); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, ErrNoLayouts
	}
	return out, nil
}
