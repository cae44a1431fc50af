package submarine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestBuiltinLayouts_Valid(t *testing.T) {
	rules := DefaultRules()
	for _, l := range BuiltinLayouts(rules.MaxHP) {
		if err := ValidateLayout(l, rules); err != nil {
			t.Errorf("builtin layout %s: %v", l.Name, err)
		}
		sum := 0
		for r := range l.Cells {
			for _, hp := range l.Cells[r] {
				if hp != 0 && hp != rules.MaxHP {
					t.Errorf("layout %s has cell HP %d", l.Name, hp)
				}
				sum += hp
			}
		}
		if sum != rules.MaxHP*rules.SubmarineCount {
			t.Errorf("layout %s HP total = %d, want %d", l.Name, sum, rules.MaxHP*rules.SubmarineCount)
		}
	}
}

func TestValidateLayout_Rejects(t *testing.T) {
	rules := DefaultRules()
	base := BuiltinLayouts(rules.MaxHP)[0]

	wrongHP := base
	wrongHP.Cells[0][0] = 2
	missing := base
	missing.Cells[1][1] = 0

	tests := []struct {
		name   string
		layout Layout
	}{
		{"partial HP", wrongHP},
		{"three submarines", missing},
	}
	for _, tt := range tests {
		err := ValidateLayout(tt.layout, rules)
		var le *LayoutError
		if !errors.As(err, &le) {
			t.Errorf("%s: error = %v, want *LayoutError", tt.name, err)
		}
	}
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("corners", []string{"X...X", ".....", ".....", ".....", "X...X"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if l.Cells[0][0] != 3 || l.Cells[4][4] != 3 || l.Cells[2][2] != 0 {
		t.Errorf("unexpected cells %v", l.Cells)
	}
	if err := ValidateLayout(l, DefaultRules()); err != nil {
		t.Errorf("corners layout: %v", err)
	}

	bad := [][]string{
		{"X...X"},
		{"X...X", ".....", ".....", ".....", "X..X"},
		{"X...X", ".....", "..?..", ".....", "X...X"},
	}
	for _, rows := range bad {
		if _, err := ParseLayout("bad", rows, 3); err == nil {
			t.Errorf("ParseLayout(%v) should fail", rows)
		}
	}
}

func TestInitializeMyPlacement(t *testing.T) {
	s := NewBattleState(DefaultRules())
	layouts := BuiltinLayouts(DefaultMaxHP)
	chosen, err := InitializeMyPlacement(s, layouts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if s.MyGrid != chosen.Cells {
		t.Error("placement should be written into MyGrid")
	}
	if got := len(s.MySubmarinePositions()); got != DefaultSubmarineCount {
		t.Errorf("submarines placed = %d, want %d", got, DefaultSubmarineCount)
	}
}

func TestInitializeMyPlacement_Errors(t *testing.T) {
	s := NewBattleState(DefaultRules())
	if _, err := InitializeMyPlacement(s, nil, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoLayouts) {
		t.Errorf("error = %v, want ErrNoLayouts", err)
	}

	s = NewBattleState(Rules{SubmarineCount: 3, MaxHP: 3})
	if _, err := InitializeMyPlacement(s, BuiltinLayouts(3), rand.New(rand.NewSource(1))); err == nil {
		t.Error("4-submarine layouts should be rejected for a 3-submarine game")
	}
}

func TestCandidateLayouts(t *testing.T) {
	got, err := CandidateLayouts(DefaultRules(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("candidates = %d, want 2", len(got))
	}

	three := Rules{SubmarineCount: 3, MaxHP: 2}
	if _, err := CandidateLayouts(three, nil); !errors.Is(err, ErrNoLayouts) {
		t.Errorf("error = %v, want ErrNoLayouts", err)
	}
	extra, _ := ParseLayout("trio", []string{"X....", ".....", "..X..", ".....", "....X"}, 2)
	got, err = CandidateLayouts(three, []Layout{extra})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "trio" {
		t.Errorf("candidates = %v, want only trio", got)
	}
}
