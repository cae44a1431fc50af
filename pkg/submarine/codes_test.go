package submarine

import (
	"testing"
)

func TestPosition_Code(t *testing.T) {
	tests := []struct {
		p    Position
		want string
	}{
		{Pos(0, 0), "A1"},
		{Pos(4, 4), "E5"},
		{Pos(1, 3), "B4"},
	}
	for _, tt := range tests {
		if got := tt.p.Code(); got != tt.want {
			t.Errorf("%v.Code() = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"A1", Pos(0, 0), false},
		{"e5", Pos(4, 4), false},
		{" c3 ", Pos(2, 2), false},
		{"F1", Position{}, true},
		{"A6", Position{}, true},
		{"A", Position{}, true},
		{"A10", Position{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		in      string
		want    Response
		wantErr bool
	}{
		{"hit", Hit, false},
		{"H", Hit, false},
		{"de", Dead, false},
		{"n", Near, false},
		{"x", Nothing, false},
		{"X", Nothing, false},
		{"", Unresolved, true},
		{"miss", Unresolved, true},
	}
	for _, tt := range tests {
		got, err := ParseResponse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResponse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseResponse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		dy, dx  int
		wantErr bool
	}{
		{"L 1", 0, -1, false},
		{"r 2", 0, 2, false},
		{"U 2", -2, 0, false},
		{"d 1", 1, 0, false},
		{"L3", 0, 0, true},
		{"L 3", 0, 0, true},
		{"X 1", 0, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if got.DY != tt.dy || got.DX != tt.dx || got.From != nil {
			t.Errorf("ParseMove(%q) = %+v, want dy=%d dx=%d", tt.in, got, tt.dy, tt.dx)
		}
		if !got.Valid() {
			t.Errorf("ParseMove(%q) produced an invalid move", tt.in)
		}
	}
}

func TestAction_String(t *testing.T) {
	if got := Attack(Pos(2, 2)).String(); got != "Attack(to: C3)" {
		t.Errorf("attack string = %s", got)
	}
	if got := Move(Pos(1, 1), 0, 2).String(); got != "Move(from: B2, dir: Right(East), dist: 2)" {
		t.Errorf("move string = %s", got)
	}
	if got := OpponentMove(-1, 0).String(); got != "Move(from: None, dir: Up(North), dist: 1)" {
		t.Errorf("opponent move string = %s", got)
	}
}

func TestMoveAction_Valid(t *testing.T) {
	tests := []struct {
		dy, dx int
		want   bool
	}{
		{1, 0, true},
		{0, -2, true},
		{0, 0, false},
		{1, 1, false},
		{3, 0, false},
		{0, -3, false},
	}
	for _, tt := range tests {
		if got := OpponentMove(tt.dy, tt.dx).Valid(); got != tt.want {
			t.Errorf("Valid(%d,%d) = %v, want %v", tt.dy, tt.dx, got, tt.want)
		}
	}
}
