package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// RenderField draws the probability of an enemy submarine in every cell.
// The most likely cell and the tracking cell are highlighted.
func (c *Console) RenderField(s *submarine.BattleState) string {
	best, _ := s.Field.Max()
	grid := s.Field.Grid()

	var b strings.Builder
	b.WriteString(" ")
	for col := 0; col < submarine.Cols; col++ {
		b.WriteString(c.st.header.Render(fmt.Sprintf("%7d", col+1)))
	}
	b.WriteByte('\n')
	for row := 0; row < submarine.Rows; row++ {
		b.WriteString(c.st.header.Render(string(rune('A' + row))))
		for col := 0; col < submarine.Cols; col++ {
			p := submarine.Pos(row, col)
			cell := fmt.Sprintf("%7.3f", grid[row][col])
			switch {
			case s.TrackingCell != nil && *s.TrackingCell == p:
				cell = c.st.tracked.Render(cell)
			case p == best:
				cell = c.st.best.Render(cell)
			case submarine.IsSettledZero(grid[row][col]):
				cell = c.st.dim.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderMyGrid draws the own fleet with remaining HP per cell.
func (c *Console) RenderMyGrid(s *submarine.BattleState) string {
	var b strings.Builder
	b.WriteString(" ")
	for col := 0; col < submarine.Cols; col++ {
		b.WriteString(c.st.header.Render(fmt.Sprintf("%3d", col+1)))
	}
	b.WriteByte('\n')
	for row := 0; row < submarine.Rows; row++ {
		b.WriteString(c.st.header.Render(string(rune('A' + row))))
		for col := 0; col < submarine.Cols; col++ {
			if hp := s.MyGrid[row][col]; hp > 0 {
				b.WriteString(c.st.own.Render(fmt.Sprintf("%3d", hp)))
			} else {
				b.WriteString(fmt.Sprintf("%3s", "."))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBattle is the full status block shown after every turn.
func (c *Console) RenderBattle(s *submarine.BattleState, showPositions bool) string {
	field := c.RenderField(s)
	if showPositions {
		field = lipgloss.JoinHorizontal(lipgloss.Top, field, "    ", c.RenderMyGrid(s))
	}

	var b strings.Builder
	b.WriteString("--------- Battle Data ---------\n")
	b.WriteString(field)
	b.WriteByte('\n')
	if showPositions {
		codes := make([]string, 0, s.MyAliveCount)
		for _, p := range s.MySubmarinePositions() {
			codes = append(codes, p.Code())
		}
		b.WriteString(c.st.info.Render("My submarines: ") + strings.Join(codes, " ") + "\n")
	}
	tracking := "None"
	if s.TrackingCell != nil {
		tracking = s.TrackingCell.Code()
	}
	b.WriteString(c.st.info.Render("Known enemy position: ") + tracking + "\n")
	b.WriteString(c.st.info.Render("My submarines alive: ") + fmt.Sprint(s.MyAliveCount) + "\n")
	b.WriteString(c.st.info.Render("Opponent submarines alive: ") + fmt.Sprint(s.OpponentAliveCount) + "\n")
	return b.String()
}

// PrintMyGrid writes RenderMyGrid to the console.
func (c *Console) PrintMyGrid(s *submarine.BattleState) {
	fmt.Fprint(c.out, c.RenderMyGrid(s))
}

// PrintBattle writes RenderBattle to the console.
func (c *Console) PrintBattle(s *submarine.BattleState, showPositions bool) {
	c.Newline()
	fmt.Fprint(c.out, c.RenderBattle(s, showPositions))
}
