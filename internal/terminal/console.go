// Package terminal is the interactive front end: it prompts for the
// opponent's actions and our responses, and renders the battle state.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// Console reads answers from in and writes prompts and boards to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	st  styles
}

type styles struct {
	header  lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	value   lipgloss.Style
	best    lipgloss.Style
	tracked lipgloss.Style
	own     lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:  r.NewStyle().Foreground(lipgloss.Color("13")),
		info:    r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		fail:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		value:   r.NewStyle().Foreground(lipgloss.Color("10")),
		best:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		tracked: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Underline(true),
		own:     r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// New returns a console over in and out. Colors are enabled only when out
// is a terminal that supports them.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		st:  newStyles(lipgloss.NewRenderer(out)),
	}
}

const title = `
 ____        _                          _
/ ___| _   _| |__  _ __ ___   __ _ _ __(_)_ __   ___
\___ \| | | | '_ \| '_ ` + "`" + ` _ \ / _` + "`" + ` | '__| | '_ \ / _ \
 ___) | |_| | |_) | | | | | | (_| | |  | | | | |  __/
|____/ \__,_|_.__/|_| |_| |_|\__,_|_|  |_|_| |_|\___|

 _   _             _
| | | |_   _ _ __ | |_
| |_| | | | | '_ \| __|
|  _  | |_| | | | | |_
|_| |_|\__,_|_| |_|\__|
`

// Title prints the banner.
func (c *Console) Title() {
	fmt.Fprintln(c.out, c.st.header.Render(title))
}

// Newline prints an empty line.
func (c *Console) Newline() {
	fmt.Fprintln(c.out)
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Info(msg string)    { c.tagged(c.st.info, "[Info] ", msg) }
func (c *Console) Success(msg string) { c.tagged(c.st.success, "[Success] ", msg) }
func (c *Console) Warn(msg string)    { c.tagged(c.st.warn, "[Warn] ", msg) }
func (c *Console) Fail(msg string)    { c.tagged(c.st.fail, "[Fail] ", msg) }

func (c *Console) tagged(st lipgloss.Style, tag, msg string) {
	fmt.Fprintln(c.out, st.Render(tag)+msg)
}

// Highlight renders v in the accent color used for actions and responses.
func (c *Console) Highlight(v any) string {
	return c.st.value.Render(fmt.Sprint(v))
}

// readLine prompts and returns one trimmed input line. A final line without
// a newline is still returned; io.EOF is reported only once input is
// exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskYesNo repeats prompt until the answer is a prefix of yes or no.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "ye", "yes":
			c.Info("Your input: yes")
			return true, nil
		case "n", "no":
			c.Info("Your input: no")
			return false, nil
		}
		c.Fail("Cannot parse to yes/no.")
	}
}

// ReadResponse asks for the opponent's answer to our attack.
func (c *Console) ReadResponse() (submarine.Response, error) {
	for {
		s, err := c.readLine("We attacked. Enter the opponent's response [Dead/Hit/Near/X]: ")
		if err != nil {
			return submarine.Unresolved, err
		}
		resp, perr := submarine.ParseResponse(s)
		if perr == nil {
			return resp, nil
		}
		c.Fail("Invalid input.")
	}
}

// ReadCell asks for a cell code such as E2.
func (c *Console) ReadCell(prompt string) (submarine.Position, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return submarine.Position{}, err
		}
		p, perr := submarine.ParsePosition(s)
		if perr == nil {
			return p, nil
		}
		c.Fail(perr.Error() + ". Input again.")
	}
}

// ReadMove asks for the opponent's move direction and distance.
func (c *Console) ReadMove() (submarine.MoveAction, error) {
	for {
		s, err := c.readLine("Opponent move direction [U/D/L/R] and distance, space separated (ex: `L 1`): ")
		if err != nil {
			return submarine.MoveAction{}, err
		}
		m, perr := submarine.ParseMove(s)
		if perr == nil {
			return m, nil
		}
		c.Fail(perr.Error())
	}
}

// ReadOpponentOp asks what the opponent did and then for its details.
func (c *Console) ReadOpponentOp() (submarine.Action, error) {
	for {
		s, err := c.readLine("Enter the opponent's action [Attack/Move]: ")
		if err != nil {
			return nil, err
		}
		s = strings.ToLower(s)
		switch {
		case s != "" && strings.HasPrefix("attack", s):
			p, err := c.ReadCell("Cell the opponent attacked (ex: `E2`): ")
			if err != nil {
				return nil, err
			}
			return submarine.Attack(p), nil
		case s != "" && strings.HasPrefix("move", s):
			m, err := c.ReadMove()
			if err != nil {
				return nil, err
			}
			return m, nil
		}
		c.Fail("Invalid input")
	}
}

// WaitEnter blocks until the user presses Enter.
func (c *Console) WaitEnter() error {
	_, err := c.readLine("Press Enter to continue.")
	return err
}
