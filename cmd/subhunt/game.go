package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freeeve/subhunt/internal/advisor"
	"github.com/freeeve/subhunt/internal/logger"
	"github.com/freeeve/subhunt/internal/terminal"
	"github.com/freeeve/subhunt/pkg/submarine"
)

// game drives one interactive battle: it asks the strategy for our moves and
// the console for everything the opponent says.
type game struct {
	con           *terminal.Console
	state         *submarine.BattleState
	strategy      advisor.Strategy
	layouts       []submarine.Layout
	rng           submarine.IntSource
	showPositions bool
	pause         bool
	log           zerolog.Logger
}

// play runs the game to the end and reports whether we won.
func (g *game) play(ctx context.Context) (bool, error) {
	g.log = logger.ForGame(ctx)

	g.con.Title()
	g.con.Newline()
	first, err := g.con.AskYesNo("Does our team move first? [y/n]: ")
	if err != nil {
		return false, err
	}

	layout, err := submarine.InitializeMyPlacement(g.state, g.layouts, g.rng)
	if err != nil {
		return false, fmt.Errorf("placement: %w", err)
	}
	g.log.Info().Str("layout", layout.Name).Bool("first", first).Str("strategy", g.strategy.Name()).Msg("Game started")
	g.con.PrintMyGrid(g.state)

	myTurn := first
	for !g.state.HasGameFinished() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if myTurn {
			g.con.Println("\n---------------------- My turn ----------------------")
			err = g.myTurn()
		} else {
			g.con.Println("\n------------------- Opponent turn -------------------")
			err = g.opponentTurn()
		}
		if err != nil {
			return false, err
		}
		if g.pause {
			if err := g.con.WaitEnter(); err != nil {
				return false, err
			}
		}
		myTurn = !myTurn
		g.con.PrintBattle(g.state, g.showPositions)
		g.log.Debug().Floats64("field", g.state.Field[:]).Msg("Probability field")
	}

	won := g.state.MyAliveCount > 0
	g.log.Info().Bool("won", won).Int("turns", len(g.state.MyHistory)+len(g.state.OpponentHistory)).Msg("Game over")
	return won, nil
}

func (g *game) myTurn() error {
	op := g.strategy.SuggestMyOp(g.state)
	if op == nil {
		return advisor.ErrNoAction
	}
	g.con.Success("Our action: " + g.con.Highlight(op))
	if err := submarine.ApplyMyOp(g.state, op); err != nil {
		return fmt.Errorf("apply own action: %w", err)
	}

	resp := submarine.Unresolved
	if _, ok := submarine.AsAttack(op); ok {
		var err error
		resp, err = g.con.ReadResponse()
		if err != nil {
			return err
		}
		g.con.Success("Received: " + g.con.Highlight(resp))
		if err := submarine.ApplyAttackResponse(g.state, resp); err != nil {
			return fmt.Errorf("apply response: %w", err)
		}
	}
	submarine.UpdateTrackingCell(g.state)

	g.logTurn("My turn", op, resp)
	return nil
}

func (g *game) opponentTurn() error {
	op, err := g.con.ReadOpponentOp()
	if err != nil {
		return err
	}
	g.con.Success("Received: " + g.con.Highlight(op))
	resp, err := submarine.ApplyOpponentOp(g.state, op)
	if err != nil {
		return fmt.Errorf("apply opponent action: %w", err)
	}
	if at, ok := submarine.AsAttack(op); ok {
		g.con.Success("The opponent attacked. Tell them: " + g.con.Highlight(resp))
		switch resp {
		case submarine.Hit:
			g.con.Warn(fmt.Sprintf("Our submarine at %s was hit.", at.Target.Code()))
		case submarine.Dead:
			g.con.Warn(fmt.Sprintf("Our submarine at %s was sunk.", at.Target.Code()))
		}
	}

	g.logTurn("Opponent turn", op, resp)
	return nil
}

func (g *game) logTurn(msg string, op submarine.Action, resp submarine.Response) {
	tracking := "None"
	if g.state.TrackingCell != nil {
		tracking = g.state.TrackingCell.Code()
	}
	ev := g.log.Info().Stringer("action", op)
	if resp != submarine.Unresolved {
		ev = ev.Stringer("response", resp)
	}
	ev.Int("myAlive", g.state.MyAliveCount).
		Int("opponentAlive", g.state.OpponentAliveCount).
		Str("tracking", tracking).
		Msg(msg)
}
