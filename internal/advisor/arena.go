package advisor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/freeeve/subhunt/internal/logger"
	"github.com/freeeve/subhunt/pkg/submarine"
)

// DefaultMaxTurns bounds an arena game that neither side can finish.
const DefaultMaxTurns = 400

// ErrNoAction is returned when a strategy has nothing legal to suggest.
var ErrNoAction = errors.New("strategy suggested no action")

// ArenaConfig configures a single self-play game.
type ArenaConfig struct {
	GameName  string
	StrategyA string
	StrategyB string
	Rules     submarine.Rules
	Layouts   []submarine.Layout // candidate placements, built-ins when empty
	MaxTurns  int                // 0 means DefaultMaxTurns
	Seed      int64              // 0 means time-based
}

// ArenaResult captures the outcome of a completed arena game.
type ArenaResult struct {
	GameID    string `json:"gameId"`
	GameName  string `json:"gameName,omitempty"`
	StrategyA string `json:"strategyA"`
	StrategyB string `json:"strategyB"`
	Winner    string `json:"winner"` // "a", "b" or "" for a draw
	FirstSide string `json:"firstSide"`
	Turns     int    `json:"turns"`
	AliveA    int    `json:"aliveA"`
	AliveB    int    `json:"aliveB"`
	LayoutA   string `json:"layoutA"`
	LayoutB   string `json:"layoutB"`
}

// arenaSide is one player: its private state and its strategy.
type arenaSide struct {
	label    string
	state    *submarine.BattleState
	strategy Strategy
}

// RunGame plays one game between two strategies. Each side only ever sees
// what a human player would: its own fleet, the responses to its attacks and
// the opponent's announced actions.
func RunGame(ctx context.Context, cfg ArenaConfig) (*ArenaResult, error) {
	if cfg.Rules.SubmarineCount == 0 {
		cfg.Rules = submarine.DefaultRules()
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	layouts, err := submarine.CandidateLayouts(cfg.Rules, cfg.Layouts)
	if err != nil {
		return nil, fmt.Errorf("layouts: %w", err)
	}

	gameID := logger.NewGameID()
	ctx = logger.WithGameID(ctx, gameID)
	log := logger.ForGame(ctx)

	rng := NewRand(cfg.Seed)
	sides := [2]*arenaSide{
		{label: "a", state: submarine.NewBattleState(cfg.Rules)},
		{label: "b", state: submarine.NewBattleState(cfg.Rules)},
	}
	sides[0].strategy = StrategyForName(cfg.StrategyA, rand.New(rand.NewSource(rng.Int63())))
	sides[1].strategy = StrategyForName(cfg.StrategyB, rand.New(rand.NewSource(rng.Int63())))

	result := &ArenaResult{
		GameID:    gameID,
		GameName:  cfg.GameName,
		StrategyA: sides[0].strategy.Name(),
		StrategyB: sides[1].strategy.Name(),
	}
	for i, side := range sides {
		chosen, err := submarine.InitializeMyPlacement(side.state, layouts, rng)
		if err != nil {
			return nil, fmt.Errorf("place side %s: %w", side.label, err)
		}
		if i == 0 {
			result.LayoutA = chosen.Name
		} else {
			result.LayoutB = chosen.Name
		}
	}

	turn := rng.Intn(2)
	result.FirstSide = sides[turn].label
	log.Info().
		Str("a", result.StrategyA).
		Str("b", result.StrategyB).
		Str("first", result.FirstSide).
		Msg("Arena game started")

	for result.Turns < cfg.MaxTurns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, other := sides[turn], sides[1-turn]
		if err := playTurn(cur, other); err != nil {
			return nil, fmt.Errorf("turn %d side %s: %w", result.Turns+1, cur.label, err)
		}
		result.Turns++
		if cur.state.HasGameFinished() {
			break
		}
		turn = 1 - turn
	}

	result.AliveA = sides[0].state.MyAliveCount
	result.AliveB = sides[1].state.MyAliveCount
	switch {
	case result.AliveB == 0:
		result.Winner = "a"
	case result.AliveA == 0:
		result.Winner = "b"
	}
	if result.Winner == "" {
		log.Info().Int("turns", result.Turns).Msg("Arena game ended as draw (turn limit)")
	} else {
		log.Info().Str("winner", result.Winner).Int("turns", result.Turns).Msg("Arena game won")
	}
	return result, nil
}

// playTurn lets cur act and delivers the action to other the way it would
// be announced across the table: attacks by target only, moves without their
// source cell.
func playTurn(cur, other *arenaSide) error {
	op := cur.strategy.SuggestMyOp(cur.state)
	if op == nil {
		return ErrNoAction
	}
	if err := submarine.ApplyMyOp(cur.state, op); err != nil {
		return err
	}
	switch a := op.(type) {
	case *submarine.AttackAction:
		resp, err := submarine.ApplyOpponentOp(other.state, submarine.Attack(a.Target))
		if err != nil {
			return err
		}
		if err := submarine.ApplyAttackResponse(cur.state, resp); err != nil {
			return err
		}
	case submarine.MoveAction:
		if _, err := submarine.ApplyOpponentOp(other.state, submarine.OpponentMove(a.DY, a.DX)); err != nil {
			return err
		}
	}
	submarine.UpdateTrackingCell(cur.state)
	return nil
}
