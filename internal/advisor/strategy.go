package advisor

import (
	"github.com/rs/zerolog/log"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// Strategy suggests the next own action for a battle. Implementations read
// the state but never modify it.
type Strategy interface {
	Name() string
	SuggestMyOp(s *submarine.BattleState) submarine.Action
}

// StrategyNames lists the names accepted by StrategyForName.
var StrategyNames = []string{"heuristic", "random"}

// StrategyForName returns the strategy registered under name. Unknown names
// fall back to the heuristic strategy.
func StrategyForName(name string, rng Rand) Strategy {
	switch name {
	case "random":
		return &RandomStrategy{rng: rng}
	case "heuristic", "":
		return NewHeuristicStrategy(rng)
	default:
		log.Warn().Str("strategy", name).Msg("Unknown strategy, using heuristic")
		return NewHeuristicStrategy(rng)
	}
}

// --- RandomStrategy ---

// RandomStrategy plays a uniformly random legal action. It serves as a
// baseline opponent in the arena.
type RandomStrategy struct {
	rng Rand
}

// NewRandomStrategy returns a RandomStrategy drawing from rng.
func NewRandomStrategy(rng Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (*RandomStrategy) Name() string { return "random" }

// SuggestMyOp attacks a random attackable cell or, with equal odds, makes a
// random legal move. It returns nil when the own fleet is gone.
func (r *RandomStrategy) SuggestMyOp(s *submarine.BattleState) submarine.Action {
	attackable := s.AttackableCells()
	moves := legalMoves(s)
	if len(attackable) > 0 && (len(moves) == 0 || r.rng.Float64() < 0.5) {
		return submarine.Attack(pick(r.rng, attackable))
	}
	if len(moves) > 0 {
		return pick(r.rng, moves)
	}
	return nil
}

// legalMoves enumerates every legal own move in row-major source order.
func legalMoves(s *submarine.BattleState) []submarine.Action {
	var out []submarine.Action
	for _, from := range s.MySubmarinePositions() {
		for _, to := range s.MovableCells(from) {
			out = append(out, moveTo(from, to))
		}
	}
	return out
}

func moveTo(from, to submarine.Position) submarine.MoveAction {
	return submarine.Move(from, to.Row-from.Row, to.Col-from.Col)
}
