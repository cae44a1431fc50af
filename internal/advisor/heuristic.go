package advisor

import (
	"github.com/rs/zerolog/log"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// chaseFactor scales the opponent alive count into the probability a cell
// must exceed before it is worth chasing or attacking outright.
const chaseFactor = 0.1

// endgameFleet is the own fleet size at or below which the strategy starts
// moving at random half of the time.
const endgameFleet = 2

// HeuristicStrategy evaluates an ordered cascade of rules against the
// probability field and returns the action of the first rule that applies.
type HeuristicStrategy struct {
	rng   Rand
	rules []heuristicRule
}

type heuristicRule struct {
	name  string
	apply func(h *HeuristicStrategy, s *submarine.BattleState) submarine.Action
}

// NewHeuristicStrategy returns the default cascade drawing from rng.
func NewHeuristicStrategy(rng Rand) *HeuristicStrategy {
	return &HeuristicStrategy{
		rng: rng,
		rules: []heuristicRule{
			{"opening", (*HeuristicStrategy).opening},
			{"tracking", (*HeuristicStrategy).continueTracking},
			{"chase", (*HeuristicStrategy).chase},
			{"press", (*HeuristicStrategy).pressAdvantage},
			{"best-attack", (*HeuristicStrategy).bestAttack},
			{"retrace", (*HeuristicStrategy).retrace},
			{"endgame", (*HeuristicStrategy).endgame},
			{"fallback", (*HeuristicStrategy).fallback},
		},
	}
}

func (*HeuristicStrategy) Name() string { return "heuristic" }

// SuggestMyOp returns the suggested own action, or nil when the own fleet
// has nothing legal left to do.
func (h *HeuristicStrategy) SuggestMyOp(s *submarine.BattleState) submarine.Action {
	op, _ := h.suggest(s)
	return op
}

// suggest is SuggestMyOp that also reports which rule fired.
func (h *HeuristicStrategy) suggest(s *submarine.BattleState) (submarine.Action, string) {
	for _, r := range h.rules {
		if op := r.apply(h, s); op != nil {
			log.Debug().Str("rule", r.name).Stringer("action", op).Msg("Heuristic suggestion")
			return op, r.name
		}
	}
	if moves := legalMoves(s); len(moves) > 0 {
		log.Debug().Str("rule", "any-move").Stringer("action", moves[0]).Msg("Heuristic suggestion")
		return moves[0], "any-move"
	}
	return nil, ""
}

func threshold(s *submarine.BattleState) float64 {
	return float64(s.OpponentAliveCount) * chaseFactor
}

// opening attacks a random interior cell before either side has acted.
func (h *HeuristicStrategy) opening(s *submarine.BattleState) submarine.Action {
	if len(s.MyHistory) > 0 || len(s.OpponentHistory) > 0 {
		return nil
	}
	var interior []submarine.Position
	for _, p := range s.AttackableCells() {
		if submarine.IsInterior(p) {
			interior = append(interior, p)
		}
	}
	if len(interior) == 0 {
		return nil
	}
	return submarine.Attack(pick(h.rng, interior))
}

// continueTracking attacks the tracked cell or where the opponent's last
// move would have taken it.
func (h *HeuristicStrategy) continueTracking(s *submarine.BattleState) submarine.Action {
	if s.TrackingCell == nil {
		return nil
	}
	tc := *s.TrackingCell
	candidates := []submarine.Position{tc}
	if m, ok := submarine.AsMove(s.LastOpponentAction()); ok {
		if to := tc.Add(m.DY, m.DX); submarine.IsWithinArea(to) && to != tc {
			candidates = append(candidates, to)
		}
	}
	attackable := s.AttackableCells()
	var reachable []submarine.Position
	for _, c := range candidates {
		if submarine.Contains(attackable, c) {
			reachable = append(reachable, c)
		}
	}
	if len(reachable) == 0 {
		return nil
	}
	return submarine.Attack(pick(h.rng, reachable))
}

// chase moves toward the most likely enemy cell when it is out of reach.
func (h *HeuristicStrategy) chase(s *submarine.BattleState) submarine.Action {
	target, p := s.Field.Max()
	if p <= threshold(s) || submarine.Contains(s.AttackableCells(), target) {
		return nil
	}
	fleet := s.MySubmarinePositions()
	if len(fleet) == 0 {
		return nil
	}

	if s.HPAt(target) > 0 {
		var best submarine.Position
		bestSpread, found := -1, false
		for _, to := range s.MovableCells(target) {
			if to.Manhattan(target) != 1 {
				continue
			}
			spread := 0
			for _, other := range fleet {
				if other != target {
					spread += to.Manhattan(other)
				}
			}
			if spread > bestSpread {
				best, bestSpread, found = to, spread, true
			}
		}
		if !found {
			return nil
		}
		return moveTo(target, best)
	}

	closest := fleet[0]
	for _, sub := range fleet[1:] {
		if sub.Manhattan(target) < closest.Manhattan(target) {
			closest = sub
		}
	}
	var best submarine.Position
	bestDist, found := 0, false
	for _, to := range s.MovableCells(closest) {
		if to == target {
			continue
		}
		if d := to.Manhattan(target); !found || d < bestDist {
			best, bestDist, found = to, d, true
		}
	}
	if !found {
		return nil
	}
	return moveTo(closest, best)
}

// pressAdvantage fires back around the cell where the opponent just hit us.
func (h *HeuristicStrategy) pressAdvantage(s *submarine.BattleState) submarine.Action {
	at, ok := submarine.AsAttack(s.LastOpponentAction())
	if !ok || (at.Resp != submarine.Hit && at.Resp != submarine.Dead) {
		return nil
	}
	attackable := s.AttackableCells()
	var candidates []submarine.Position
	for _, c := range submarine.Around(at.Target) {
		if submarine.Contains(attackable, c) && s.Field.At(c) > 0 {
			candidates = append(candidates, c)
		}
	}
	best, _, ok := s.Field.MaxOf(candidates)
	if !ok {
		return nil
	}
	return submarine.Attack(best)
}

// bestAttack attacks the most likely reachable cell once it clears the
// threshold.
func (h *HeuristicStrategy) bestAttack(s *submarine.BattleState) submarine.Action {
	best, p, ok := s.Field.MaxOf(s.AttackableCells())
	if !ok || p <= threshold(s) {
		return nil
	}
	return submarine.Attack(best)
}

// retrace moves onto a cell the opponent attacked since its last move,
// using the submarine that covers the fewest cells.
func (h *HeuristicStrategy) retrace(s *submarine.BattleState) submarine.Action {
	fleet := s.MySubmarinePositions()
	for i := len(s.OpponentHistory) - 1; i >= 0; i-- {
		a := s.OpponentHistory[i]
		if _, isMove := submarine.AsMove(a); isMove {
			break
		}
		at, ok := submarine.AsAttack(a)
		if !ok {
			continue
		}
		var mover submarine.Position
		bestFootprint, found := 0, false
		for _, sub := range fleet {
			if !submarine.Contains(s.MovableCells(sub), at.Target) {
				continue
			}
			if fp := footprint(s, sub); !found || fp < bestFootprint {
				mover, bestFootprint, found = sub, fp, true
			}
		}
		if found {
			return moveTo(mover, at.Target)
		}
	}
	return nil
}

// footprint counts the cells a single submarine at p can attack.
func footprint(s *submarine.BattleState, p submarine.Position) int {
	n := 0
	for _, c := range submarine.Around(p) {
		if s.HPAt(c) == 0 {
			n++
		}
	}
	return n
}

// endgame moves a random submarine half of the time once the fleet is small.
func (h *HeuristicStrategy) endgame(s *submarine.BattleState) submarine.Action {
	if s.MyAliveCount > endgameFleet || h.rng.Float64() >= 0.5 {
		return nil
	}
	var movers []submarine.Position
	for _, sub := range s.MySubmarinePositions() {
		if len(s.MovableCells(sub)) > 0 {
			movers = append(movers, sub)
		}
	}
	if len(movers) == 0 {
		return nil
	}
	from := pick(h.rng, movers)
	return moveTo(from, pick(h.rng, s.MovableCells(from)))
}

// fallback attacks the most likely reachable cell regardless of threshold.
func (h *HeuristicStrategy) fallback(s *submarine.BattleState) submarine.Action {
	best, _, ok := s.Field.MaxOf(s.AttackableCells())
	if !ok {
		return nil
	}
	return submarine.Attack(best)
}
