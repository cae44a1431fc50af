package submarine

// ApplyMyOp records an own action. A move relocates the submarine's HP from
// the source cell to the destination.
func ApplyMyOp(s *BattleState, a Action) error {
	switch op := a.(type) {
	case *AttackAction:
		if !IsWithinArea(op.Target) {
			return contractErr("apply my attack", ErrOutOfArea, &op.Target)
		}
	case MoveAction:
		if err := validateMyMove(s, op); err != nil {
			return err
		}
		from, to := *op.From, op.To()
		s.MyGrid[to.Row][to.Col] = s.MyGrid[from.Row][from.Col]
		s.MyGrid[from.Row][from.Col] = 0
	default:
		return contractErr("apply my op", ErrInvalidMove, nil)
	}
	s.MyHistory = append(s.MyHistory, a)
	return nil
}

func validateMyMove(s *BattleState, op MoveAction) error {
	if !op.Valid() || op.From == nil {
		return contractErr("apply my move", ErrInvalidMove, op.From)
	}
	from := *op.From
	if !IsWithinArea(from) {
		return contractErr("apply my move", ErrOutOfArea, &from)
	}
	if s.HPAt(from) <= 0 {
		return contractErr("apply my move", ErrEmptySource, &from)
	}
	to := op.To()
	if !IsWithinArea(to) {
		return contractErr("apply my move", ErrOutOfArea, &to)
	}
	if s.HPAt(to) != 0 {
		return contractErr("apply my move", ErrOccupiedDestination, &to)
	}
	return nil
}

// ApplyAttackResponse records the opponent's answer to the most recent own
// attack and updates the probability field. Dead also removes one enemy
// submarine from the alive count.
func ApplyAttackResponse(s *BattleState, resp Response) error {
	at, ok := AsAttack(s.LastMyAction())
	if !ok || at.Resolved() {
		return contractErr("apply attack response", ErrNoPendingAttack, nil)
	}

	n := s.OpponentAliveCount
	switch resp {
	case Hit:
		s.Field.ApplyHit(at.Target, n)
	case Dead:
		s.Field.ApplyDead(at.Target, n)
		s.OpponentAliveCount--
	case Near:
		s.Field.ApplyNear(at.Target, n)
	case Nothing:
		s.Field.ApplyNothing(at.Target)
	default:
		return contractErr("apply attack response", ErrInvalidResponse, &at.Target)
	}
	at.Resp = resp
	return nil
}

// ApplyOpponentOp records an opponent action and updates the probability
// field. For an attack it damages the own fleet and returns the response to
// report back; for a move it returns Unresolved.
func ApplyOpponentOp(s *BattleState, a Action) (Response, error) {
	switch op := a.(type) {
	case *AttackAction:
		c := op.Target
		if !IsWithinArea(c) {
			return Unresolved, contractErr("apply opponent attack", ErrOutOfArea, &c)
		}
		s.OpponentHistory = append(s.OpponentHistory, op)
		s.Field.ApplyOpponentAttack(c, s.OpponentAliveCount)
		op.Resp = s.resolveIncomingAttack(c)
		return op.Resp, nil
	case MoveAction:
		if !op.Valid() {
			return Unresolved, contractErr("apply opponent move", ErrInvalidMove, nil)
		}
		s.OpponentHistory = append(s.OpponentHistory, op)
		s.Field.ApplyOpponentMove(op.DY, op.DX)
		return Unresolved, nil
	}
	return Unresolved, contractErr("apply opponent op", ErrInvalidMove, nil)
}

func (s *BattleState) resolveIncomingAttack(c Position) Response {
	if s.HPAt(c) > 0 {
		s.MyGrid[c.Row][c.Col]--
		if s.MyGrid[c.Row][c.Col] <= 0 {
			s.MyAliveCount--
			return Dead
		}
		return Hit
	}
	for _, q := range Around(c) {
		if s.HPAt(q) > 0 {
			return Near
		}
	}
	return Nothing
}
