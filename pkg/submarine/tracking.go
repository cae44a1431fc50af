package submarine

// NextTracking derives the next tracking cell from the current one, the own
// action just taken (with its outcome applied) and the opponent action that
// preceded it. A nil result means no enemy location is known for certain.
//
// opponentAlive is the enemy alive count after the own action's outcome was
// applied.
func NextTracking(current *Position, lastMine, lastOpponent Action, opponentAlive int) *Position {
	oppMove, oppMoved := AsMove(lastOpponent)
	attack, attacked := AsAttack(lastMine)

	// A lone survivor can only be where we last saw it, shifted by its move.
	if opponentAlive == 1 && current != nil {
		killedTracked := attacked && attack.Resp == Dead &&
			(attack.Target == *current || (oppMoved && attack.Target == current.Add(oppMove.DY, oppMove.DX)))
		freshHit := attacked && attack.Resp == Hit
		if !killedTracked && !freshHit {
			if oppMoved {
				return shifted(*current, oppMove)
			}
			return cellPtr(*current)
		}
	}

	if attacked {
		switch attack.Resp {
		case Dead:
			return nil
		case Hit:
			return cellPtr(attack.Target)
		case Near, Nothing:
			if current == nil {
				return nil
			}
			if !oppMoved {
				return cellPtr(*current)
			}
			switch attack.Target {
			case *current:
				// We fired where it used to be and missed, so the move was real.
				return shifted(*current, oppMove)
			case current.Add(oppMove.DY, oppMove.DX):
				// We followed the move and missed, so it was a feint.
				return cellPtr(*current)
			}
		}
		return nil
	}

	if current != nil && !oppMoved {
		return cellPtr(*current)
	}
	return nil
}

// UpdateTrackingCell advances s.TrackingCell after an own turn. It must be
// called once per own turn, after the own action and its response have been
// applied, so that the last opponent action is the one that preceded it.
func UpdateTrackingCell(s *BattleState) {
	s.TrackingCell = NextTracking(s.TrackingCell, s.LastMyAction(), s.LastOpponentAction(), s.OpponentAliveCount)
}

func shifted(p Position, m MoveAction) *Position {
	q := p.Add(m.DY, m.DX)
	if !IsWithinArea(q) {
		return nil
	}
	return &q
}

func cellPtr(p Position) *Position {
	return &p
}
