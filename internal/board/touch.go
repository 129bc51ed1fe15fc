package board

// Transition returns the state that follows a touch on target.
//
//   - a finished game resets to the starting arrangement;
//   - touching the selected square again deselects it;
//   - touching anything that is not a legal destination of a movable
//     selection (re)selects target, or clears the selection if target is empty;
//   - otherwise the selected piece moves to target and the turn passes.
//
// The legal-move set is then recomputed for target when it holds a piece of
// the side to move and the touch did not deselect.
func Transition(s State, target Square) State {
	if s.Terminal() {
		return NewState()
	}

	deselected := false
	switch {
	case target == s.selected:
		s.selected = NoSquare
		deselected = true

	case s.selected == NoSquare,
		s.placement[s.selected].Side() != s.toMove,
		!s.legal.Has(target):
		if s.IsEmpty(target) {
			s.selected = NoSquare
		} else {
			s.selected = target
		}

	default:
		s = s.play(s.selected, target)
	}

	s.legal = 0
	if !deselected && s.selected == target && s.PieceAt(target).Side() == s.toMove {
		s.legal = s.MovesFrom(target)
	}
	return s
}
