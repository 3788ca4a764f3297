package pong

// Winner returns the side whose score has reached WinningScore, or SideNone.
func (s *State) Winner() Side {
	switch {
	case s.Left.Score >= WinningScore:
		return SideLeft
	case s.Right.Score >= WinningScore:
		return SideRight
	default:
		return SideNone
	}
}

// CheckGameOver marks the match over once a side reaches WinningScore and returns
// that side. Below the threshold it changes nothing.
func (s *State) CheckGameOver() (Side, bool) {
	w := s.Winner()
	if w == SideNone {
		return SideNone, false
	}
	s.Over = true
	return w, true
}
