package pong

// Snapshot is a flat view of the match for status lines and HUDs.
type Snapshot struct {
	Phase      Phase
	LeftScore  int
	RightScore int
	Speed      float64
	Rally      int
	Winner     Side
}

// Snapshot returns the current match summary.
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		Phase:      d.phase,
		LeftScore:  d.state.Left.Score,
		RightScore: d.state.Right.Score,
		Speed:      d.state.Ball.Speed,
		Rally:      d.stats.Rally,
		Winner:     d.winner,
	}
}
