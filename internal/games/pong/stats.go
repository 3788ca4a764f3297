package pong

// Stats accumulates per-match figures for the history archive.
type Stats struct {
	Ticks        int     // frames simulated while running
	Returns      int     // paddle returns by either side
	Rally        int     // returns since the last point
	LongestRally int     // most returns between two points
	WallBounces  int     // reflections off the top and bottom edges
	PeakSpeed    float64 // highest ball speed reached
}

// record folds one physics step into the totals. speed is the ball speed after the step.
func (st *Stats) record(out Outcome, speed float64) {
	st.Ticks++
	if out.WallBounce {
		st.WallBounces++
	}
	if out.Returned != SideNone {
		st.Returns++
		st.Rally++
		st.LongestRally = max(st.LongestRally, st.Rally)
	}
	if out.Scored != SideNone {
		st.Rally = 0
	}
	st.PeakSpeed = max(st.PeakSpeed, speed)
}
