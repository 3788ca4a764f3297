package core

import "time"

// Token identifies a scheduled callback. The zero Token never refers to a pending
// callback, so it is safe to Cancel.
type Token uint64

// Scheduler is the port the game loop uses to request its next frame and one-shot
// delayed callbacks. Implementations run every callback on the caller's single
// logical thread.
type Scheduler interface {
	// RequestFrame runs fn before the next displayed frame.
	RequestFrame(fn func()) Token
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func()) Token
	// Cancel drops a pending callback. Unknown or already-run tokens are ignored.
	Cancel(t Token)
}

type pendingFrame struct {
	token Token
	fn    func()
}

type pendingTimer struct {
	token Token
	due   time.Time
	fn    func()
}

// FrameQueue is a cooperative Scheduler driven by an external clock. The owner calls
// Advance once per displayed frame (a Bubble Tea tick, an ebiten Update or a test
// step). It is not safe for concurrent use.
type FrameQueue struct {
	last   Token
	now    time.Time
	frames []pendingFrame
	timers []pendingTimer
}

// NewFrameQueue creates a queue whose clock starts at now.
func NewFrameQueue(now time.Time) *FrameQueue {
	return &FrameQueue{now: now}
}

// Now returns the time of the most recent Advance.
func (q *FrameQueue) Now() time.Time {
	return q.now
}

// RequestFrame queues fn for the next Advance.
func (q *FrameQueue) RequestFrame(fn func()) Token {
	q.last++
	q.frames = append(q.frames, pendingFrame{token: q.last, fn: fn})
	return q.last
}

// After queues fn to run on the first Advance at or past now+d.
func (q *FrameQueue) After(d time.Duration, fn func()) Token {
	q.last++
	q.timers = append(q.timers, pendingTimer{token: q.last, due: q.now.Add(d), fn: fn})
	return q.last
}

// Cancel drops a pending frame or timer.
func (q *FrameQueue) Cancel(t Token) {
	if t == 0 {
		return
	}
	for i, f := range q.frames {
		if f.token == t {
			q.frames = append(q.frames[:i], q.frames[i+1:]...)
			return
		}
	}
	for i, tm := range q.timers {
		if tm.token == t {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return
		}
	}
}

// PendingFrames returns the number of queued frame callbacks.
func (q *FrameQueue) PendingFrames() int {
	return len(q.frames)
}

// PendingTimers returns the number of queued delayed callbacks.
func (q *FrameQueue) PendingTimers() int {
	return len(q.timers)
}

// Advance moves the clock to now, fires every timer that is due (earliest first),
// then runs the frames that were pending at that point. Frames requested by the
// callbacks themselves wait for the following Advance; frames cancelled by an
// earlier callback in the same batch are skipped. A clock that moves backwards is
// held at its latest value.
func (q *FrameQueue) Advance(now time.Time) {
	if now.After(q.now) {
		q.now = now
	}

	q.fireTimers()

	batch := make([]Token, len(q.frames))
	for i, f := range q.frames {
		batch[i] = f.token
	}
	for _, t := range batch {
		if fn, ok := q.take(t); ok {
			fn()
		}
	}
}

// take removes a pending frame and returns its callback.
func (q *FrameQueue) take(t Token) (func(), bool) {
	for i, f := range q.frames {
		if f.token == t {
			q.frames = append(q.frames[:i], q.frames[i+1:]...)
			return f.fn, true
		}
	}
	return nil, false
}

func (q *FrameQueue) fireTimers() {
	for {
		i := q.nextDue()
		if i < 0 {
			return
		}
		tm := q.timers[i]
		q.timers = append(q.timers[:i], q.timers[i+1:]...)
		tm.fn()
	}
}

// nextDue returns the index of the earliest due timer, or -1.
func (q *FrameQueue) nextDue() int {
	best := -1
	for i, tm := range q.timers {
		if tm.due.After(q.now) {
			continue
		}
		if best < 0 || tm.due.Before(q.timers[best].due) {
			best = i
		}
	}
	return best
}
