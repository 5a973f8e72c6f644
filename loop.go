package main

import (
	"time"
)

// Clock is the source of time for a Loop, in milliseconds.
type Clock interface {
	Now() int64
}

// WallClock reads the monotonic clock, relative to the moment it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. It is what makes exports and tests
// deterministic: the same sequence of Set/Add calls always produces the same
// animation, frame by frame.
type ManualClock struct {
	T int64
}

func (c *ManualClock) Now() int64 {
	return c.T
}

func (c *ManualClock) Set(t int64) {
	c.T = t
}

func (c *ManualClock) Add(dt int64) {
	c.T += dt
}

// Timer is a handle to something scheduled on a Loop.
type Timer interface {
	// Cancel stops all future firings. Cancelling twice, or cancelling a timer
	// that already finished, does nothing.
	Cancel()
}

// Timers is the scheduling facility the animation relies on. Callbacks always
// run on the goroutine that calls Loop.Advance.
type Timers interface {
	ScheduleOnce(delay int64, f func()) Timer
	ScheduleRepeating(interval int64, total int64, onTick func(untilFinished int64),
		onFinish func()) Timer
}

type task struct {
	due       int64
	seq       int64
	repeating bool
	cancelled bool

	// One-shot tasks.
	run func()

	// Repeating tasks.
	interval int64
	end      int64
	onTick   func(untilFinished int64)
	onFinish func()
}

func (t *task) Cancel() {
	t.cancelled = true
}

// Loop runs scheduled callbacks when a host tells it time has passed.
// A host calls Advance() once per frame (or per step, for offline rendering)
// and every callback that became due since the last call runs, in the order
// of its due time. Callbacks may schedule new tasks; those run in the same
// Advance() if they are already due.
//
// While a callback runs, Now() reports the time at which the callback was
// due, not the time of the clock. If a frame takes 50ms and two ticks became
// due during it, the polygons they spawn still get the timestamps of their
// own ticks.
type Loop struct {
	Clock    Clock
	tasks    []*task
	nextSeq  int64
	firing   bool
	firingAt int64
}

func NewLoop(c Clock) *Loop {
	return &Loop{Clock: c}
}

func (l *Loop) Now() int64 {
	if l.firing {
		return l.firingAt
	}
	return l.Clock.Now()
}

func (l *Loop) add(t *task) *task {
	t.seq = l.nextSeq
	l.nextSeq++
	l.tasks = append(l.tasks, t)
	return t
}

func (l *Loop) ScheduleOnce(delay int64, f func()) Timer {
	return l.add(&task{due: l.Now() + max(delay, 0), run: f})
}

// ScheduleRepeating counts down from total, in steps of interval.
// onTick fires immediately and then every interval, receiving how much time
// is left until the end. When less than an interval is left there are no
// more ticks; onFinish fires at the end of the count-down.
// With interval 300 and total 1800, onTick fires at 0, 300, ... 1500 (6 times)
// and onFinish fires at 1800. With total 1700 the tick at 1500 is skipped
// (only 200 are left) and onFinish fires at 1700.
func (l *Loop) ScheduleRepeating(interval int64, total int64,
	onTick func(untilFinished int64), onFinish func()) Timer {
	now := l.Now()
	return l.add(&task{
		due:       now,
		repeating: true,
		interval:  interval,
		end:       now + total,
		onTick:    onTick,
		onFinish:  onFinish,
	})
}

// Pending returns the number of tasks that haven't finished and haven't been
// cancelled.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// popDue removes and returns the earliest task due at or before now. Ties are
// broken by scheduling order. Cancelled tasks are dropped along the way.
func (l *Loop) popDue(now int64) *task {
	n := 0
	var best *task
	bestIdx := -1
	for _, t := range l.tasks {
		if t.cancelled {
			continue
		}
		l.tasks[n] = t
		if t.due <= now && (best == nil || t.due < best.due ||
			(t.due == best.due && t.seq < best.seq)) {
			best = t
			bestIdx = n
		}
		n++
	}
	clear(l.tasks[n:])
	l.tasks = l.tasks[:n]
	if best == nil {
		return nil
	}
	l.tasks = append(l.tasks[:bestIdx], l.tasks[bestIdx+1:]...)
	return best
}

// Advance runs everything that is due at the clock's current time.
func (l *Loop) Advance() {
	now := l.Clock.Now()
	for {
		t := l.popDue(now)
		if t == nil {
			return
		}
		l.fire(t)
	}
}

func (l *Loop) fire(t *task) {
	l.firing = true
	l.firingAt = t.due
	defer func() { l.firing = false }()

	if !t.repeating {
		t.cancelled = true
		t.run()
		return
	}

	left := t.end - t.due
	if left <= 0 {
		t.cancelled = true
		if t.onFinish != nil {
			t.onFinish()
		}
		return
	}

	if left < t.interval {
		// Not enough time for another tick, only the finish is left.
		t.due = t.end
		l.tasks = append(l.tasks, t)
		return
	}

	t.onTick(left)
	if t.cancelled {
		// onTick cancelled its own timer.
		return
	}
	t.due = min(t.due+max(t.interval, 1), t.end)
	l.tasks = append(l.tasks, t)
}
