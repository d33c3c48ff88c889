package core

import "time"

// FixedStep gates simulation steps to a wall-clock rate so the driver can
// call Sim.Step independently of its frame rate.
type FixedStep struct {
	interval time.Duration
	pending  time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep constructs a gate that allows rate steps per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.pending = fs.interval
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 10/s.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	f.interval = time.Second / time.Duration(rate)
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Reset drops accumulated time; the next Due call starts a fresh window.
func (f *FixedStep) Reset() {
	f.pending = 0
	f.last = time.Time{}
}

// Due reports whether enough time has elapsed for another step. At most one
// step is granted per call; surplus time carries over capped at one interval.
func (f *FixedStep) Due() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.pending += now.Sub(f.last)
	f.last = now
	if f.pending < f.interval {
		return false
	}
	f.pending -= f.interval
	if f.pending > f.interval {
		f.pending = f.interval
	}
	return true
}
