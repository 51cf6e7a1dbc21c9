package core

import "time"

const defaultInterval = 100 * time.Millisecond

// FixedStep helps run simulation updates at a steady cadence regardless of how
// often the host render loop calls in.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given ticks per
// second. Non-positive rates fall back to the default 100ms period.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// NewFixedInterval constructs a FixedStep controller with an explicit tick
// period. Non-positive durations fall back to the default 100ms period.
func NewFixedInterval(d time.Duration) *FixedStep {
	if d <= 0 {
		d = defaultInterval
	}
	fs := &FixedStep{step: d}
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = defaultInterval
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. The
// first call after construction always reports true so a freshly seeded grid
// is stepped without waiting a full period.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
