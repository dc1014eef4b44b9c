package core

import "time"

// FixedStep paces a render loop at a steady frames-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(perSecond int) *FixedStep {
	if perSecond <= 0 {
		perSecond = 10
	}
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the pacing rate. Safe to call from the driver loop.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 10
	}
	f.step = time.Second / time.Duration(perSecond)
}

// ShouldStep reports whether enough time has elapsed for the next frame.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Interval returns the current frame interval, for sleep sizing.
func (f *FixedStep) Interval() time.Duration { return f.step }
