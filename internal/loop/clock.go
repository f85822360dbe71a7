package loop

import "time"

// Clock paces the loop. Tick blocks until the next frame boundary and returns the time
// since the previous tick.
type Clock interface {
	Tick() time.Duration
}

// FrameLimiter is a Clock that sleeps away whatever is left of a fixed frame time.
type FrameLimiter struct {
	frame time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameLimiter creates a limiter targeting fps frames per second.
func NewFrameLimiter(fps int) *FrameLimiter {
	return &FrameLimiter{
		frame: time.Second / time.Duration(fps),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick sleeps until a full frame has passed since the previous tick.
func (l *FrameLimiter) Tick() time.Duration {
	now := l.now()
	if l.last.IsZero() {
		l.last = now
		return 0
	}

	elapsed := now.Sub(l.last)
	if elapsed < l.frame {
		l.sleep(l.frame - elapsed)
		now = l.now()
		elapsed = now.Sub(l.last)
	}
	l.last = now
	return elapsed
}

var _ Clock = (*FrameLimiter)(nil)
