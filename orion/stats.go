package orion

import (
	"time"
)

// RedrawStats keeps timings of the redraws done by a Loop.
type RedrawStats struct {
	RedrawCount     uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Duration of the most recent redraw
	Last time.Duration
}

func (t *RedrawStats) update(d time.Duration) {
	const window = 16

	t.Last = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.RedrawCount == 0 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.RedrawCount += 1
}
