package dissolve

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"time"
)

// Transition paces a dissolve over a fixed duration. The number of
// pixels revealed by time t is floor(total*t/duration), an integer
// staircase rather than a rounded fraction, so no partial-pixel error
// accumulates across frames.
type Transition struct {
	duration time.Duration
	elapsed  time.Duration

	width  int
	height int
	total  int

	swapped int
	seq     *Sequence
	swap    Swapper
}

// New builds a dissolve over a width x height pixel grid that completes
// after duration of accumulated Update deltas. Every revealed pixel is
// reported to swap. rng picks the starting point of the scan cycle; a
// nil rng uses the process-wide source.
func New(duration time.Duration, width, height int, swap Swapper, rng *rand.Rand) (*Transition, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidConfig, duration)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, width, height)
	}
	if swap == nil {
		return nil, fmt.Errorf("%w: nil swapper", ErrInvalidConfig)
	}
	total := width * height
	return &Transition{
		duration: duration,
		width:    width,
		height:   height,
		total:    total,
		seq:      NewSequence(total, rng),
		swap:     swap,
	}, nil
}

// Reset rewinds the clock and the swap count so the transition replays
// from the start. The scan sequence is left where it stopped, so a
// reset taken mid-transition replays in a different order while still
// covering every pixel. The host is expected to restore its working
// buffer alongside.
func (t *Transition) Reset() {
	t.elapsed = 0
	t.swapped = 0
}

// Update advances the transition by delta and reveals every pixel that
// is due by the new elapsed time. It reports whether the transition is
// still running: false means every pixel has been swapped, and further
// calls do nothing. A negative delta is rejected.
func (t *Transition) Update(delta time.Duration) (bool, error) {
	if delta < 0 {
		return t.swapped < t.total, ErrNegativeDelta
	}
	if t.swapped >= t.total {
		return false, nil
	}

	t.elapsed += delta
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}

	for target := t.reveal(); t.swapped < target; t.swapped++ {
		j := t.seq.Next()
		t.swap.Swap(j%t.width, j/t.width)
	}
	return t.swapped < t.total, nil
}

// reveal computes floor(total*elapsed/duration) in 128-bit arithmetic;
// total*elapsed overflows int64 already for moderate images and
// durations measured in nanoseconds.
func (t *Transition) reveal() int {
	hi, lo := bits.Mul64(uint64(t.total), uint64(t.elapsed))
	q, _ := bits.Div64(hi, lo, uint64(t.duration))
	return int(q)
}

// Running reports whether any pixels remain to be swapped.
func (t *Transition) Running() bool { return t.swapped < t.total }

// Swapped returns the number of pixels revealed so far.
func (t *Transition) Swapped() int { return t.swapped }

// Total returns the pixel count of the grid.
func (t *Transition) Total() int { return t.total }

// Elapsed returns accumulated update time, clamped to the duration.
func (t *Transition) Elapsed() time.Duration { return t.elapsed }

// Progress returns completion in [0, 1] by pixel count.
func (t *Transition) Progress() float64 {
	return float64(t.swapped) / float64(t.total)
}
