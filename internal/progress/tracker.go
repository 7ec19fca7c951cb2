package progress

// DefaultLength is the bar length assumed until a reporter announces a
// real max count. Matches a percentage-style bar.
const DefaultLength = 100

// Meter is the sink for absolute progress reports. Reporters call Advance
// with the current count and, when known, the max count (0 when unknown).
type Meter interface {
	Advance(cur, max int)
}

// Tracker translates absolute (current, max) progress reports into bounded,
// monotonically non-decreasing positions.
//
// Clone transports report progress as absolute counts per phase, and phases
// restart from zero (counting, then receiving, then resolving). The display
// contract is that the bar never moves backwards: a new current count below
// the displayed position yields a zero delta, and a reported max rescales
// the bar length so the final position equals the final max.
type Tracker struct {
	pos    int
	length int
}

// NewTracker creates a Tracker with the given bar length.
// A non-positive length falls back to DefaultLength.
func NewTracker(length int) *Tracker {
	if length <= 0 {
		length = DefaultLength
	}
	return &Tracker{length: length}
}

// Advance consumes one absolute progress report and returns the delta the
// display position moved by. If max is positive the bar length is rescaled
// to it. The delta is cur minus the previously displayed position, clamped
// at zero so the position never regresses.
func (t *Tracker) Advance(cur, max int) int {
	if max > 0 {
		t.length = max
	}

	delta := cur - t.pos
	if delta < 0 {
		delta = 0
	}
	t.pos += delta
	return delta
}

// Position returns the current displayed position.
func (t *Tracker) Position() int {
	return t.pos
}

// Length returns the current bar length.
func (t *Tracker) Length() int {
	return t.length
}

// Fraction returns the completed fraction in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.length <= 0 {
		return 0
	}
	f := float64(t.pos) / float64(t.length)
	if f > 1 {
		f = 1
	}
	return f
}
