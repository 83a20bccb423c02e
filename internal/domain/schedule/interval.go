package schedule

import (
	"errors"
	"time"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNegativeBuffer      = errors.New("buffer cannot be negative")
)

// Interval is the time footprint of one appointment: the service itself plus
// the cleanup buffer appended after it. The buffer belongs to the occupied
// footprint for conflict purposes but not to the service for closing-time
// purposes.
type Interval struct {
	start     time.Time
	end       time.Time
	paddedEnd time.Time
}

func NewInterval(start time.Time, duration, buffer time.Duration) (Interval, error) {
	if duration <= 0 {
		return Interval{}, ErrNonPositiveDuration
	}
	if buffer < 0 {
		return Interval{}, ErrNegativeBuffer
	}
	end := start.Add(duration)
	return Interval{
		start:     start,
		end:       end,
		paddedEnd: end.Add(buffer),
	}, nil
}

func ReconstructInterval(start, end, paddedEnd time.Time) Interval {
	return Interval{start: start, end: end, paddedEnd: paddedEnd}
}

func (i Interval) Start() time.Time     { return i.start }
func (i Interval) End() time.Time       { return i.end }
func (i Interval) PaddedEnd() time.Time { return i.paddedEnd }

func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }

// Overlaps is inclusive on the padded bounds: an interval ending exactly when
// another starts still conflicts.
func (i Interval) Overlaps(other Interval) bool {
	return !i.start.After(other.paddedEnd) && !other.start.After(i.paddedEnd)
}
