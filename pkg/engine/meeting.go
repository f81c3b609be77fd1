package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidMeeting is returned when a meeting's start time is not strictly
// before its end time.
var ErrInvalidMeeting = errors.New("meeting must start before it ends")

// Meeting is a single weekly occurrence of a section: a day, a same-day time
// interval and an opaque location (possibly "TBA").
type Meeting struct {
	Day      Day
	Start    ClockTime
	End      ClockTime
	Location string
}

// NewMeeting builds a Meeting, rejecting empty or inverted intervals so they
// never enter enumeration. An empty location defaults to "TBA".
func NewMeeting(day Day, start, end ClockTime, location string) (Meeting, error) {
	if start >= end {
		return Meeting{}, fmt.Errorf("%w: %v-%v on %v", ErrInvalidMeeting, start, end, day)
	}
	if location == "" {
		location = "TBA"
	}
	return Meeting{Day: day, Start: start, End: end, Location: location}, nil
}

// Overlaps reports whether the two meetings intersect as half-open intervals
// on the same day. A meeting ending exactly when another starts does not
// overlap.
func (m Meeting) Overlaps(other Meeting) bool {
	if m.Day != other.Day {
		return false
	}
	return max(m.Start, other.Start) < min(m.End, other.End)
}

func (m Meeting) String() string {
	return fmt.Sprintf("%v %v-%v @ %v", m.Day, m.Start, m.End, m.Location)
}
