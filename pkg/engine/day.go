package engine

import (
	"fmt"
	"strings"
	"time"
)

// Day identifies a day of the week for a weekly meeting.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Day) String() string {
	if int(d) < len(dayNames) {
		return dayNames[d]
	}
	return fmt.Sprintf("Day(%d)", uint8(d))
}

// Weekday maps a Day to the standard library's weekday enumeration.
func (d Day) Weekday() time.Weekday {
	if d == Sunday {
		return time.Sunday
	}
	return time.Weekday(d + 1)
}

// ParseDay parses a case-insensitive English day name.
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if strings.EqualFold(s, name) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid day", s)
}

// ClockTime is a wall-clock time expressed as minutes since midnight.
type ClockTime uint16

// ParseClock parses a time in "HH:MM" form.
func ParseClock(s string) (ClockTime, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("%q is not a valid time: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%q is not a valid time", s)
	}
	return ClockTime(hours*60 + minutes), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Hours and Minutes split the time into its wall-clock components.
func (t ClockTime) Hours() int   { return int(t) / 60 }
func (t ClockTime) Minutes() int { return int(t) % 60 }
