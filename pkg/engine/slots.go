package engine

import "slices"

// Slot is one occupied weekly time slot of a combination, keyed by day and
// interval. Renderers lay out their grids from these.
type Slot struct {
	Day   Day
	Start ClockTime
	End   ClockTime
}

// Slots returns the distinct (day, start, end) tuples used by any section of
// the combination, sorted by day, then start, then end. It is a pure
// projection; the combination is not modified.
func Slots(c Combination) []Slot {
	seen := make(map[Slot]bool)
	var slots []Slot
	for _, section := range c {
		for _, meeting := range section.Meetings {
			slot := Slot{Day: meeting.Day, Start: meeting.Start, End: meeting.End}
			if !seen[slot] {
				seen[slot] = true
				slots = append(slots, slot)
			}
		}
	}

	slices.SortFunc(slots, func(a, b Slot) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}
		return int(a.End) - int(b.End)
	})
	return slots
}
