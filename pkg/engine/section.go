package engine

import "fmt"

// Section is one offered instance of a course: a course identity, a section
// identity distinguishing it from its siblings, and a non-empty list of
// weekly meetings. The remaining fields are pass-through metadata the engine
// never interprets.
type Section struct {
	Course   string
	ID       string
	Meetings []Meeting

	Instructor     string
	CRN            string
	SeatsAvailable int
	MaxEnrollment  int
}

// Label identifies a section for display, e.g. "CS101-A".
func (s Section) Label() string {
	return fmt.Sprintf("%v-%v", s.Course, s.ID)
}

// Conflicts reports whether two sections share an overlapping meeting on the
// same day. Meeting lists per section are small, so the pairwise scan is not
// indexed.
func Conflicts(a, b Section) bool {
	for _, ma := range a.Meetings {
		for _, mb := range b.Meetings {
			if ma.Overlaps(mb) {
				return true
			}
		}
	}
	return false
}

// MeetingOverlap records one pair of overlapping meetings between two
// sections, for conflict explanations.
type MeetingOverlap struct {
	A Meeting
	B Meeting
}

// ConflictsBetween returns every overlapping meeting pair between a and b,
// or nil when the sections do not conflict.
func ConflictsBetween(a, b Section) []MeetingOverlap {
	var overlaps []MeetingOverlap
	for _, ma := range a.Meetings {
		for _, mb := range b.Meetings {
			if ma.Overlaps(mb) {
				overlaps = append(overlaps, MeetingOverlap{A: ma, B: mb})
			}
		}
	}
	return overlaps
}

// ConflictPair names two conflicting sections together with the specific
// meetings that overlap.
type ConflictPair struct {
	A        Section
	B        Section
	Overlaps []MeetingOverlap
}

func (p ConflictPair) String() string {
	return fmt.Sprintf("%v conflicts with %v", p.A.Label(), p.B.Label())
}

// Explain returns every conflicting section pair within sections, with the
// overlapping meetings of each pair. An empty result means the sections form
// a conflict-free set.
func Explain(sections []Section) []ConflictPair {
	var pairs []ConflictPair
	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			if overlaps := ConflictsBetween(sections[i], sections[j]); overlaps != nil {
				pairs = append(pairs, ConflictPair{A: sections[i], B: sections[j], Overlaps: overlaps})
			}
		}
	}
	return pairs
}
