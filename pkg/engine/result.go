package engine

import (
	"sort"

	"github.com/samber/lo"
)

// Combination is an unordered set of sections in which no two sections share
// a course and no two sections conflict. Combinations are never mutated after
// the enumerator produces them.
type Combination []Section

// Courses returns the course names present in the combination.
func (c Combination) Courses() []string {
	return lo.Map(c, func(s Section, _ int) string { return s.Course })
}

// MeetsOn reports whether any section of the combination meets on the day.
func (c Combination) MeetsOn(day Day) bool {
	return lo.SomeBy(c, func(s Section) bool {
		return lo.SomeBy(s.Meetings, func(m Meeting) bool { return m.Day == day })
	})
}

// ScoredResult is one valid combination with its rank and the preference
// flags derived during scoring. Immutable after creation.
type ScoredResult struct {
	Score        int
	Size         int
	Combination  Combination
	AllMandatory bool
	FreeDaysKept bool
}

// Stats aggregates the outcome of one enumeration run so callers can present
// "why nothing matched" diagnostics when every subset was rejected.
type Stats struct {
	Examined          int
	ConflictRejected  int
	DuplicateRejected int
}

// ResultSet is the complete ordered output of one enumeration run: scored
// results sorted best-first plus the run's aggregate counts. An empty
// ResultSet is a valid outcome, not an error; callers distinguish "no
// candidates" from "no valid combination" by whether the input was empty.
type ResultSet struct {
	Results []ScoredResult
	Stats   Stats
}

func (rs ResultSet) Len() int    { return len(rs.Results) }
func (rs ResultSet) Empty() bool { return len(rs.Results) == 0 }

// PerfectMatches counts results satisfying both the mandatory courses and
// the free days.
func (rs ResultSet) PerfectMatches() int {
	return lo.CountBy(rs.Results, func(r ScoredResult) bool {
		return r.AllMandatory && r.FreeDaysKept
	})
}

// MandatoryMatches counts results containing every mandatory course.
func (rs ResultSet) MandatoryMatches() int {
	return lo.CountBy(rs.Results, func(r ScoredResult) bool { return r.AllMandatory })
}

// sortResults orders results by score descending, ties by larger size. The
// stable sort preserves enumeration order beyond that, which makes the final
// ordering reproducible across runs with identical input.
func sortResults(results []ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Size > results[j].Size
	})
}
