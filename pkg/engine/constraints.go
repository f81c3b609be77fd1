package engine

import "github.com/samber/lo"

// DefaultMaxSize caps combination cardinality when the caller does not set
// one. Exhaustive enumeration grows exponentially with the pool, so the cap
// keeps the default configuration tractable.
const DefaultMaxSize = 6

// ConstraintSet carries the user preferences for one enumeration run. It is
// immutable per run.
type ConstraintSet struct {
	// MandatoryCourses are course names that should appear in a combination.
	MandatoryCourses []string
	// FreeDays are days that should carry no meetings at all.
	FreeDays []Day
	// MaxSize bounds combination cardinality. Zero or negative means the
	// number of distinct courses in the pool, capped at DefaultMaxSize.
	MaxSize int
}

// EffectiveMaxSize resolves MaxSize against a concrete pool: the configured
// bound (or its default) clamped to the pool size.
func (c ConstraintSet) EffectiveMaxSize(sections []Section) int {
	maxSize := c.MaxSize
	if maxSize <= 0 {
		distinctCourses := len(lo.UniqBy(sections, func(s Section) string { return s.Course }))
		maxSize = min(distinctCourses, DefaultMaxSize)
	}
	return min(maxSize, len(sections))
}

// IsMandatory reports whether the course is in the mandatory set.
func (c ConstraintSet) IsMandatory(course string) bool {
	return lo.Contains(c.MandatoryCourses, course)
}
