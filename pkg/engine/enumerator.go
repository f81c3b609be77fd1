package engine

// Enumerator generates every internally consistent combination of candidate
// sections, scores each one and returns them as a sorted ResultSet.
//
// The search is exhaustive by construction and therefore exponential in the
// pool size; pools above roughly 20-25 sections make it impractical, and
// callers are expected to guard the pool before invoking it. The engine
// itself imposes no limit beyond the constraint set's MaxSize.
type Enumerator interface {
	Enumerate(sections []Section, constraints ConstraintSet) ResultSet
}

// NewEnumerator builds an Enumerator around the given scorer, using the
// standard lexicographic subset generator.
func NewEnumerator(scorer Scorer) Enumerator {
	return &exhaustiveEnumerator{
		scorer:  scorer,
		subsets: NewSubsetGenerator(),
	}
}

// NewEnumeratorWithGenerator builds an Enumerator with a custom subset
// generation policy.
func NewEnumeratorWithGenerator(scorer Scorer, subsets SubsetGenerator) Enumerator {
	return &exhaustiveEnumerator{
		scorer:  scorer,
		subsets: subsets,
	}
}

type exhaustiveEnumerator struct {
	scorer  Scorer
	subsets SubsetGenerator
}

// Enumerate tries candidate sizes from the effective maximum down to 1, so
// the largest combinations are examined first. Within a size, subsets are
// visited in lexicographic order of the input indices; both orderings are
// part of the deterministic-output contract. Enumerating an empty pool
// returns an empty ResultSet without error.
func (e *exhaustiveEnumerator) Enumerate(sections []Section, constraints ConstraintSet) ResultSet {
	var (
		results []ScoredResult
		stats   Stats
	)

	for k := constraints.EffectiveMaxSize(sections); k >= 1; k-- {
		e.subsets.Subsets(len(sections), k, func(indices []int) bool {
			stats.Examined++

			combination := make(Combination, len(indices))
			for i, index := range indices {
				combination[i] = sections[index]
			}

			if hasConflict(combination) {
				stats.ConflictRejected++
				return true
			}
			if hasDuplicateCourse(combination) {
				stats.DuplicateRejected++
				return true
			}

			results = append(results, e.scorer.Score(combination, constraints))
			return true
		})
	}

	sortResults(results)
	return ResultSet{Results: results, Stats: stats}
}

// hasConflict stops at the first conflicting pair; Explain collects all pairs
// when a caller wants the full diagnostic instead.
func hasConflict(c Combination) bool {
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if Conflicts(c[i], c[j]) {
				return true
			}
		}
	}
	return false
}

func hasDuplicateCourse(c Combination) bool {
	seen := make(map[string]bool, len(c))
	for _, section := range c {
		if seen[section.Course] {
			return true
		}
		seen[section.Course] = true
	}
	return false
}
