package engine

import "github.com/samber/lo"

// Weights parameterizes combination scoring. The defaults are chosen so that
// combination size dominates, keeping every requested free day outweighs
// partially matching the mandatory courses, and covering all mandatory
// courses is a strong but not absolute tiebreak. Only the relative
// magnitudes matter; Size must stay larger than FreeDays for a bigger
// combination to always outrank a smaller one.
type Weights struct {
	Size          int
	FreeDays      int
	MandatoryEach int
	MandatoryAll  int
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Size:          1000,
		FreeDays:      500,
		MandatoryEach: 200,
		MandatoryAll:  300,
	}
}

// Scorer ranks a valid combination against a constraint set. Implementations
// are pure functions of their inputs: no internal state, no I/O.
type Scorer interface {
	Score(c Combination, constraints ConstraintSet) ScoredResult
}

// NewScorer builds a Scorer with the given weights.
func NewScorer(weights Weights) Scorer {
	return preferenceScorer{weights: weights}
}

type preferenceScorer struct {
	weights Weights
}

func (s preferenceScorer) Score(c Combination, constraints ConstraintSet) ScoredResult {
	score := len(c) * s.weights.Size

	freeDaysKept := !lo.SomeBy(constraints.FreeDays, c.MeetsOn)
	if freeDaysKept {
		score += s.weights.FreeDays
	}

	mandatory := lo.CountBy(c, func(section Section) bool {
		return constraints.IsMandatory(section.Course)
	})
	score += mandatory * s.weights.MandatoryEach

	// Vacuously true for an empty mandatory set, so unconstrained runs rank
	// purely on size and free days.
	allMandatory := lo.EveryBy(constraints.MandatoryCourses, func(course string) bool {
		return lo.SomeBy(c, func(section Section) bool { return section.Course == course })
	})
	if allMandatory {
		score += s.weights.MandatoryAll
	}

	return ScoredResult{
		Score:        score,
		Size:         len(c),
		Combination:  c,
		AllMandatory: allMandatory,
		FreeDaysKept: freeDaysKept,
	}
}
