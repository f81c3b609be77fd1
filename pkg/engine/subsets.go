package engine

// SubsetGenerator enumerates the k-element index subsets of an n-element
// sequence. It is the replaceable enumeration policy behind the Enumerator:
// the conflict and duplicate-course filters never depend on how subsets are
// produced, only on the subsets themselves.
type SubsetGenerator interface {
	// Subsets invokes visit with each k-element subset of [0, n) in
	// lexicographic order of the indices. The indices slice is reused
	// between calls and must not be retained. Enumeration stops early
	// when visit returns false.
	Subsets(n, k int, visit func(indices []int) bool)
}

// NewSubsetGenerator returns the standard lexicographic generator.
func NewSubsetGenerator() SubsetGenerator {
	return lexicographicSubsets{}
}

type lexicographicSubsets struct{}

func (g lexicographicSubsets) Subsets(n, k int, visit func(indices []int) bool) {
	if k <= 0 || k > n {
		return
	}
	indices := make([]int, k)
	g.generate(indices, 0, 0, n, visit)
}

func (g lexicographicSubsets) generate(indices []int, position, next, n int, visit func(indices []int) bool) bool {
	if position == len(indices) {
		return visit(indices)
	}

	// Leave room for the remaining positions so every partial choice can
	// still be completed.
	for i := next; i <= n-(len(indices)-position); i++ {
		indices[position] = i
		if !g.generate(indices, position+1, i+1, n, visit) {
			return false
		}
	}
	return true
}
