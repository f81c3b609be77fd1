package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectSubsets(n, k int) [][]int {
	var collected [][]int
	NewSubsetGenerator().Subsets(n, k, func(indices []int) bool {
		copied := make([]int, len(indices))
		copy(copied, indices)
		collected = append(collected, copied)
		return true
	})
	return collected
}

func TestSubsetsLexicographicOrder(t *testing.T) {
	// Act
	subsets := collectSubsets(4, 2)

	// Assert
	expected := [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}
	assert.Equal(t, expected, subsets)
}

func TestSubsetsCounts(t *testing.T) {
	// Arrange: {n, k, C(n,k)}
	scenarios := [][3]int{
		{5, 1, 5},
		{5, 3, 10},
		{5, 5, 1},
		{6, 2, 15},
		{10, 4, 210},
	}

	for _, scenario := range scenarios {
		// Act
		subsets := collectSubsets(scenario[0], scenario[1])

		// Assert
		assert.Len(t, subsets, scenario[2], "C(%d,%d)", scenario[0], scenario[1])
	}
}

func TestSubsetsDegenerateArguments(t *testing.T) {
	assert.Empty(t, collectSubsets(3, 0))
	assert.Empty(t, collectSubsets(3, -1))
	assert.Empty(t, collectSubsets(3, 4))
	assert.Empty(t, collectSubsets(0, 1))
}

func TestSubsetsEarlyStop(t *testing.T) {
	// Arrange
	visited := 0

	// Act
	NewSubsetGenerator().Subsets(6, 3, func(indices []int) bool {
		visited++
		return visited < 4
	})

	// Assert
	assert.Equal(t, 4, visited)
}
