package engine

import (
	"testing"

	. "github.com/onsi/gomega"
)

func fixedResultSet(n int) ResultSet {
	results := make([]ScoredResult, n)
	for i := range results {
		results[i] = ScoredResult{Score: (n - i) * 1000, Size: 1}
	}
	return ResultSet{Results: results}
}

func TestBrowserNavigation(t *testing.T) {
	g := NewWithT(t)

	browser := NewBrowser(fixedResultSet(3))
	g.Expect(browser.Len()).To(Equal(3))
	g.Expect(browser.Cursor()).To(Equal(0))

	// Previous at index 0 is a no-op.
	browser.Previous()
	g.Expect(browser.Cursor()).To(Equal(0))

	browser.Next()
	browser.Next()
	g.Expect(browser.Cursor()).To(Equal(2))

	// Next at the last index is a no-op.
	browser.Next()
	g.Expect(browser.Cursor()).To(Equal(2))

	browser.First()
	g.Expect(browser.Cursor()).To(Equal(0))

	browser.Last()
	g.Expect(browser.Cursor()).To(Equal(2))

	current, err := browser.Current()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(current.Score).To(Equal(1000))
}

func TestBrowserJumpTo(t *testing.T) {
	g := NewWithT(t)

	browser := NewBrowser(fixedResultSet(4))

	g.Expect(browser.JumpTo(2)).To(Succeed())
	g.Expect(browser.Cursor()).To(Equal(2))

	g.Expect(browser.JumpTo(-1)).To(MatchError(ErrOutOfRange))
	g.Expect(browser.JumpTo(4)).To(MatchError(ErrOutOfRange))
	// A failed jump leaves the cursor where it was.
	g.Expect(browser.Cursor()).To(Equal(2))
}

func TestBrowserEmptyResultSet(t *testing.T) {
	g := NewWithT(t)

	browser := NewBrowser(ResultSet{})

	_, err := browser.Current()
	g.Expect(err).To(MatchError(ErrEmptyResultSet))
	g.Expect(browser.JumpTo(0)).To(MatchError(ErrOutOfRange))

	// Clamped movements stay no-ops on an empty set.
	browser.Next()
	browser.Previous()
	browser.First()
	browser.Last()
	g.Expect(browser.Cursor()).To(Equal(0))
}

func TestBrowserReplaceResetsCursor(t *testing.T) {
	g := NewWithT(t)

	browser := NewBrowser(fixedResultSet(3))
	browser.Last()
	g.Expect(browser.Cursor()).To(Equal(2))

	browser.Replace(fixedResultSet(5))
	g.Expect(browser.Cursor()).To(Equal(0))
	g.Expect(browser.Len()).To(Equal(5))
}
