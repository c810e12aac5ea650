// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rcv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinNumber(t *testing.T) {
	tests := []struct {
		continuing int
		expected   int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{10, 6},
		{11, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, WinNumber(tt.continuing), "continuing=%d", tt.continuing)
	}
}

func TestCountOrdersAscendingWithFirstAppearanceTies(t *testing.T) {
	tally := Count([]string{"X", "Y", "Z", "X", "Y"})

	assert.Equal(t, []TallyEntry{{"Z", 1}, {"X", 2}, {"Y", 2}}, tally.Ascending())
	assert.Equal(t, []TallyEntry{{"Y", 2}, {"X", 2}, {"Z", 1}}, tally.Descending())

	fewest, ok := tally.Fewest()
	assert.True(t, ok)
	assert.Equal(t, "Z", fewest)

	second, ok := tally.SecondFewest()
	assert.True(t, ok)
	assert.Equal(t, "X", second)

	most, ok := tally.Most()
	assert.True(t, ok)
	assert.Equal(t, "Y", most)
}

func TestCountTieAtTheBottomPicksFirstSeen(t *testing.T) {
	// Names are deliberately out of lexical order
	tally := Count([]string{"B", "A", "C", "C", "C"})

	fewest, _ := tally.Fewest()
	assert.Equal(t, "B", fewest)
	second, _ := tally.SecondFewest()
	assert.Equal(t, "A", second)
}

func TestCountEmpty(t *testing.T) {
	tally := Count(nil)

	assert.Equal(t, 0, tally.Len())
	assert.Equal(t, 0, tally.Total())
	_, ok := tally.Fewest()
	assert.False(t, ok)
	_, ok = tally.Most()
	assert.False(t, ok)
	_, ok = tally.SecondFewest()
	assert.False(t, ok)
	assert.Empty(t, tally.AtLeast(1))
}

func TestTallyAtLeast(t *testing.T) {
	firsts := []string{"A", "A", "A", "A", "A", "A", "B", "B", "B", "B"}
	tally := Count(firsts)

	assert.Equal(t, 10, tally.Total())
	assert.Equal(t, 6, tally.Votes("A"))
	assert.Equal(t, 0, tally.Votes("Z"))
	assert.Equal(t, []string{"A"}, tally.AtLeast(6))
	assert.Equal(t, []string{"A", "B"}, tally.AtLeast(4))
	assert.Empty(t, tally.AtLeast(7))
}

func TestTallyCopiesAreIndependent(t *testing.T) {
	tally := Count([]string{"A", "B", "B"})
	asc := tally.Ascending()
	asc[0].Votes = 100

	assert.Equal(t, 1, tally.Votes("A"))
}
