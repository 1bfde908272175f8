package puz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberClues_Sample(t *testing.T) {
	p, err := Decode(readFixture(t, "sample.puz"))
	require.NoError(t, err)

	clues, err := p.Clues()
	require.NoError(t, err)

	assert.Equal(t, []Clue{
		{Number: 1, Direction: DirectionAcross, Text: "First row", Cell: 0, Row: 0, Col: 0, Length: 5},
		{Number: 4, Direction: DirectionAcross, Text: "Middle row", Cell: 10, Row: 2, Col: 0, Length: 5},
		{Number: 5, Direction: DirectionAcross, Text: "Last row", Cell: 20, Row: 4, Col: 0, Length: 5},
	}, clues.Across)

	assert.Equal(t, []Clue{
		{Number: 1, Direction: DirectionDown, Text: "First column", Cell: 0, Row: 0, Col: 0, Length: 5},
		{Number: 2, Direction: DirectionDown, Text: "Middle column", Cell: 2, Row: 0, Col: 2, Length: 5},
		{Number: 3, Direction: DirectionDown, Text: "Last column", Cell: 4, Row: 0, Col: 4, Length: 5},
	}, clues.Down)
}

func TestNumberClues_AcrossTakesTextBeforeDown(t *testing.T) {
	g, err := NewGrid("---------", 3, 3)
	require.NoError(t, err)

	clues, err := NumberClues(g, []string{"a1", "d1", "d2", "d3", "a4", "a5"})
	require.NoError(t, err)

	first, ok := clues.Number(1, DirectionAcross)
	require.True(t, ok)
	assert.Equal(t, "a1", first.Text)

	first, ok = clues.Number(1, DirectionDown)
	require.True(t, ok)
	assert.Equal(t, "d1", first.Text)

	_, ok = clues.Number(2, DirectionAcross)
	assert.False(t, ok)
}

func TestNumberClues_SingleCellRunsAreNotClues(t *testing.T) {
	g, err := NewGrid("A.BC", 4, 1)
	require.NoError(t, err)

	clues, err := NumberClues(g, []string{"only"})
	require.NoError(t, err)

	require.Len(t, clues.Across, 1)
	assert.Empty(t, clues.Down)
	assert.Equal(t, Clue{Number: 1, Direction: DirectionAcross, Text: "only", Cell: 2, Row: 0, Col: 2, Length: 2}, clues.Across[0])
}

func TestNumberClues_CellBesideBlockWithRunOfOne(t *testing.T) {
	// The centre cell has a block on its left and on its right.
	g, err := NewGrid("---"+".-."+"---", 3, 3)
	require.NoError(t, err)

	clues, err := NumberClues(g, []string{"1a", "2d", "3a", "unused"})
	require.NoError(t, err)

	for _, c := range clues.Across {
		assert.NotEqual(t, 4, c.Cell)
	}
	assert.Equal(t, 3, clues.Len())
	assert.Equal(t, []int{0, 6}, []int{clues.Across[0].Cell, clues.Across[1].Cell})
	assert.Equal(t, 2, clues.Down[0].Number)
	assert.Equal(t, 3, clues.Across[1].Number)
}

func TestNumberClues_DownLengthUsesDownRun(t *testing.T) {
	// 1-Across is three cells wide while 1-Down is only two tall.
	g, err := NewGrid("ABC"+"D..", 3, 2)
	require.NoError(t, err)

	clues, err := NumberClues(g, []string{"across", "down"})
	require.NoError(t, err)

	require.Len(t, clues.Across, 1)
	require.Len(t, clues.Down, 1)
	assert.Equal(t, 3, clues.Across[0].Length)
	assert.Equal(t, 2, clues.Down[0].Length)
	assert.Equal(t, clues.Across[0].Number, clues.Down[0].Number)
}

func TestNumberClues_DiagramlessBlocks(t *testing.T) {
	p, err := Decode(readFixture(t, "diagramless.puz"))
	require.NoError(t, err)

	clues, err := p.Clues()
	require.NoError(t, err)

	assert.Equal(t, []string{"Top", "Bottom"}, []string{clues.Across[0].Text, clues.Across[1].Text})
	assert.Equal(t, []int{1, 3}, []int{clues.Across[0].Number, clues.Across[1].Number})
	require.Len(t, clues.Down, 1)
	assert.Equal(t, Clue{Number: 2, Direction: DirectionDown, Text: "Middle", Cell: 1, Row: 0, Col: 1, Length: 3}, clues.Down[0])
}

func TestNumberClues_RanOutOfClues(t *testing.T) {
	g, err := NewGrid("---------", 3, 3)
	require.NoError(t, err)

	_, err = NumberClues(g, []string{"a", "b", "c", "d", "e"})
	assert.ErrorIs(t, err, ErrRanOutOfClues)
}

func TestPuzzle_CluesCountMismatch(t *testing.T) {
	p := &Puzzle{
		Header:   Header{Width: 4, Height: 1, ClueCount: 2},
		Fill:     "A.BC",
		AllClues: []string{"one", "two"},
	}

	_, err := p.Clues()
	assert.ErrorIs(t, err, ErrClueCountMismatch)
}

func TestClues_Lookup(t *testing.T) {
	p, err := Decode(readFixture(t, "sample.puz"))
	require.NoError(t, err)
	clues, err := p.Clues()
	require.NoError(t, err)

	across, ok := clues.AcrossAt(0, 3)
	require.True(t, ok)
	assert.Equal(t, 1, across.Number)

	across, ok = clues.AcrossAt(4, 4)
	require.True(t, ok)
	assert.Equal(t, 5, across.Number)

	_, ok = clues.AcrossAt(1, 0)
	assert.False(t, ok, "row 1 has no across entries")

	down, ok := clues.DownAt(3, 2)
	require.True(t, ok)
	assert.Equal(t, 2, down.Number)

	_, ok = clues.DownAt(1, 1)
	assert.False(t, ok, "block")
}

func TestNewGrid(t *testing.T) {
	_, err := NewGrid("ABC", 2, 2)
	assert.ErrorIs(t, err, ErrGridShape)

	_, err = NewGrid("", 0, 0)
	assert.ErrorIs(t, err, ErrGridShape)

	g, err := NewGrid("AB.D", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", ".D"}, g.Rows())
	assert.Equal(t, 1, g.AcrossLen(2+1))
	assert.Equal(t, 0, g.AcrossLen(2))
	assert.Equal(t, 2, g.DownLen(1))
	assert.Equal(t, 1, g.DownLen(0))
	assert.Equal(t, 3, g.Index(1, 1))
}
