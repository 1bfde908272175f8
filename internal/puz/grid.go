package puz

import "fmt"

// IsBlackSquare reports whether r marks a block. Normal puzzles use '.',
// diagramless puzzles use ':'.
func IsBlackSquare(r rune) bool {
	return r == '.' || r == ':'
}

// Grid is a row-major view of a fill or solution string.
type Grid struct {
	cells  []rune
	Width  int
	Height int
}

func NewGrid(fill string, width, height int) (*Grid, error) {
	cells := []rune(fill)
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrGridShape, len(cells), width, height)
	}
	return &Grid{cells: cells, Width: width, Height: height}, nil
}

func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) At(index int) rune {
	return g.cells[index]
}

func (g *Grid) Row(index int) int {
	return index / g.Width
}

func (g *Grid) Col(index int) int {
	return index % g.Width
}

func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

func (g *Grid) IsBlack(index int) bool {
	return IsBlackSquare(g.cells[index])
}

// Rows splits the grid into one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for r := range rows {
		rows[r] = string(g.cells[r*g.Width : (r+1)*g.Width])
	}
	return rows
}

// blackOrEdgeLeft reports whether the cell left of index is a block or off
// the grid.
func (g *Grid) blackOrEdgeLeft(index int) bool {
	return g.Col(index) == 0 || g.IsBlack(index-1)
}

func (g *Grid) blackOrEdgeAbove(index int) bool {
	return g.Row(index) == 0 || g.IsBlack(index-g.Width)
}

// AcrossLen counts the open cells from index rightwards, index included,
// stopping at a block or the edge.
func (g *Grid) AcrossLen(index int) int {
	n := 0
	for col := g.Col(index); col < g.Width && !g.IsBlack(index+n); col++ {
		n++
	}
	return n
}

// DownLen counts the open cells from index downwards, index included.
func (g *Grid) DownLen(index int) int {
	n := 0
	for row := g.Row(index); row < g.Height && !g.IsBlack(index+n*g.Width); row++ {
		n++
	}
	return n
}
