package puz

type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

type Clue struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	Text      string    `json:"text"`
	Cell      int       `json:"cell"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	// Length is the run length in the clue's own direction.
	Length int `json:"length"`
}

type Clues struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

func (c *Clues) Len() int {
	return len(c.Across) + len(c.Down)
}

// NumberClues scans g in row-major order and assigns numbers to every cell
// that starts an across or down entry of two or more cells. Texts are taken
// in order, across before down when both start at the same cell.
func NumberClues(g *Grid, texts []string) (*Clues, error) {
	clues := &Clues{}
	next := 0
	take := func() (string, bool) {
		if next >= len(texts) {
			return "", false
		}
		next++
		return texts[next-1], true
	}

	number := 1
	for i := 0; i < g.Len(); i++ {
		if g.IsBlack(i) {
			continue
		}

		numbered := false

		if acrossLen := g.AcrossLen(i); g.blackOrEdgeLeft(i) && acrossLen > 1 {
			text, ok := take()
			if !ok {
				return nil, ErrRanOutOfClues
			}
			clues.Across = append(clues.Across, newClue(g, i, number, DirectionAcross, text, acrossLen))
			numbered = true
		}

		if downLen := g.DownLen(i); g.blackOrEdgeAbove(i) && downLen > 1 {
			text, ok := take()
			if !ok {
				return nil, ErrRanOutOfClues
			}
			clues.Down = append(clues.Down, newClue(g, i, number, DirectionDown, text, downLen))
			numbered = true
		}

		if numbered {
			number++
		}
	}

	return clues, nil
}

func newClue(g *Grid, index, number int, dir Direction, text string, length int) Clue {
	return Clue{
		Number:    number,
		Direction: dir,
		Text:      text,
		Cell:      index,
		Row:       g.Row(index),
		Col:       g.Col(index),
		Length:    length,
	}
}

// AcrossAt returns the across clue whose run covers the cell.
func (c *Clues) AcrossAt(row, col int) (Clue, bool) {
	for _, clue := range c.Across {
		if clue.Row == row && col >= clue.Col && col < clue.Col+clue.Length {
			return clue, true
		}
	}
	return Clue{}, false
}

// DownAt returns the down clue whose run covers the cell.
func (c *Clues) DownAt(row, col int) (Clue, bool) {
	for _, clue := range c.Down {
		if clue.Col == col && row >= clue.Row && row < clue.Row+clue.Length {
			return clue, true
		}
	}
	return Clue{}, false
}

// Number returns the clue with the given number and direction.
func (c *Clues) Number(number int, dir Direction) (Clue, bool) {
	list := c.Across
	if dir == DirectionDown {
		list = c.Down
	}
	for _, clue := range list {
		if clue.Number == number {
			return clue, true
		}
	}
	return Clue{}, false
}
