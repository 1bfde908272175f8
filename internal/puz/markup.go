package puz

import "fmt"

// Markup is a per-cell bit field carried in the GEXT extension.
type Markup byte

const (
	MarkupDefault             Markup = 0x00
	MarkupPreviouslyIncorrect Markup = 0x10
	MarkupIncorrect           Markup = 0x20
	MarkupRevealed            Markup = 0x40
	MarkupCircled             Markup = 0x80
)

func (m Markup) Has(flag Markup) bool {
	return m&flag != 0
}

// Markup returns the per-cell markup, or nil when the puzzle has none.
func (p *Puzzle) Markup() ([]Markup, error) {
	ext, ok := p.Extension(ExtMarkup)
	if !ok {
		return nil, nil
	}
	if len(ext.Data) != p.Header.Cells() {
		return nil, fmt.Errorf("%s: %w: %d bytes for %d cells", ExtMarkup, ErrGridShape, len(ext.Data), p.Header.Cells())
	}

	markup := make([]Markup, len(ext.Data))
	for i, b := range ext.Data {
		markup[i] = Markup(b)
	}
	return markup, nil
}

// CellsWith lists the indexes whose markup carries flag.
func CellsWith(markup []Markup, flag Markup) []int {
	var cells []int
	for i, m := range markup {
		if m.Has(flag) {
			cells = append(cells, i)
		}
	}
	return cells
}
