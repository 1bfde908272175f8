package puz

import (
	"fmt"
	"strconv"
	"strings"
)

// Rebus maps squares to multi-letter solutions. GRBS holds one byte per
// cell (0 for none, otherwise table key + 1) and RTBL holds the table as
// "NN:WORD;" entries.
type Rebus struct {
	table     []byte
	solutions map[int]string
}

// Rebus reads the rebus extensions. A puzzle without them has an empty
// rebus.
func (p *Puzzle) Rebus() (*Rebus, error) {
	r := &Rebus{solutions: map[int]string{}}

	grbs, ok := p.Extension(ExtRebus)
	if !ok {
		return r, nil
	}
	if len(grbs.Data) != p.Header.Cells() {
		return nil, fmt.Errorf("%s: %w: %d bytes for %d cells", ExtRebus, ErrGridShape, len(grbs.Data), p.Header.Cells())
	}
	r.table = grbs.Data

	if rtbl, ok := p.Extension(ExtRebusSolutions); ok {
		enc, err := p.Encoding()
		if err != nil {
			return nil, err
		}
		text, err := enc.Decode(rtbl.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ExtRebusSolutions, err)
		}
		for _, entry := range strings.Split(text, ";") {
			key, word, found := strings.Cut(entry, ":")
			if !found {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil {
				return nil, fmt.Errorf("%s: entry %q: %w", ExtRebusSolutions, entry, err)
			}
			r.solutions[n] = word
		}
	}

	return r, nil
}

func (r *Rebus) HasRebus() bool {
	return len(r.Squares()) > 0
}

// Squares lists the cell indexes that hold a rebus.
func (r *Rebus) Squares() []int {
	var squares []int
	for i, b := range r.table {
		if b != 0 {
			squares = append(squares, i)
		}
	}
	return squares
}

func (r *Rebus) IsRebusSquare(index int) bool {
	return index >= 0 && index < len(r.table) && r.table[index] != 0
}

// SolutionAt returns the full answer for a rebus square.
func (r *Rebus) SolutionAt(index int) (string, bool) {
	if !r.IsRebusSquare(index) {
		return "", false
	}
	word, ok := r.solutions[int(r.table[index])-1]
	return word, ok
}

// UserRebus returns the solver's multi-letter entries from RUSR, one per
// cell with "" where there is none. It is nil when the extension is absent.
func (p *Puzzle) UserRebus() ([]string, error) {
	ext, ok := p.Extension(ExtUserRebus)
	if !ok {
		return nil, nil
	}

	enc, err := p.Encoding()
	if err != nil {
		return nil, err
	}

	c := NewCursor(ext.Data)
	entries := make([]string, p.Header.Cells())
	for i := range entries {
		raw, err := c.ReadZeroTerminated()
		if err != nil {
			return nil, fmt.Errorf("%s: cell %d of %d: %w", ExtUserRebus, i, len(entries), err)
		}
		if entries[i], err = enc.Decode(raw); err != nil {
			return nil, fmt.Errorf("%s: cell %d: %w", ExtUserRebus, i, err)
		}
	}
	if c.Remaining() != 0 {
		return nil, fmt.Errorf("%s: %w: %d bytes left after %d cells", ExtUserRebus, ErrGridShape, c.Remaining(), len(entries))
	}
	return entries, nil
}
