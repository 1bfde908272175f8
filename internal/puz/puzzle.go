// Package puz decodes Across Lite .puz crossword files.
//
// Decode walks the file in its fixed field order, then recomputes the
// header, global and magic checksums and rejects the file if any of them
// disagree with the header. Clue numbering is derived from the fill grid on
// demand with Puzzle.Clues.
package puz

import (
	"fmt"
)

// maskString obfuscates the magic checksum.
const maskString = "ICHEATED"

type Puzzle struct {
	// Preamble holds any bytes before the header.
	Preamble []byte
	Header   Header
	// Postscript holds bytes after the last extension, often "\r\n".
	Postscript []byte

	Title     string
	Author    string
	Copyright string
	Notes     string

	Fill     string
	Solution string

	// AllClues are the clue texts in file order, across and down
	// interleaved by grid position.
	AllClues   []string
	Extensions []Extension
}

// Decode parses and validates a puzzle file. Nothing is returned unless
// every checksum matches.
func Decode(data []byte) (*Puzzle, error) {
	c := NewCursor(data)

	if err := c.SeekTo([]byte(Marker), -2); err != nil {
		return nil, err
	}
	p := &Puzzle{Preamble: c.Seen()}

	header, err := ReadHeader(c)
	if err != nil {
		return nil, err
	}
	p.Header = *header

	codec, err := NewCodec(header)
	if err != nil {
		return nil, err
	}

	cells := header.Cells()
	if p.Solution, err = c.ReadGrid(cells, codec, "solution"); err != nil {
		return nil, fmt.Errorf("parse solution: %w", err)
	}
	if p.Fill, err = c.ReadGrid(cells, codec, "fill"); err != nil {
		return nil, fmt.Errorf("parse fill: %w", err)
	}

	if p.Title, err = c.ReadString(codec, "title"); err != nil {
		return nil, fmt.Errorf("parse title: %w", err)
	}
	if p.Author, err = c.ReadString(codec, "author"); err != nil {
		return nil, fmt.Errorf("parse author: %w", err)
	}
	if p.Copyright, err = c.ReadString(codec, "copyright"); err != nil {
		return nil, fmt.Errorf("parse copyright: %w", err)
	}

	p.AllClues = make([]string, 0, header.ClueCount)
	for i := 0; i < header.ClueCount; i++ {
		clue, err := c.ReadString(codec, fmt.Sprintf("clue #%d", i))
		if err != nil {
			return nil, fmt.Errorf("parse clue #%d of %d: %w", i, header.ClueCount, err)
		}
		p.AllClues = append(p.AllClues, clue)
	}

	if p.Notes, err = c.ReadString(codec, "notes"); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}

	if p.Extensions, err = ReadExtensions(c); err != nil {
		return nil, fmt.Errorf("parse extensions: %w", err)
	}

	p.Postscript = c.Upcoming()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate recomputes the header, global and magic checksums and compares
// them with the values declared in the header.
func (p *Puzzle) Validate() error {
	if calculated := p.Header.CalculateChecksum(); calculated != p.Header.HeaderChecksum {
		return &ChecksumError{Kind: "header", Calculated: uint64(calculated), Declared: uint64(p.Header.HeaderChecksum)}
	}

	global, err := p.GlobalChecksum()
	if err != nil {
		return fmt.Errorf("calculate global checksum: %w", err)
	}
	if global != p.Header.GlobalChecksum {
		return &ChecksumError{Kind: "global", Calculated: uint64(global), Declared: uint64(p.Header.GlobalChecksum)}
	}

	magic, err := p.MagicChecksum()
	if err != nil {
		return fmt.Errorf("calculate magic checksum: %w", err)
	}
	if magic != p.Header.MagicChecksum {
		return &ChecksumError{Kind: "magic", Calculated: magic, Declared: p.Header.MagicChecksum}
	}

	return nil
}

// Encoding is the text codec implied by the header's file version.
func (p *Puzzle) Encoding() (Encoding, error) {
	major, _, err := p.Header.Version()
	if err != nil {
		return 0, err
	}
	return SelectEncoding(major), nil
}

// GlobalChecksum chains the declared header checksum through the encoded
// solution, the encoded fill and the text fields.
func (p *Puzzle) GlobalChecksum() (uint16, error) {
	enc, err := p.Encoding()
	if err != nil {
		return 0, err
	}

	solution, fill, err := p.encodedGrids(enc)
	if err != nil {
		return 0, err
	}

	sum := Checksum(solution, p.Header.HeaderChecksum)
	sum = Checksum(fill, sum)
	return p.TextChecksum(sum)
}

// TextChecksum folds the text fields into seed. Title, author and copyright
// count with their NUL only when non-empty, clues count without a NUL and
// only when non-empty. Notes count with their NUL from version 1.3 when
// non-empty, and always from version 2.0.
func (p *Puzzle) TextChecksum(seed uint16) (uint16, error) {
	enc, err := p.Encoding()
	if err != nil {
		return 0, err
	}

	sum := seed
	for _, field := range []string{p.Title, p.Author, p.Copyright} {
		if field == "" {
			continue
		}
		b, err := enc.encodeZeroTerminated(field)
		if err != nil {
			return 0, err
		}
		sum = Checksum(b, sum)
	}

	for i, clue := range p.AllClues {
		if clue == "" {
			continue
		}
		b, err := enc.Encode(clue)
		if err != nil {
			return 0, fmt.Errorf("clue #%d: %w", i, err)
		}
		sum = Checksum(b, sum)
	}

	major, _, err := p.Header.Version()
	if err != nil {
		return 0, err
	}
	fromV13, err := p.Header.AtLeast(1, 3)
	if err != nil {
		return 0, err
	}
	// From 2.0 the notes NUL is counted even when the notes are empty.
	if major >= 2 || (fromV13 && p.Notes != "") {
		b, err := enc.encodeZeroTerminated(p.Notes)
		if err != nil {
			return 0, err
		}
		sum = Checksum(b, sum)
	}

	return sum, nil
}

// MagicChecksum packs four independent checksums, each masked with a
// character of maskString, into one 64-bit value.
func (p *Puzzle) MagicChecksum() (uint64, error) {
	enc, err := p.Encoding()
	if err != nil {
		return 0, err
	}

	solution, fill, err := p.encodedGrids(enc)
	if err != nil {
		return 0, err
	}

	text, err := p.TextChecksum(0)
	if err != nil {
		return 0, err
	}

	sums := [4]uint16{
		p.Header.CalculateChecksum(),
		Checksum(solution, 0),
		Checksum(fill, 0),
		text,
	}

	var magic uint64
	for i := len(sums) - 1; i >= 0; i-- {
		magic <<= 8
		magic |= uint64(maskString[i] ^ byte(sums[i]&0xff))
		magic |= uint64(maskString[i+4]^byte(sums[i]>>8)) << 32
	}

	return magic, nil
}

func (p *Puzzle) encodedGrids(enc Encoding) (solution, fill []byte, err error) {
	if solution, err = enc.Encode(p.Solution); err != nil {
		return nil, nil, fmt.Errorf("encode solution: %w", err)
	}
	if fill, err = enc.Encode(p.Fill); err != nil {
		return nil, nil, fmt.Errorf("encode fill: %w", err)
	}
	return solution, fill, nil
}

// Extension returns the first extension with the given code.
func (p *Puzzle) Extension(code string) (Extension, bool) {
	for _, ext := range p.Extensions {
		if ext.Code == code {
			return ext, true
		}
	}
	return Extension{}, false
}

func (p *Puzzle) IsSolutionLocked() bool {
	return p.Header.SolutionState != Unlocked
}

// Grid returns the fill laid out by the header dimensions.
func (p *Puzzle) Grid() (*Grid, error) {
	return NewGrid(p.Fill, p.Header.Width, p.Header.Height)
}

// Clues numbers the grid and pairs each entry with its text. The result must
// account for every clue the header declares.
func (p *Puzzle) Clues() (*Clues, error) {
	grid, err := p.Grid()
	if err != nil {
		return nil, err
	}

	clues, err := NumberClues(grid, p.AllClues)
	if err != nil {
		return nil, err
	}

	if clues.Len() != p.Header.ClueCount {
		return nil, fmt.Errorf("%w: numbered %d, header declares %d", ErrClueCountMismatch, clues.Len(), p.Header.ClueCount)
	}

	return clues, nil
}
