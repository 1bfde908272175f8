package app

import (
	"context"
	"time"

	"puzshelf/internal/puz"
)

type PuzzleDetail struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Copyright     string    `json:"copyright"`
	Notes         string    `json:"notes"`
	Version       string    `json:"version"`
	Encoding      string    `json:"encoding"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	ClueCount     int       `json:"clue_count"`
	PuzzleType    string    `json:"puzzle_type"`
	SolutionState string    `json:"solution_state"`
	Locked        bool      `json:"locked"`
	Rows          []string  `json:"rows"`
	Extensions    []string  `json:"extensions"`
	Rebus         []Rebus   `json:"rebus"`
	UserRebus     []Rebus   `json:"user_rebus"`
	Circled       []int     `json:"circled"`
	CreatedAt     time.Time `json:"created_at"`
}

type Rebus struct {
	Cell     int    `json:"cell"`
	Solution string `json:"solution"`
}

// Detail combines the stored row with what only the decoded file knows:
// grid rows, rebus squares, the solver's rebus entries and circled cells.
func (s *Service) Detail(ctx context.Context, id string) (*PuzzleDetail, error) {
	row, err := s.GetPuzzle(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.Decoded(ctx, id)
	if err != nil {
		return nil, err
	}

	grid, err := p.Grid()
	if err != nil {
		return nil, err
	}
	enc, err := p.Encoding()
	if err != nil {
		return nil, err
	}

	d := &PuzzleDetail{
		ID:            row.ID,
		Filename:      row.Filename,
		Title:         p.Title,
		Author:        p.Author,
		Copyright:     p.Copyright,
		Notes:         p.Notes,
		Version:       p.Header.FileVersion,
		Encoding:      enc.String(),
		Width:         p.Header.Width,
		Height:        p.Header.Height,
		ClueCount:     p.Header.ClueCount,
		PuzzleType:    p.Header.PuzzleType.String(),
		SolutionState: p.Header.SolutionState.String(),
		Locked:        p.IsSolutionLocked(),
		Rows:          grid.Rows(),
		Extensions:    []string{},
		Rebus:         []Rebus{},
		UserRebus:     []Rebus{},
		Circled:       []int{},
		CreatedAt:     row.CreatedAt,
	}

	for _, ext := range p.Extensions {
		d.Extensions = append(d.Extensions, ext.Code)
	}

	rebus, err := p.Rebus()
	if err != nil {
		return nil, err
	}
	for _, cell := range rebus.Squares() {
		solution, _ := rebus.SolutionAt(cell)
		d.Rebus = append(d.Rebus, Rebus{Cell: cell, Solution: solution})
	}

	userRebus, err := p.UserRebus()
	if err != nil {
		return nil, err
	}
	for cell, entry := range userRebus {
		if entry != "" {
			d.UserRebus = append(d.UserRebus, Rebus{Cell: cell, Solution: entry})
		}
	}

	markup, err := p.Markup()
	if err != nil {
		return nil, err
	}
	if circled := puz.CellsWith(markup, puz.MarkupCircled); len(circled) > 0 {
		d.Circled = circled
	}

	return d, nil
}
