package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"puzshelf/internal/db"
	"puzshelf/internal/puz"
)

var (
	ErrNotFound        = errors.New("puzzle not found")
	ErrCellOutOfBounds = errors.New("cell out of bounds")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

func (s *Service) GetPuzzle(ctx context.Context, id string) (*db.Puzzle, error) {
	p, err := s.Queries.GetPuzzle(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading puzzle %s: %w", id, err)
	}
	return &p, nil
}

// ListPuzzles returns the newest puzzles first. A non-positive limit means
// DefaultListLimit.
func (s *Service) ListPuzzles(ctx context.Context, limit, offset int) ([]db.ListPuzzlesRow, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.Queries.ListPuzzles(ctx, db.ListPuzzlesParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []db.ListPuzzlesRow{}
	}
	return rows, nil
}

// GetClues rebuilds the numbered clue lists stored at import.
func (s *Service) GetClues(ctx context.Context, id string) (*puz.Clues, error) {
	p, err := s.GetPuzzle(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.Queries.GetClues(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading clues for %s: %w", id, err)
	}

	clues := &puz.Clues{Across: []puz.Clue{}, Down: []puz.Clue{}}
	for _, r := range rows {
		c := puz.Clue{
			Number:    int(r.Number),
			Direction: puz.Direction(r.Direction),
			Text:      r.Text,
			Cell:      int(r.Row*p.Width + r.Col),
			Row:       int(r.Row),
			Col:       int(r.Col),
			Length:    int(r.Length),
		}
		if c.Direction == puz.DirectionAcross {
			clues.Across = append(clues.Across, c)
		} else {
			clues.Down = append(clues.Down, c)
		}
	}
	return clues, nil
}

// CluesAt returns the across and down entries passing through a cell, across
// first. A block returns an empty list.
func (s *Service) CluesAt(ctx context.Context, id string, row, col int) ([]puz.Clue, error) {
	p, err := s.GetPuzzle(ctx, id)
	if err != nil {
		return nil, err
	}
	if row < 0 || col < 0 || int64(row) >= p.Height || int64(col) >= p.Width {
		return nil, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrCellOutOfBounds, row, col, p.Width, p.Height)
	}

	clues, err := s.GetClues(ctx, id)
	if err != nil {
		return nil, err
	}

	found := []puz.Clue{}
	if c, ok := clues.AcrossAt(row, col); ok {
		found = append(found, c)
	}
	if c, ok := clues.DownAt(row, col); ok {
		found = append(found, c)
	}
	return found, nil
}

// Decoded re-decodes the stored upload.
func (s *Service) Decoded(ctx context.Context, id string) (*puz.Puzzle, error) {
	p, err := s.GetPuzzle(ctx, id)
	if err != nil {
		return nil, err
	}

	decoded, err := puz.Decode(p.Raw)
	if err != nil {
		return nil, fmt.Errorf("decoding stored puzzle %s: %w", id, err)
	}
	return decoded, nil
}

func (s *Service) DeletePuzzle(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	qtx := s.Queries.WithTx(tx)

	if err := qtx.DeleteClues(ctx, id); err != nil {
		return fmt.Errorf("deleting clues: %w", err)
	}
	if err := qtx.DeleteExtensions(ctx, id); err != nil {
		return fmt.Errorf("deleting extensions: %w", err)
	}
	n, err := qtx.DeletePuzzle(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting puzzle: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.publish(SubjectDeleted, PuzzleEvent{ID: id})
	return nil
}
