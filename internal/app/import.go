package app

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"puzshelf/internal/db"
	"puzshelf/internal/puz"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidPuzzle     = errors.New("invalid puzzle")
)

const maxFilenameLen = 255

// ParsePuzzleFile decodes a .puz upload. Files without the extension are
// accepted when they carry the puzzle marker.
func ParsePuzzleFile(filename string, data []byte) (*puz.Puzzle, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".puz" && !bytes.Contains(data, []byte(puz.Marker)) {
		return nil, ErrUnsupportedFormat
	}

	p, err := puz.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}
	return p, nil
}

// Digest identifies an upload by content.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ImportPuzzle stores a decoded puzzle with its numbered clues and
// extensions. Uploading the same bytes twice returns the stored puzzle and
// created=false.
func (s *Service) ImportPuzzle(ctx context.Context, filename string, data []byte) (*db.Puzzle, bool, error) {
	p, err := ParsePuzzleFile(filename, data)
	if err != nil {
		return nil, false, err
	}

	clues, err := p.Clues()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}

	digest := Digest(data)
	existing, err := s.Queries.GetPuzzleByDigest(ctx, digest)
	if err == nil {
		log.Printf("Import of %q matched existing puzzle %s", filename, existing.ID)
		return &existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("looking up digest: %w", err)
	}

	return s.storePuzzle(ctx, filename, data, digest, p, clues)
}

// storePuzzle inserts the puzzle, its clues and extensions in one
// transaction. A concurrent import of the same bytes that committed first
// wins; its row is returned with created=false.
func (s *Service) storePuzzle(ctx context.Context, filename string, data []byte, digest string, p *puz.Puzzle, clues *puz.Clues) (*db.Puzzle, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()
	qtx := s.Queries.WithTx(tx)

	id := uuid.NewString()
	created, err := qtx.CreatePuzzle(ctx, db.CreatePuzzleParams{
		ID:            id,
		Digest:        digest,
		Filename:      cleanFilename(filename),
		Title:         p.Title,
		Author:        p.Author,
		Copyright:     p.Copyright,
		Notes:         p.Notes,
		Version:       p.Header.FileVersion,
		Width:         int64(p.Header.Width),
		Height:        int64(p.Header.Height),
		ClueCount:     int64(p.Header.ClueCount),
		PuzzleType:    p.Header.PuzzleType.String(),
		SolutionState: p.Header.SolutionState.String(),
		Solution:      p.Solution,
		Fill:          p.Fill,
		Raw:           data,
		CreatedAt:     time.Now().UTC().Round(0),
	})
	if db.IsUniqueViolation(err) {
		// Release the connection before reading outside the transaction.
		tx.Rollback()
		existing, lookupErr := s.Queries.GetPuzzleByDigest(ctx, digest)
		if lookupErr == nil {
			log.Printf("Import of %q lost a race to puzzle %s", filename, existing.ID)
			return &existing, false, nil
		}
		return nil, false, fmt.Errorf("creating puzzle: %w", err)
	}
	if err != nil {
		return nil, false, fmt.Errorf("creating puzzle: %w", err)
	}

	for _, list := range [][]puz.Clue{clues.Across, clues.Down} {
		for _, c := range list {
			err := qtx.CreateClue(ctx, db.CreateClueParams{
				PuzzleID:  id,
				Number:    int64(c.Number),
				Direction: string(c.Direction),
				Text:      c.Text,
				Row:       int64(c.Row),
				Col:       int64(c.Col),
				Length:    int64(c.Length),
			})
			if err != nil {
				return nil, false, fmt.Errorf("creating clue %d %s: %w", c.Number, c.Direction, err)
			}
		}
	}

	for i, ext := range p.Extensions {
		err := qtx.CreateExtension(ctx, db.CreateExtensionParams{
			PuzzleID: id,
			Position: int64(i),
			Code:     ext.Code,
			Data:     ext.Data,
		})
		if err != nil {
			return nil, false, fmt.Errorf("creating extension %s: %w", ext.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	log.Printf("Imported %q as puzzle %s (%dx%d, %d clues)", filename, id, p.Header.Width, p.Header.Height, clues.Len())
	s.publish(SubjectImported, PuzzleEvent{ID: id, Title: created.Title, Digest: digest})

	return &created, true, nil
}

func cleanFilename(filename string) string {
	name := strings.TrimSpace(filepath.Base(filename))
	if name == "." || name == string(filepath.Separator) {
		name = ""
	}
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}
