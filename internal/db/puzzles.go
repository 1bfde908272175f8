package db

import (
	"context"
	"time"
)

const puzzleColumns = `id, digest, filename, title, author, copyright, notes, version, width, height, clue_count, puzzle_type, solution_state, solution, fill, raw, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPuzzle(row rowScanner) (Puzzle, error) {
	var i Puzzle
	err := row.Scan(
		&i.ID,
		&i.Digest,
		&i.Filename,
		&i.Title,
		&i.Author,
		&i.Copyright,
		&i.Notes,
		&i.Version,
		&i.Width,
		&i.Height,
		&i.ClueCount,
		&i.PuzzleType,
		&i.SolutionState,
		&i.Solution,
		&i.Fill,
		&i.Raw,
		&i.CreatedAt,
	)
	return i, err
}

const createPuzzle = `-- name: CreatePuzzle :one
INSERT INTO puzzles (` + puzzleColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + puzzleColumns

type CreatePuzzleParams struct {
	ID            string
	Digest        string
	Filename      string
	Title         string
	Author        string
	Copyright     string
	Notes         string
	Version       string
	Width         int64
	Height        int64
	ClueCount     int64
	PuzzleType    string
	SolutionState string
	Solution      string
	Fill          string
	Raw           []byte
	CreatedAt     time.Time
}

func (q *Queries) CreatePuzzle(ctx context.Context, arg CreatePuzzleParams) (Puzzle, error) {
	row := q.db.QueryRowContext(ctx, createPuzzle,
		arg.ID,
		arg.Digest,
		arg.Filename,
		arg.Title,
		arg.Author,
		arg.Copyright,
		arg.Notes,
		arg.Version,
		arg.Width,
		arg.Height,
		arg.ClueCount,
		arg.PuzzleType,
		arg.SolutionState,
		arg.Solution,
		arg.Fill,
		arg.Raw,
		arg.CreatedAt,
	)
	return scanPuzzle(row)
}

const getPuzzle = `-- name: GetPuzzle :one
SELECT ` + puzzleColumns + ` FROM puzzles
WHERE id = ? LIMIT 1`

func (q *Queries) GetPuzzle(ctx context.Context, id string) (Puzzle, error) {
	row := q.db.QueryRowContext(ctx, getPuzzle, id)
	return scanPuzzle(row)
}

const getPuzzleByDigest = `-- name: GetPuzzleByDigest :one
SELECT ` + puzzleColumns + ` FROM puzzles
WHERE digest = ? LIMIT 1`

func (q *Queries) GetPuzzleByDigest(ctx context.Context, digest string) (Puzzle, error) {
	row := q.db.QueryRowContext(ctx, getPuzzleByDigest, digest)
	return scanPuzzle(row)
}

const listPuzzles = `-- name: ListPuzzles :many
SELECT id, filename, title, author, version, width, height, clue_count, puzzle_type, created_at
FROM puzzles
ORDER BY created_at DESC, id
LIMIT ? OFFSET ?`

type ListPuzzlesParams struct {
	Limit  int64
	Offset int64
}

type ListPuzzlesRow struct {
	ID         string
	Filename   string
	Title      string
	Author     string
	Version    string
	Width      int64
	Height     int64
	ClueCount  int64
	PuzzleType string
	CreatedAt  time.Time
}

func (q *Queries) ListPuzzles(ctx context.Context, arg ListPuzzlesParams) ([]ListPuzzlesRow, error) {
	rows, err := q.db.QueryContext(ctx, listPuzzles, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPuzzlesRow
	for rows.Next() {
		var i ListPuzzlesRow
		if err := rows.Scan(
			&i.ID,
			&i.Filename,
			&i.Title,
			&i.Author,
			&i.Version,
			&i.Width,
			&i.Height,
			&i.ClueCount,
			&i.PuzzleType,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deletePuzzle = `-- name: DeletePuzzle :execrows
DELETE FROM puzzles WHERE id = ?`

func (q *Queries) DeletePuzzle(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePuzzle, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
