package db

import (
	"context"
)

const createClue = `-- name: CreateClue :exec
INSERT INTO clues (puzzle_id, number, direction, text, cell_row, cell_col, length)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type CreateClueParams struct {
	PuzzleID  string
	Number    int64
	Direction string
	Text      string
	Row       int64
	Col       int64
	Length    int64
}

func (q *Queries) CreateClue(ctx context.Context, arg CreateClueParams) error {
	_, err := q.db.ExecContext(ctx, createClue,
		arg.PuzzleID,
		arg.Number,
		arg.Direction,
		arg.Text,
		arg.Row,
		arg.Col,
		arg.Length,
	)
	return err
}

const getClues = `-- name: GetClues :many
SELECT puzzle_id, number, direction, text, cell_row, cell_col, length FROM clues
WHERE puzzle_id = ?
ORDER BY direction, number`

func (q *Queries) GetClues(ctx context.Context, puzzleID string) ([]Clue, error) {
	rows, err := q.db.QueryContext(ctx, getClues, puzzleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Clue
	for rows.Next() {
		var i Clue
		if err := rows.Scan(
			&i.PuzzleID,
			&i.Number,
			&i.Direction,
			&i.Text,
			&i.Row,
			&i.Col,
			&i.Length,
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

const createExtension = `-- name: CreateExtension :exec
INSERT INTO extensions (puzzle_id, position, code, data)
VALUES (?, ?, ?, ?)`

type CreateExtensionParams struct {
	PuzzleID string
	Position int64
	Code     string
	Data     []byte
}

func (q *Queries) CreateExtension(ctx context.Context, arg CreateExtensionParams) error {
	_, err := q.db.ExecContext(ctx, createExtension,
		arg.PuzzleID,
		arg.Position,
		arg.Code,
		arg.Data,
	)
	return err
}

const getExtensions = `-- name: GetExtensions :many
SELECT puzzle_id, position, code, data FROM extensions
WHERE puzzle_id = ?
ORDER BY position`

func (q *Queries) GetExtensions(ctx context.Context, puzzleID string) ([]Extension, error) {
	rows, err := q.db.QueryContext(ctx, getExtensions, puzzleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Extension
	for rows.Next() {
		var i Extension
		if err := rows.Scan(
			&i.PuzzleID,
			&i.Position,
			&i.Code,
			&i.Data,
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

const deleteClues = `-- name: DeleteClues :exec
DELETE FROM clues WHERE puzzle_id = ?`

func (q *Queries) DeleteClues(ctx context.Context, puzzleID string) error {
	_, err := q.db.ExecContext(ctx, deleteClues, puzzleID)
	return err
}

const deleteExtensions = `-- name: DeleteExtensions :exec
DELETE FROM extensions WHERE puzzle_id = ?`

func (q *Queries) DeleteExtensions(ctx context.Context, puzzleID string) error {
	_, err := q.db.ExecContext(ctx, deleteExtensions, puzzleID)
	return err
}
