package db

import (
	"time"
)

type Clue struct {
	PuzzleID  string
	Number    int64
	Direction string
	Text      string
	Row       int64
	Col       int64
	Length    int64
}

type Extension struct {
	PuzzleID string
	Position int64
	Code     string
	Data     []byte
}

type Puzzle struct {
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
