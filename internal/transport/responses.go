package transport

import (
	"time"
)

type puzzleSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Version    string    `json:"version"`
	Width      int64     `json:"width"`
	Height     int64     `json:"height"`
	ClueCount  int64     `json:"clue_count"`
	PuzzleType string    `json:"puzzle_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type importResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Digest   string `json:"digest"`
	Created  bool   `json:"created"`
}
