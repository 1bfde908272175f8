package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"puzshelf/internal/puz"
)

func writeReport(w io.Writer, path string, p *puz.Puzzle, opts options) error {
	enc, err := p.Encoding()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  title:      %s\n", p.Title)
	fmt.Fprintf(w, "  author:     %s\n", p.Author)
	fmt.Fprintf(w, "  copyright:  %s\n", p.Copyright)
	fmt.Fprintf(w, "  version:    %s (%s)\n", p.Header.FileVersion, enc)
	fmt.Fprintf(w, "  size:       %dx%d, %d clues\n", p.Header.Width, p.Header.Height, p.Header.ClueCount)
	fmt.Fprintf(w, "  type:       %s, solution %s\n", p.Header.PuzzleType, p.Header.SolutionState)
	fmt.Fprintf(w, "  checksums:  global %d, header %d, magic %d\n",
		p.Header.GlobalChecksum, p.Header.HeaderChecksum, p.Header.MagicChecksum)
	if p.Notes != "" {
		fmt.Fprintf(w, "  notes:      %s\n", p.Notes)
	}

	if opts.grid {
		solution, err := puz.NewGrid(p.Solution, p.Header.Width, p.Header.Height)
		if err != nil {
			return err
		}
		fill, err := p.Grid()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "\nsolution / fill")
		sRows, fRows := solution.Rows(), fill.Rows()
		for i := range sRows {
			fmt.Fprintf(w, "  %s   %s\n", sRows[i], fRows[i])
		}
	}

	if opts.clues {
		clues, err := p.Clues()
		if err != nil {
			return err
		}
		for _, section := range []struct {
			name  string
			clues []puz.Clue
		}{{"across", clues.Across}, {"down", clues.Down}} {
			fmt.Fprintf(w, "\n%s\n", section.name)
			for _, c := range section.clues {
				fmt.Fprintf(w, "  %3d. %s (%d)\n", c.Number, c.Text, c.Length)
			}
		}
	}

	if opts.extensions {
		fmt.Fprintln(w, "\nextensions")
		if len(p.Extensions) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, ext := range p.Extensions {
			fmt.Fprintf(w, "  %s  %d bytes\n", ext.Code, len(ext.Data))
		}

		rebus, err := p.Rebus()
		if err != nil {
			return err
		}
		for _, cell := range rebus.Squares() {
			word, _ := rebus.SolutionAt(cell)
			fmt.Fprintf(w, "  rebus at %d: %s\n", cell, word)
		}

		markup, err := p.Markup()
		if err != nil {
			return err
		}
		if circled := puz.CellsWith(markup, puz.MarkupCircled); len(circled) > 0 {
			cells := make([]string, len(circled))
			for i, c := range circled {
				cells[i] = fmt.Sprint(c)
			}
			fmt.Fprintf(w, "  circled: %s\n", strings.Join(cells, ", "))
		}
	}

	return nil
}

type extensionSummary struct {
	Code   string `json:"code" yaml:"code"`
	Length int    `json:"length" yaml:"length"`
}

type clueSummary struct {
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"text" yaml:"text"`
	Row    int    `json:"row" yaml:"row"`
	Col    int    `json:"col" yaml:"col"`
	Length int    `json:"length" yaml:"length"`
}

type summary struct {
	Title         string             `json:"title" yaml:"title"`
	Author        string             `json:"author" yaml:"author"`
	Copyright     string             `json:"copyright" yaml:"copyright"`
	Notes         string             `json:"notes" yaml:"notes"`
	Version       string             `json:"version" yaml:"version"`
	Encoding      string             `json:"encoding" yaml:"encoding"`
	Width         int                `json:"width" yaml:"width"`
	Height        int                `json:"height" yaml:"height"`
	PuzzleType    string             `json:"puzzle_type" yaml:"puzzle_type"`
	SolutionState string             `json:"solution_state" yaml:"solution_state"`
	Solution      []string           `json:"solution" yaml:"solution"`
	Fill          []string           `json:"fill" yaml:"fill"`
	Across        []clueSummary      `json:"across" yaml:"across"`
	Down          []clueSummary      `json:"down" yaml:"down"`
	Extensions    []extensionSummary `json:"extensions" yaml:"extensions"`
}

func summaryClues(clues []puz.Clue) []clueSummary {
	out := make([]clueSummary, 0, len(clues))
	for _, c := range clues {
		out = append(out, clueSummary{Number: c.Number, Text: c.Text, Row: c.Row, Col: c.Col, Length: c.Length})
	}
	return out
}

func writeJSON(w io.Writer, p *puz.Puzzle) error {
	s, err := summarize(p)
	if err != nil {
		return err
	}
	out := json.NewEncoder(w)
	out.SetIndent("", "  ")
	return out.Encode(s)
}

func writeYAML(w io.Writer, p *puz.Puzzle) error {
	s, err := summarize(p)
	if err != nil {
		return err
	}
	out := yaml.NewEncoder(w)
	out.SetIndent(2)
	if err := out.Encode(s); err != nil {
		return err
	}
	return out.Close()
}

func summarize(p *puz.Puzzle) (*summary, error) {
	enc, err := p.Encoding()
	if err != nil {
		return nil, err
	}
	solution, err := puz.NewGrid(p.Solution, p.Header.Width, p.Header.Height)
	if err != nil {
		return nil, err
	}
	fill, err := p.Grid()
	if err != nil {
		return nil, err
	}
	clues, err := p.Clues()
	if err != nil {
		return nil, err
	}

	s := &summary{
		Title:         p.Title,
		Author:        p.Author,
		Copyright:     p.Copyright,
		Notes:         p.Notes,
		Version:       p.Header.FileVersion,
		Encoding:      enc.String(),
		Width:         p.Header.Width,
		Height:        p.Header.Height,
		PuzzleType:    p.Header.PuzzleType.String(),
		SolutionState: p.Header.SolutionState.String(),
		Solution:      solution.Rows(),
		Fill:          fill.Rows(),
		Across:        summaryClues(clues.Across),
		Down:          summaryClues(clues.Down),
		Extensions:    []extensionSummary{},
	}
	for _, ext := range p.Extensions {
		s.Extensions = append(s.Extensions, extensionSummary{Code: ext.Code, Length: len(ext.Data)})
	}
	return s, nil
}
