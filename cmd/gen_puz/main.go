package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"
	"path/filepath"

	"puzshelf/internal/puz"
)

const testdata = "internal/puz/testdata"

func main() {
	fixtures := map[string]*puz.Puzzle{
		"sample.puz": {
			Header: puz.Header{
				FileVersion:   "1.3",
				Width:         5,
				Height:        5,
				PuzzleType:    puz.Normal,
				SolutionState: puz.Unlocked,
			},
			Title:     "Sample Title",
			Author:    "Sample Author",
			Copyright: "Sample Copyright",
			Notes:     "Notes",
			Solution:  "ABCDE" + "F.G.H" + "IJKLM" + "N.O.P" + "QRSTU",
			Fill:      "-----" + "-.-.-" + "-----" + "-.-.-" + "-----",
			AllClues: []string{
				"First row", "First column", "Middle column", "Last column", "Middle row", "Last row",
			},
		},
		// Version 2.0 with empty notes: the notes NUL still counts.
		"unicode_no_notes.puz": {
			Header: puz.Header{
				FileVersion:   "2.0",
				Width:         3,
				Height:        3,
				PuzzleType:    puz.Normal,
				SolutionState: puz.Unlocked,
			},
			Title:    "⚔️",
			Author:   "Auteur",
			Solution: "CATASHTEA",
			Fill:     "---------",
			AllClues: []string{
				"Félin", "Taxi", "Outil", "Arrêt", "Thé", "Toit",
			},
		},
	}

	for name, p := range fixtures {
		data, err := encode(p)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}

		// Refuse to write a file the decoder would reject.
		if _, err := puz.Decode(data); err != nil {
			log.Fatalf("%s: generated puzzle does not decode: %v", name, err)
		}

		if err := os.WriteFile(filepath.Join(testdata, name), data, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s: %d bytes (global %d, header %d, magic %d)",
			name, len(data), p.Header.GlobalChecksum, p.Header.HeaderChecksum, p.Header.MagicChecksum)
	}
}

// encode fills in the clue count and checksums of p and lays it out on disk.
func encode(p *puz.Puzzle) ([]byte, error) {
	p.Header.ClueCount = len(p.AllClues)

	p.Header.HeaderChecksum = p.Header.CalculateChecksum()
	global, err := p.GlobalChecksum()
	if err != nil {
		return nil, err
	}
	p.Header.GlobalChecksum = global
	if p.Header.MagicChecksum, err = p.MagicChecksum(); err != nil {
		return nil, err
	}

	enc, err := p.Encoding()
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	// Header (0x34 bytes)
	binary.Write(&b, binary.LittleEndian, p.Header.GlobalChecksum)
	b.WriteString(puz.Marker + "\x00")
	binary.Write(&b, binary.LittleEndian, p.Header.HeaderChecksum)
	binary.Write(&b, binary.LittleEndian, p.Header.MagicChecksum)
	b.WriteString(p.Header.FileVersion + "\x00")
	b.Write(make([]byte, 2)) // Reserved
	binary.Write(&b, binary.LittleEndian, p.Header.ScrambledChecksum)
	b.Write(make([]byte, 12)) // Reserved
	b.Write([]byte{uint8(p.Header.Width), uint8(p.Header.Height)})
	binary.Write(&b, binary.LittleEndian, uint16(p.Header.ClueCount))
	binary.Write(&b, binary.LittleEndian, uint16(p.Header.PuzzleType))
	binary.Write(&b, binary.LittleEndian, uint16(p.Header.SolutionState))

	fields := []string{p.Solution, p.Fill}
	for _, f := range fields {
		raw, err := enc.Encode(f)
		if err != nil {
			return nil, err
		}
		b.Write(raw)
	}

	strs := append([]string{p.Title, p.Author, p.Copyright}, p.AllClues...)
	strs = append(strs, p.Notes)
	for _, s := range strs {
		raw, err := enc.Encode(s)
		if err != nil {
			return nil, err
		}
		b.Write(raw)
		b.WriteByte(0)
	}

	return b.Bytes(), nil
}
