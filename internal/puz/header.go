package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Marker is the literal that identifies a puzzle file. The header starts two
// bytes before it.
const Marker = "ACROSS&DOWN"

// HeaderSize is the length of the fixed header record.
const HeaderSize = 0x34

type PuzzleType uint16

const (
	Normal      PuzzleType = 0x0001
	Diagramless PuzzleType = 0x0401
)

func ParsePuzzleType(code uint16) (PuzzleType, error) {
	switch t := PuzzleType(code); t {
	case Normal, Diagramless:
		return t, nil
	}
	return 0, fmt.Errorf("puzzle type 0x%04x: %w", code, ErrUnknownCode)
}

func (t PuzzleType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Diagramless:
		return "diagramless"
	default:
		return fmt.Sprintf("PuzzleType(0x%04x)", uint16(t))
	}
}

// BlackSquare is the character this type of puzzle writes for blocks.
func (t PuzzleType) BlackSquare() rune {
	if t == Diagramless {
		return ':'
	}
	return '.'
}

type SolutionState uint16

const (
	Unlocked SolutionState = 0x0000
	// Locked solutions are scrambled with a four digit key.
	Locked SolutionState = 0x0004
)

func ParseSolutionState(code uint16) (SolutionState, error) {
	switch s := SolutionState(code); s {
	case Unlocked, Locked:
		return s, nil
	}
	return 0, fmt.Errorf("solution state 0x%04x: %w", code, ErrUnknownCode)
}

func (s SolutionState) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("SolutionState(0x%04x)", uint16(s))
	}
}

type Header struct {
	GlobalChecksum    uint16
	HeaderChecksum    uint16
	MagicChecksum     uint64
	FileVersion       string
	ScrambledChecksum uint16

	Width         int
	Height        int
	ClueCount     int
	PuzzleType    PuzzleType
	SolutionState SolutionState
}

// ReadHeader decodes the fixed header record at the cursor.
func ReadHeader(c *Cursor) (*Header, error) {
	h := &Header{}
	var err error

	if h.GlobalChecksum, err = c.ReadUint16(); err != nil {
		return nil, fmt.Errorf("parse global checksum: %w", err)
	}

	marker, err := c.Read(len(Marker))
	if err != nil {
		return nil, fmt.Errorf("parse marker: %w", err)
	}
	if !bytes.Equal(marker, []byte(Marker)) {
		return nil, fmt.Errorf("parse marker: found %q: %w", marker, ErrBadMarker)
	}

	if err := c.Skip(1); err != nil {
		return nil, fmt.Errorf("parse pad byte: %w", err)
	}

	if h.HeaderChecksum, err = c.ReadUint16(); err != nil {
		return nil, fmt.Errorf("parse header checksum: %w", err)
	}

	if h.MagicChecksum, err = c.ReadUint64(); err != nil {
		return nil, fmt.Errorf("parse magic checksum: %w", err)
	}

	// 4 bytes on disk; the last is a trailing NUL.
	version, err := c.Read(4)
	if err != nil {
		return nil, fmt.Errorf("parse file version: %w", err)
	}
	h.FileVersion = string(version[:3])

	if err := c.Skip(2); err != nil {
		return nil, fmt.Errorf("parse reserved bytes: %w", err)
	}

	if h.ScrambledChecksum, err = c.ReadUint16(); err != nil {
		return nil, fmt.Errorf("parse scrambled checksum: %w", err)
	}

	if err := c.Skip(12); err != nil {
		return nil, fmt.Errorf("parse reserved bytes: %w", err)
	}

	width, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("parse width: %w", err)
	}
	h.Width = int(width)

	height, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("parse height: %w", err)
	}
	h.Height = int(height)

	clueCount, err := c.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("parse clue count: %w", err)
	}
	h.ClueCount = int(clueCount)

	typeCode, err := c.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("parse puzzle type: %w", err)
	}
	if h.PuzzleType, err = ParsePuzzleType(typeCode); err != nil {
		return nil, fmt.Errorf("parse puzzle type: %w", err)
	}

	stateCode, err := c.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("parse solution state: %w", err)
	}
	if h.SolutionState, err = ParseSolutionState(stateCode); err != nil {
		return nil, fmt.Errorf("parse solution state: %w", err)
	}

	return h, nil
}

// Version splits FileVersion into its major and minor numbers.
func (h *Header) Version() (major, minor int, err error) {
	parts := strings.Split(h.FileVersion, ".")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("version %q has %d parts, want 2: %w", h.FileVersion, len(parts), ErrBadVersion)
	}

	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("major version %q: %w", parts[0], ErrBadVersion)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("minor version %q: %w", parts[1], ErrBadVersion)
	}

	return major, minor, nil
}

// AtLeast reports whether the file version is major.minor or newer.
func (h *Header) AtLeast(major, minor int) (bool, error) {
	gotMajor, gotMinor, err := h.Version()
	if err != nil {
		return false, err
	}
	return gotMajor > major || (gotMajor == major && gotMinor >= minor), nil
}

func (h *Header) Cells() int {
	return h.Width * h.Height
}

// CalculateChecksum checksums the packed width, height, clue count, puzzle
// type and solution state. The rest of the header does not contribute.
func (h *Header) CalculateChecksum() uint16 {
	buf := make([]byte, 0, 8)
	buf = append(buf, uint8(h.Width), uint8(h.Height))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(h.ClueCount))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(h.PuzzleType))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(h.SolutionState))
	return Checksum(buf, 0)
}
