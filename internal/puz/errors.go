package puz

import (
	"errors"
	"fmt"
)

var (
	ErrMarkerNotFound    = errors.New("marker not found")
	ErrUnexpectedEOF     = errors.New("unexpected end of data")
	ErrNoTerminator      = errors.New("no terminator found")
	ErrBadMarker         = errors.New("header does not carry the ACROSS&DOWN marker")
	ErrUnknownCode       = errors.New("not a known code")
	ErrBadVersion        = errors.New("malformed file version")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrRanOutOfClues     = errors.New("ran out of provided clues")
	ErrClueCountMismatch = errors.New("numbered clues do not match clue count")
	ErrGridShape         = errors.New("grid does not match puzzle dimensions")
)

// ChecksumError reports a recomputed checksum that disagrees with the value
// stored in the file. Kind is "header", "global", "magic" or
// "extension XXXX".
type ChecksumError struct {
	Kind       string
	Calculated uint64
	Declared   uint64
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s checksum %d does not match declared %d", e.Kind, e.Calculated, e.Declared)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// EncodingError is returned when bytes cannot be decoded with the codec
// selected from the file version.
type EncodingError struct {
	Codec   Encoding
	Version string
	Field   string
	Err     error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode %s as %s (file version %q): %v", e.Field, e.Codec, e.Version, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
