package puz

import (
	"fmt"
)

// Known extension codes.
const (
	ExtRebus          = "GRBS"
	ExtRebusSolutions = "RTBL"
	ExtTimer          = "LTIM"
	ExtMarkup         = "GEXT"
	ExtUserRebus      = "RUSR"
)

// extensionHeaderSize covers the code, length and checksum.
const extensionHeaderSize = 8

type Extension struct {
	Code string
	Data []byte
}

// ReadExtensions decodes extension blocks until the remaining bytes cannot
// start another block. A block is only attempted when a full header is
// available and its code is printable ASCII; anything else is left for the
// postscript. Once a block has started, truncation is an error.
func ReadExtensions(c *Cursor) ([]Extension, error) {
	var extensions []Extension

	for startsExtension(c.Upcoming()) {
		code, _ := c.Read(4)
		length, _ := c.ReadUint16()
		declared, _ := c.ReadUint16()

		data, err := c.Read(int(length))
		if err != nil {
			return nil, fmt.Errorf("extension %s: read %d bytes: %w", code, length, err)
		}

		// Payloads may contain NULs, so the trailing byte is only skipped.
		if err := c.Skip(1); err != nil {
			return nil, fmt.Errorf("extension %s: trailing byte: %w", code, err)
		}

		if calculated := Checksum(data, 0); calculated != declared {
			return nil, &ChecksumError{
				Kind:       "extension " + string(code),
				Calculated: uint64(calculated),
				Declared:   uint64(declared),
			}
		}

		extensions = append(extensions, Extension{Code: string(code), Data: data})
	}

	return extensions, nil
}

func startsExtension(upcoming []byte) bool {
	if len(upcoming) < extensionHeaderSize {
		return false
	}
	for _, b := range upcoming[:4] {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
