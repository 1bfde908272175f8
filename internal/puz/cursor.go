package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Cursor reads sequentially through an immutable buffer. It never copies or
// modifies the underlying bytes.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Seen returns the bytes before the current offset.
func (c *Cursor) Seen() []byte {
	return c.data[:c.pos:c.pos]
}

// Upcoming returns the bytes from the current offset to the end.
func (c *Cursor) Upcoming() []byte {
	return c.data[c.pos:]
}

// SeekTo finds the first occurrence of marker at or after the current offset
// and moves to the match start plus offset. Offset may be negative.
func (c *Cursor) SeekTo(marker []byte, offset int) error {
	idx := bytes.Index(c.data[c.pos:], marker)
	if idx < 0 {
		return fmt.Errorf("cannot find %q in data: %w", marker, ErrMarkerNotFound)
	}

	target := c.pos + idx + offset
	if target < 0 || target > len(c.data) {
		return fmt.Errorf("seek to %d relative to %q: %w", offset, marker, ErrUnexpectedEOF)
	}

	c.pos = target
	return nil
}

// Read returns the next n bytes as a sub-slice of the buffer.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, c.pos, ErrUnexpectedEOF)
	}

	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.Read(n)
	return err
}

func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadZeroTerminated returns the bytes up to the next NUL and advances past
// the NUL. The terminator is not part of the result.
func (c *Cursor) ReadZeroTerminated() ([]byte, error) {
	end := bytes.IndexByte(c.data[c.pos:], 0)
	if end < 0 {
		return nil, fmt.Errorf("string at offset %d: %w", c.pos, ErrNoTerminator)
	}

	b := c.data[c.pos : c.pos+end : c.pos+end]
	c.pos += end + 1
	return b, nil
}

// ReadString reads a NUL-terminated field and decodes it with codec.
func (c *Cursor) ReadString(codec Codec, field string) (string, error) {
	raw, err := c.ReadZeroTerminated()
	if err != nil {
		return "", err
	}
	return codec.DecodeField(raw, field)
}

// ReadGrid reads exactly cells bytes and decodes them with codec. Grids
// carry no terminator.
func (c *Cursor) ReadGrid(cells int, codec Codec, field string) (string, error) {
	raw, err := c.Read(cells)
	if err != nil {
		return "", err
	}
	return codec.DecodeField(raw, field)
}
