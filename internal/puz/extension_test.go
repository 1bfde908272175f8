package puz

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extensionBlock(code string, data []byte, checksum uint16) []byte {
	b := []byte(code)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(data)))
	b = binary.LittleEndian.AppendUint16(b, checksum)
	b = append(b, data...)
	return append(b, 0)
}

func TestReadExtensions(t *testing.T) {
	t.Run("blocks in file order", func(t *testing.T) {
		data := append(extensionBlock("LTIM", []byte("42,0"), Checksum([]byte("42,0"), 0)),
			extensionBlock("GEXT", []byte{0x80, 0}, Checksum([]byte{0x80, 0}, 0))...)
		data = append(data, "\r\n"...)
		c := NewCursor(data)

		exts, err := ReadExtensions(c)
		require.NoError(t, err)
		require.Len(t, exts, 2)
		assert.Equal(t, "LTIM", exts[0].Code)
		assert.Equal(t, []byte("42,0"), exts[0].Data)
		assert.Equal(t, "GEXT", exts[1].Code)
		assert.Equal(t, []byte("\r\n"), c.Upcoming())
	})

	t.Run("payload may contain NULs", func(t *testing.T) {
		payload := []byte{0, 0, 1, 0}
		exts, err := ReadExtensions(NewCursor(extensionBlock("GRBS", payload, Checksum(payload, 0))))
		require.NoError(t, err)
		require.Len(t, exts, 1)
		assert.Equal(t, payload, exts[0].Data)
	})

	t.Run("short tail is not an extension", func(t *testing.T) {
		c := NewCursor([]byte("\r\n\r\n"))
		exts, err := ReadExtensions(c)
		require.NoError(t, err)
		assert.Empty(t, exts)
		assert.Equal(t, 0, c.Pos())
	})

	t.Run("unprintable code is not an extension", func(t *testing.T) {
		c := NewCursor([]byte("\r\n\r\n\r\n\r\n\r\n"))
		exts, err := ReadExtensions(c)
		require.NoError(t, err)
		assert.Empty(t, exts)
		assert.Equal(t, 0, c.Pos())
	})

	t.Run("truncated payload is an error", func(t *testing.T) {
		block := extensionBlock("GEXT", make([]byte, 9), 0)
		_, err := ReadExtensions(NewCursor(block[:12]))
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "GEXT")
	})

	t.Run("missing trailing byte is an error", func(t *testing.T) {
		block := extensionBlock("GEXT", []byte{1}, 1)
		_, err := ReadExtensions(NewCursor(block[:len(block)-1]))
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
	})

	t.Run("checksum mismatch names the block", func(t *testing.T) {
		_, err := ReadExtensions(NewCursor(extensionBlock("RTBL", []byte(" 0:STAR;"), 1)))

		var ckErr *ChecksumError
		require.True(t, errors.As(err, &ckErr))
		assert.Equal(t, "extension RTBL", ckErr.Kind)
		assert.Equal(t, uint64(49286), ckErr.Calculated)
		assert.Equal(t, uint64(1), ckErr.Declared)
	})
}

func TestDecode_ExtensionChecksumMismatch(t *testing.T) {
	_, err := Decode(readFixture(t, "bad_extension.puz"))

	assert.ErrorIs(t, err, ErrChecksumMismatch)
	var ckErr *ChecksumError
	require.True(t, errors.As(err, &ckErr))
	assert.Equal(t, "extension GEXT", ckErr.Kind)
	assert.Equal(t, uint64(32896), ckErr.Calculated)
	assert.Equal(t, uint64(32897), ckErr.Declared)
	assert.Contains(t, err.Error(), "GEXT")
}
