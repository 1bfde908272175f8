package puz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	data := readFixture(t, "sample.puz")

	h, err := ReadHeader(NewCursor(data))
	require.NoError(t, err)

	assert.Equal(t, uint16(36293), h.GlobalChecksum)
	assert.Equal(t, uint16(28160), h.HeaderChecksum)
	assert.Equal(t, uint64(1539446224096315977), h.MagicChecksum)
	assert.Equal(t, "1.3", h.FileVersion)
	assert.Equal(t, uint16(0), h.ScrambledChecksum)
	assert.Equal(t, 5, h.Width)
	assert.Equal(t, 5, h.Height)
	assert.Equal(t, 6, h.ClueCount)
	assert.Equal(t, Normal, h.PuzzleType)
	assert.Equal(t, Unlocked, h.SolutionState)
	assert.Equal(t, h.HeaderChecksum, h.CalculateChecksum())
}

func TestReadHeader_Errors(t *testing.T) {
	t.Run("wrong marker", func(t *testing.T) {
		_, err := ReadHeader(NewCursor(make([]byte, HeaderSize)))
		assert.ErrorIs(t, err, ErrBadMarker)
	})

	t.Run("truncated", func(t *testing.T) {
		data := readFixture(t, "sample.puz")[:0x2d]
		_, err := ReadHeader(NewCursor(data))
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "height")
	})

	t.Run("unknown puzzle type", func(t *testing.T) {
		data := readFixture(t, "sample.puz")
		data[0x30] = 0x02
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrUnknownCode)
		assert.Contains(t, err.Error(), "puzzle type 0x0002")
	})

	t.Run("unknown solution state", func(t *testing.T) {
		data := readFixture(t, "sample.puz")
		data[0x32] = 0x01
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrUnknownCode)
		assert.Contains(t, err.Error(), "solution state")
	})
}

func TestHeader_Version(t *testing.T) {
	tests := []struct {
		version      string
		major, minor int
		wantErr      bool
	}{
		{"1.2", 1, 2, false},
		{"1.3", 1, 3, false},
		{"2.0", 2, 0, false},
		{"1.x", 0, 0, true},
		{"123", 0, 0, true},
		{"1..", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			h := &Header{FileVersion: tt.version}
			major, minor, err := h.Version()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.major, major)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestHeader_AtLeast(t *testing.T) {
	h := &Header{FileVersion: "1.3"}

	ok, err := h.AtLeast(1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = h.AtLeast(1, 4)
	assert.False(t, ok)

	ok, _ = (&Header{FileVersion: "2.0"}).AtLeast(1, 3)
	assert.True(t, ok)
}

func TestEnumCodes(t *testing.T) {
	pt, err := ParsePuzzleType(0x0401)
	require.NoError(t, err)
	assert.Equal(t, Diagramless, pt)
	assert.Equal(t, ':', pt.BlackSquare())
	assert.Equal(t, '.', Normal.BlackSquare())

	_, err = ParsePuzzleType(0)
	assert.ErrorIs(t, err, ErrUnknownCode)

	st, err := ParseSolutionState(0x0004)
	require.NoError(t, err)
	assert.Equal(t, Locked, st)
	assert.Equal(t, "locked", st.String())

	_, err = ParseSolutionState(0x0002)
	assert.ErrorIs(t, err, ErrUnknownCode)
}
