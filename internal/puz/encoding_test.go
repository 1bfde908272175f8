package puz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEncoding(t *testing.T) {
	assert.Equal(t, Latin1, SelectEncoding(1))
	assert.Equal(t, Latin1, SelectEncoding(0))
	assert.Equal(t, UTF8, SelectEncoding(2))
	assert.Equal(t, UTF8, SelectEncoding(3))
}

func TestEncoding_Latin1(t *testing.T) {
	s, err := Latin1.Decode([]byte("Caf\xe9"))
	require.NoError(t, err)
	assert.Equal(t, "Café", s)

	b, err := Latin1.Encode(s)
	require.NoError(t, err)
	assert.Equal(t, []byte("Caf\xe9"), b)

	_, err = Latin1.Encode("⚔")
	assert.Error(t, err)
}

func TestEncoding_UTF8(t *testing.T) {
	s, err := UTF8.Decode([]byte("Café"))
	require.NoError(t, err)
	assert.Equal(t, "Café", s)

	_, err = UTF8.Decode([]byte("Caf\xe9"))
	assert.Error(t, err)
}

func TestCodec_DecodeFieldNamesCodecAndVersion(t *testing.T) {
	codec := Codec{Encoding: UTF8, Version: "2.0"}

	_, err := codec.DecodeField([]byte{0xff}, "title")
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, UTF8, encErr.Codec)
	assert.Equal(t, "2.0", encErr.Version)
	assert.Equal(t, "title", encErr.Field)
	assert.Contains(t, err.Error(), "UTF-8")
	assert.Contains(t, err.Error(), `"2.0"`)
}

func TestNewCodec(t *testing.T) {
	codec, err := NewCodec(&Header{FileVersion: "2.0"})
	require.NoError(t, err)
	assert.Equal(t, UTF8, codec.Encoding)

	_, err = NewCodec(&Header{FileVersion: "x.y"})
	assert.ErrorIs(t, err, ErrBadVersion)
}
