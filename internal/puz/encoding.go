package puz

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding is the text codec used for every grid and string in a file.
type Encoding int

const (
	// Latin1 is used by files older than version 2.0.
	Latin1 Encoding = iota
	UTF8
)

// SelectEncoding picks the codec for a file whose version has the given
// major number.
func SelectEncoding(major int) Encoding {
	if major < 2 {
		return Latin1
	}
	return UTF8
}

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "ISO-8859-1"
	case UTF8:
		return "UTF-8"
	default:
		return "unknown"
	}
}

func (e Encoding) Decode(raw []byte) (string, error) {
	switch e {
	case Latin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		out, _, err := transform.Bytes(encoding.UTF8Validator, raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func (e Encoding) Encode(s string) ([]byte, error) {
	switch e {
	case Latin1:
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	default:
		return []byte(s), nil
	}
}

// encodeZeroTerminated encodes s and appends the NUL the file stores after it.
func (e Encoding) encodeZeroTerminated(s string) ([]byte, error) {
	b, err := e.Encode(s)
	if err != nil {
		return nil, err
	}
	return append(b, 0), nil
}

// Codec binds an Encoding to the declared file version it was selected for,
// so decode failures can say both.
type Codec struct {
	Encoding Encoding
	Version  string
}

// NewCodec selects the codec for h. The version must parse.
func NewCodec(h *Header) (Codec, error) {
	major, _, err := h.Version()
	if err != nil {
		return Codec{}, err
	}
	return Codec{Encoding: SelectEncoding(major), Version: h.FileVersion}, nil
}

func (c Codec) DecodeField(raw []byte, field string) (string, error) {
	s, err := c.Encoding.Decode(raw)
	if err != nil {
		return "", &EncodingError{Codec: c.Encoding, Version: c.Version, Field: field, Err: err}
	}
	return s, nil
}
