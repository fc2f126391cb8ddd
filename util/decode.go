package util

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lyraproj/getpath/api"
	"github.com/lyraproj/issue/issue"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// A Decoder converts raw bytes from the environment or from marker files into path strings.
type Decoder interface {
	// Decode decodes the given bytes. The what argument describes the origin of the bytes and is used in
	// error messages.
	Decode(what string, b []byte) (string, error)

	// DecodeString decodes a string that holds raw bytes.
	DecodeString(what, s string) (string, error)
}

type utf8Decoder struct{}

type textDecoder struct {
	enc encoding.Encoding
}

// NewDecoder returns the Decoder for the encoding with the given name. The names "utf-8" and "utf8" (case
// insensitive), and the empty string, give a strict UTF-8 decoder. Other names are looked up using the
// WHATWG encoding names.
func NewDecoder(name string) (Decoder, error) {
	switch strings.ToLower(name) {
	case ``, `utf-8`, `utf8`:
		return utf8Decoder{}, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, api.Error(api.UnknownEncoding, issue.H{`encoding`: name})
	}
	return &textDecoder{enc}, nil
}

func (utf8Decoder) Decode(what string, b []byte) (string, error) {
	return utf8Decoder{}.DecodeString(what, string(b))
}

func (utf8Decoder) DecodeString(what, s string) (string, error) {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			return ``, api.Error(api.DecodeFailed, issue.H{
				`what`: what, `detail`: fmt.Sprintf(`invalid UTF-8 sequence at byte %d`, i)})
		}
		i += n
	}
	return s, nil
}

func (d *textDecoder) Decode(what string, b []byte) (string, error) {
	r, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return ``, api.Error(api.DecodeFailed, issue.H{`what`: what, `detail`: err.Error()})
	}
	return string(r), nil
}

func (d *textDecoder) DecodeString(what, s string) (string, error) {
	return d.Decode(what, []byte(s))
}
