// Package ctext converts pooled string bytes to document text and back.
// Strings on disk are one byte per character and null-terminated whatever
// the endianness of the numeric fields; the charset only decides how those
// bytes map to text.
package ctext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

type Charset string

const (
	// CharsetUTF8 passes bytes through untouched. Bytes that are not valid
	// UTF-8 are refused since no document could carry them back.
	CharsetUTF8   = Charset("utf-8")
	CharsetLatin1 = Charset("latin-1")

	DefaultCharset = CharsetUTF8
)

func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return CharsetUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return CharsetLatin1, nil
	default:
		return "", fmt.Errorf(`unknown charset "%s"; expected "utf-8" or "latin-1"`, name)
	}
}

func (r Charset) Decode(bs []byte) (string, error) {
	switch r {
	case CharsetUTF8, "":
		if !utf8.Valid(bs) {
			return "", cerror.ErrMalformedInput{
				Caller: "Charset.Decode",
				Reason: fmt.Sprintf(`string bytes % x are not valid utf-8; try --charset latin-1`, bs),
			}
		}
		return string(bs), nil
	case CharsetLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(bs)
		if err != nil {
			return "", errors.Wrapf(err, `Charset.Decode error for "%s"`, r)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf(`Charset.Decode error: unknown charset "%s"`, r)
	}
}

func (r Charset) Encode(s string) ([]byte, error) {
	switch r {
	case CharsetUTF8, "":
		return []byte(s), nil
	case CharsetLatin1:
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Wrapf(err, `Charset.Encode error: "%s" is not representable in %s`, s, r)
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf(`Charset.Encode error: unknown charset "%s"`, r)
	}
}
