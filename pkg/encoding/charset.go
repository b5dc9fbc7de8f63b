// Package encoding provides text encoding utilities for atlas descriptor files.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedCharset is returned for charset labels that are unknown or
// have no decoder.
var ErrUnsupportedCharset = errors.New("unsupported charset")

// Lookup resolves an IANA charset label ("ISO-8859-1", "windows-1252",
// "Shift_JIS", "EUC-KR", ...) to an encoding. Matching is case-insensitive.
func Lookup(label string) (encoding.Encoding, error) {
	name := strings.TrimSpace(label)
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, label)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q has no decoder", ErrUnsupportedCharset, label)
	}
	return enc, nil
}

// CharsetReader wraps input so it yields UTF-8. Its signature matches
// xml.Decoder.CharsetReader, which is only consulted for non-UTF-8
// declarations.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

