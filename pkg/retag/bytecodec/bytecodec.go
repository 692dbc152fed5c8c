// Package bytecodec converts between whitespace-separated numeric text and
// raw byte values under a selectable radix.
package bytecodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/retag/pkg/retag/internalerr"
)

// Radix is the numeric base used to parse or render byte values.
type Radix int

// Supported radixes
const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// String returns the radix name for display.
func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return fmt.Sprintf("radix(%d)", int(r))
	}
}

// Valid reports whether r is one of the supported radixes.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// ParseError describes a token that could not be read as a byte value.
type ParseError struct {
	Token string
	Radix Radix
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %s byte: %v", e.Token, e.Radix, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads whitespace-separated numeric tokens as byte values under the
// given radix. Empty text fails with internalerr.ErrEmptyInput; a token that
// is not a valid byte under the radix fails with *ParseError.
func Parse(text string, r Radix) ([]byte, error) {
	if text == "" {
		return nil, internalerr.ErrEmptyInput
	}

	fields := strings.Fields(text)
	bytes := make([]byte, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseUint(tok, int(r), 8)
		if err != nil {
			return nil, &ParseError{Token: tok, Radix: r, Err: err}
		}
		bytes = append(bytes, byte(v))
	}

	return bytes, nil
}

// Render formats each byte under the given radix and joins the results with
// single spaces, no trailing separator. Empty input fails with
// internalerr.ErrEmptyInput.
func Render(src []byte, r Radix) (string, error) {
	if len(src) == 0 {
		return "", internalerr.ErrEmptyInput
	}

	parts := make([]string, len(src))
	for i, b := range src {
		parts[i] = RenderByte(b, r)
	}

	return strings.Join(parts, " "), nil
}

// RenderByte formats a single byte under the given radix. Binary output is
// zero-padded to 8 bits; other radixes use the minimal width.
func RenderByte(b byte, r Radix) string {
	if r == Binary {
		return fmt.Sprintf("%08b", b)
	}
	return strconv.FormatUint(uint64(b), int(r))
}
