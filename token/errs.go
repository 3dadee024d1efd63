package token

import "errors"

var (
	// ErrBadControlChar is returned when a bare '\r' or bare '\n' appears
	// inside a quoted string.
	ErrBadControlChar = errors.New("control character in string")
	// ErrUnterminatedString is returned when a 0 byte (the buffer's NUL
	// terminator, or a literal NUL inside the string) is reached before the
	// closing quote.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrBadUnicodeEscape is returned when a \u escape is not followed by
	// four hex digits.
	ErrBadUnicodeEscape = errors.New("bad \\u escape")
)
