package syntax

import (
	"bufio"
	"errors"
	"io"
	"unicode"
)

// source is a character reader over a buffered stream with a single
// character of putback.
type source struct {
	r *bufio.Reader

	// Putback slot. At most one character is ever pending.
	pending    rune
	hasPending bool
}

func newSource(r io.Reader) source {
	return source{r: bufio.NewReader(r)}
}

// read returns the next character, preferring a pending putback.
// ok is false at end of stream; that is not an error.
func (s *source) read() (ch rune, ok bool, err error) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, true, nil
	}
	ch, _, err = s.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, &LexerError{Kind: IOError, Err: err}
	}
	return ch, true, nil
}

// putback queues ch to be returned by the next read.
func (s *source) putback(ch rune) {
	s.pending = ch
	s.hasPending = true
}

// Character classification helpers

// isLetter reports whether r may start an identifier (a letter or _).
func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is Unicode white space. Newlines are
// ordinary white space; statements end with ';', not with a line break.
func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// lower returns the lowercase version of r if r is an ASCII letter,
// otherwise returns r unchanged.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// digitVal returns the value of r as a digit in base, or -1 if r is not
// a digit of that base.
func digitVal(r rune, base int32) int32 {
	var d int32
	switch {
	case isDigit(r):
		d = r - '0'
	case 'a' <= lower(r) && lower(r) <= 'z':
		d = lower(r) - 'a' + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}
