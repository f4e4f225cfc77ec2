package syntax

import "fmt"

// LexErrorKind classifies a LexerError.
type LexErrorKind uint8

const (
	UnterminatedString LexErrorKind = iota
	UnterminatedChar
	CharTooLong
	IntegerOverflow
	MalformedFloat
	UnterminatedComment
	UnexpectedChar
	IOError
)

// LexerError is a failure to turn the character stream into tokens.
type LexerError struct {
	Kind LexErrorKind
	Char rune  // offending character (UnexpectedChar only)
	Err  error // underlying read failure (IOError only)
}

func (e *LexerError) Error() string {
	switch e.Kind {
	case UnterminatedString:
		return "Lexer Error: Unterminated String"
	case UnterminatedChar:
		return "Lexer Error: Unterminated Character Constant"
	case CharTooLong:
		return "Lexer Error: > 1 Character in Character Constant"
	case IntegerOverflow:
		return "Lexer Error: Integer Overflow"
	case MalformedFloat:
		return "Lexer Error: Malformed Float"
	case UnterminatedComment:
		return "Lexer Error: Unterminated Comment"
	case UnexpectedChar:
		return fmt.Sprintf("Lexer Error: Unexpected Character %q", e.Char)
	case IOError:
		return fmt.Sprintf("Lexer Error: IO Error: %v", e.Err)
	}
	return fmt.Sprintf("Lexer Error: kind(%d)", e.Kind)
}

func (e *LexerError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *LexerError of the same kind.
// IO errors match on kind alone; their messages are not compared.
// An UnexpectedChar target with Char set also requires the same character.
func (e *LexerError) Is(target error) bool {
	t, ok := target.(*LexerError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t.Kind == UnexpectedChar && t.Char != 0 {
		return t.Char == e.Char
	}
	return true
}

// Sentinels for errors.Is.
var (
	ErrUnterminatedString  = &LexerError{Kind: UnterminatedString}
	ErrUnterminatedChar    = &LexerError{Kind: UnterminatedChar}
	ErrCharTooLong         = &LexerError{Kind: CharTooLong}
	ErrIntegerOverflow     = &LexerError{Kind: IntegerOverflow}
	ErrMalformedFloat      = &LexerError{Kind: MalformedFloat}
	ErrUnterminatedComment = &LexerError{Kind: UnterminatedComment}
	ErrUnexpectedChar      = &LexerError{Kind: UnexpectedChar}
	ErrIO                  = &LexerError{Kind: IOError}
)

// ParseErrorKind classifies a ParserError.
type ParseErrorKind uint8

const (
	ExpectError ParseErrorKind = iota
	SyntaxError
	ParseIntError
	ParseFloatError
	LexError
)

// ParserError is a failure to build an AST. It wraps lexer errors and
// literal conversion errors, both reachable with errors.Is / errors.As.
type ParserError struct {
	Kind ParseErrorKind
	Want Token // ExpectError only
	Got  Token // ExpectError and SyntaxError
	Err  error // ParseIntError, ParseFloatError, LexError
}

func (e *ParserError) Error() string {
	switch e.Kind {
	case ExpectError:
		return fmt.Sprintf("Parser Error: expected %s, got %s", e.Want, e.Got)
	case SyntaxError:
		return fmt.Sprintf("Parser Error: syntax error, unexpected %s", e.Got)
	case ParseIntError:
		return fmt.Sprintf("Parser Error: Could not convert to int: %v", e.Err)
	case ParseFloatError:
		return fmt.Sprintf("Parser Error: Could not convert to float: %v", e.Err)
	case LexError:
		return e.Err.Error()
	}
	return fmt.Sprintf("Parser Error: kind(%d)", e.Kind)
}

func (e *ParserError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParserError of the same kind. For
// ExpectError targets with a non-zero Want, both tokens must match.
func (e *ParserError) Is(target error) bool {
	t, ok := target.(*ParserError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t.Kind == ExpectError && t.Want != (Token{}) {
		return t.Want == e.Want && t.Got == e.Got
	}
	return true
}

// Sentinels for errors.Is.
var (
	ErrExpect     = &ParserError{Kind: ExpectError}
	ErrSyntax     = &ParserError{Kind: SyntaxError}
	ErrParseInt   = &ParserError{Kind: ParseIntError}
	ErrParseFloat = &ParserError{Kind: ParseFloatError}
)

// lexErr wraps a lexer failure for the parser's callers.
func lexErr(err error) error {
	if err == nil {
		return nil
	}
	return &ParserError{Kind: LexError, Err: err}
}
