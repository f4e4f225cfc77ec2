// Package syntax implements lexical and syntactic analysis for the madx language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF Kind = iota // end of input

	// Literals
	_Char   // 'c'
	_String // "text"
	_Int    // 123, 017, 0x1F
	_Float  // 3.14, .5, 1.5e-3
	_Name   // identifier: foo, bar

	// Assignment
	_Assign // =

	// Logical operators
	_AndAnd // &&
	_OrOr   // ||

	// Bitwise operators
	_Or  // |
	_Xor // ^
	_And // & (also address-of)

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Shifts
	_Shl // <<
	_Shr // >>

	// Arithmetic operators
	_Sub // - (also unary)
	_Add // +
	_Mul // * (also dereference)
	_Div // /
	_Rem // %

	// Unary operators
	_Not   // !
	_Tilde // ~

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Dot    // .
	_Arrow  // ->
	_Colon  // :
	_Semi   // ;

	// Keywords
	_Fn
	_Let
	_If
	_Else
	_For // no while; loops are spelled with for
	_Goto
	_Struct
	_Union

	// Primitive type names
	_U0 // equivalent to void
	_I8
	_I16
	_I32

	kindCount
)

// kindNames maps token kinds to their string representation.
var kindNames = [...]string{
	_EOF: "EOF",

	_Char:   "CHAR",
	_String: "STRING",
	_Int:    "INT",
	_Float:  "FLOAT",
	_Name:   "NAME",

	_Assign: "=",

	_AndAnd: "&&",
	_OrOr:   "||",

	_Or:  "|",
	_Xor: "^",
	_And: "&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Shl: "<<",
	_Shr: ">>",

	_Sub: "-",
	_Add: "+",
	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not:   "!",
	_Tilde: "~",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Dot:    ".",
	_Arrow:  "->",
	_Colon:  ":",
	_Semi:   ";",

	_Fn:     "fn",
	_Let:    "let",
	_If:     "if",
	_Else:   "else",
	_For:    "for",
	_Goto:   "goto",
	_Struct: "struct",
	_Union:  "union",

	_U0:  "u0",
	_I8:  "i8",
	_I16: "i16",
	_I32: "i32",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a reserved word, including the primitive type names.
func (k Kind) IsKeyword() bool {
	return k >= _Fn && k <= _I32
}

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool {
	return k >= _Char && k <= _Name
}

// IsOperator reports whether k is an operator or delimiter token.
func (k Kind) IsOperator() bool {
	return k >= _Assign && k <= _Semi
}

// keywords maps reserved words to their token kind.
// Lookup is case-sensitive: "If" is an ordinary name.
var keywords = map[string]Kind{
	"fn":     _Fn,
	"let":    _Let,
	"if":     _If,
	"else":   _Else,
	"for":    _For,
	"goto":   _Goto,
	"struct": _Struct,
	"union":  _Union,
	"u0":     _U0,
	"i8":     _I8,
	"i16":    _I16,
	"i32":    _I32,
}

// LookupKeyword returns the kind for the given identifier string.
// If the identifier is a reserved word, returns its keyword kind.
// Otherwise, returns the name kind.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Name
}

// Token is one lexical unit. Only the fields relevant to Kind are set:
//
//	_Char   Char
//	_String Lit (decoded content)
//	_Int    Int, Lit (source text)
//	_Float  Float, Lit (source text)
//	_Name   Lit
//
// Tokens are plain values and compare with ==. The scanner never produces a
// NaN float, so equality on Float is total.
type Token struct {
	Kind  Kind
	Lit   string
	Int   int32
	Float float64
	Char  rune
}

func tok(k Kind) Token { return Token{Kind: k} }

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Kind == _EOF
}

// String returns the form of t used in diagnostics, e.g. `;`, `NAME(x)`, `INT(0x1f)`.
func (t Token) String() string {
	switch t.Kind {
	case _Char:
		return "CHAR(" + strconv.QuoteRune(t.Char) + ")"
	case _String:
		return "STRING(" + strconv.Quote(t.Lit) + ")"
	case _Int, _Float, _Name:
		return t.Kind.String() + "(" + t.Lit + ")"
	}
	return t.Kind.String()
}

// Exported literal kinds for drivers that display token streams.
const (
	CharLit   Kind = _Char
	StringLit Kind = _String
)
