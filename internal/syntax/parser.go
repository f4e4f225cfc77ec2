package syntax

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Parser performs syntax analysis on madx source text.
// It drives a Lexer through Peek, Consume and Take.
type Parser struct {
	lexer *Lexer
}

// NewParser creates a Parser that owns lx.
func NewParser(lx *Lexer) *Parser {
	return &Parser{lexer: lx}
}

// ----------------------------------------------------------------------------
// Token navigation

// peek returns the lookahead token.
func (p *Parser) peek() (Token, error) {
	t, err := p.lexer.Peek()
	return t, lexErr(err)
}

// next drops the lookahead token.
func (p *Parser) next() {
	p.lexer.Consume()
}

// expect takes the next token and reports an error unless it equals want.
func (p *Parser) expect(want Token) error {
	got, err := p.lexer.Take()
	if err != nil {
		return lexErr(err)
	}
	if got != want {
		return &ParserError{Kind: ExpectError, Want: want, Got: got}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses one statement and returns its tree. An empty statement
// yields (nil, nil). At end of input Parse returns (nil, io.EOF).
func (p *Parser) Parse() (*Node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.IsEOF() {
		return nil, io.EOF
	}
	return p.stmt()
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() (*Node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case _Lbrace:
		return p.blockStmt()

	case _Semi:
		p.next()
		return nil, nil

	default:
		x, err := p.assign()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tok(_Semi)); err != nil {
			return nil, err
		}
		return x, nil
	}
}

// blockStmt parses { stmts... }, folding the statements into a
// left-leaning Glue chain so they evaluate in source order.
func (p *Parser) blockStmt() (*Node, error) {
	if err := p.expect(tok(_Lbrace)); err != nil {
		return nil, err
	}

	var tree *Node
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == _Rbrace {
			break
		}
		if t.IsEOF() {
			return nil, &ParserError{Kind: ExpectError, Want: tok(_Rbrace), Got: t}
		}

		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		switch {
		case s == nil:
		case tree == nil:
			tree = s
		default:
			tree = NewBinary(Glue, tree, s)
		}
	}

	if err := p.expect(tok(_Rbrace)); err != nil {
		return nil, err
	}
	return tree, nil
}

// ----------------------------------------------------------------------------
// Expressions
//
// Precedence, low to high:
//
//	=  (right associative)
//	|
//	^
//	&
//	<< >>
//	+ -
//	* / %
//	unary + - ~
//	primary

// assign parses an assignment. The left side is kept as parsed; whether
// it names a variable is checked when the tree is evaluated.
func (p *Parser) assign() (*Node, error) {
	x, err := p.bitOr()
	if err != nil {
		return nil, err
	}

	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.Kind != _Assign {
		return x, nil
	}
	p.next()

	y, err := p.assign()
	if err != nil {
		return nil, err
	}
	return NewBinary(Assign, x, y), nil
}

func (p *Parser) bitOr() (*Node, error) {
	return p.binaryExpr(p.bitXor, func(k Kind) (Operation, bool) {
		return BitOr, k == _Or
	})
}

func (p *Parser) bitXor() (*Node, error) {
	return p.binaryExpr(p.bitAnd, func(k Kind) (Operation, bool) {
		return BitXor, k == _Xor
	})
}

func (p *Parser) bitAnd() (*Node, error) {
	return p.binaryExpr(p.shift, func(k Kind) (Operation, bool) {
		return BitAnd, k == _And
	})
}

func (p *Parser) shift() (*Node, error) {
	return p.binaryExpr(p.additive, func(k Kind) (Operation, bool) {
		switch k {
		case _Shl:
			return Shl, true
		case _Shr:
			return Shr, true
		}
		return 0, false
	})
}

func (p *Parser) additive() (*Node, error) {
	return p.binaryExpr(p.multiplicative, func(k Kind) (Operation, bool) {
		switch k {
		case _Add:
			return Add, true
		case _Sub:
			return Sub, true
		}
		return 0, false
	})
}

func (p *Parser) multiplicative() (*Node, error) {
	return p.binaryExpr(p.unaryExpr, func(k Kind) (Operation, bool) {
		switch k {
		case _Mul:
			return Mul, true
		case _Div:
			return Div, true
		case _Rem:
			return Mod, true
		}
		return 0, false
	})
}

// binaryExpr parses one left-associative precedence level. operand parses
// the next tighter level; match maps this level's operator tokens to
// operations.
func (p *Parser) binaryExpr(operand func() (*Node, error), match func(Kind) (Operation, bool)) (*Node, error) {
	x, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		op, ok := match(t.Kind)
		if !ok {
			return x, nil
		}
		p.next() // consume operator

		y, err := operand()
		if err != nil {
			return nil, err
		}
		x = NewBinary(op, x, y)
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() (*Node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case _Add: // unary plus has no effect
		p.next()
		return p.unaryExpr()

	case _Sub, _Tilde:
		p.next()
		x, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		if t.Kind == _Sub {
			return NewUnary(Negate, x), nil
		}
		return NewUnary(BitNot, x), nil

	default:
		return p.primaryExpr()
	}
}

// primaryExpr parses a parenthesized expression, a literal or a name.
func (p *Parser) primaryExpr() (*Node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case _Lparen:
		p.next()
		x, err := p.assign()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tok(_Rparen)); err != nil {
			return nil, err
		}
		return x, nil

	case _Int:
		v, err := parseIntLit(t.Lit)
		if err != nil {
			return nil, &ParserError{Kind: ParseIntError, Err: err}
		}
		p.next()
		return NewNumber(v), nil

	case _Float:
		v, err := strconv.ParseFloat(t.Lit, 64)
		if err != nil {
			return nil, &ParserError{Kind: ParseFloatError, Err: err}
		}
		p.next()
		return NewFloat(v), nil

	case _Name:
		p.next()
		return NewIdent(t.Lit), nil

	default:
		return nil, &ParserError{Kind: SyntaxError, Got: t}
	}
}

// parseIntLit converts the source text of an integer literal with the
// lexer's prefix rules: 0x hexadecimal, leading 0 octal, else decimal.
// A decimal literal with an exponent must still fit in 32 bits.
func parseIntLit(lit string) (int32, error) {
	switch {
	case strings.HasPrefix(lit, "0x"):
		v, err := strconv.ParseInt(lit[2:], 16, 32)
		return int32(v), err
	case strings.ContainsAny(lit, "eE"):
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return 0, err
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, &strconv.NumError{Func: "ParseInt", Num: lit, Err: strconv.ErrRange}
		}
		return int32(f), nil
	case len(lit) > 1 && lit[0] == '0':
		v, err := strconv.ParseInt(lit[1:], 8, 32)
		return int32(v), err
	default:
		v, err := strconv.ParseInt(lit, 10, 32)
		return int32(v), err
	}
}
