package syntax

import (
	"io"
	"math"
	"strings"
)

// Lexer performs lexical analysis on madx source text.
// It keeps one token of lookahead on top of the source's one character
// of putback, which is all the parser's predictive grammar needs.
type Lexer struct {
	source // embedded character reader

	// Token lookahead slot
	peeked    Token
	hasPeeked bool

	// Literal accumulation for number tokens
	litBuf strings.Builder
}

// NewLexer creates a Lexer reading from r. Reads are buffered.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{source: newSource(r)}
}

// Peek returns the next token without consuming it.
// Repeated calls without an intervening Consume or Take return the same token.
func (l *Lexer) Peek() (Token, error) {
	if !l.hasPeeked {
		t, err := l.scanToken()
		if err != nil {
			return Token{}, err
		}
		l.peeked = t
		l.hasPeeked = true
	}
	return l.peeked, nil
}

// Consume discards the peeked token, if any.
func (l *Lexer) Consume() {
	l.hasPeeked = false
	l.peeked = Token{}
}

// Take returns the peeked token and clears it, or scans a fresh one.
func (l *Lexer) Take() (Token, error) {
	if l.hasPeeked {
		t := l.peeked
		l.Consume()
		return t, nil
	}
	return l.scanToken()
}

// scanToken scans the next token from the source.
func (l *Lexer) scanToken() (Token, error) {
	for {
		c, ok, err := l.read()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			return tok(_EOF), nil
		}
		if isWhitespace(c) {
			continue
		}

		switch c {
		case '&':
			return l.pick('&', _AndAnd, _And)
		case '|':
			return l.pick('|', _OrOr, _Or)
		case '=':
			return l.pick('=', _Eql, _Assign)
		case '!':
			return l.pick('=', _Neq, _Not)
		case '-':
			return l.pick('>', _Arrow, _Sub)
		case '<':
			return l.pick2('=', _Leq, '<', _Shl, _Lss)
		case '>':
			return l.pick2('=', _Geq, '>', _Shr, _Gtr)

		case '/':
			skipped, err := l.skipComment()
			if err != nil {
				return Token{}, err
			}
			if skipped {
				continue
			}
			return tok(_Div), nil

		case '^':
			return tok(_Xor), nil
		case '+':
			return tok(_Add), nil
		case '*':
			return tok(_Mul), nil
		case '%':
			return tok(_Rem), nil
		case '~':
			return tok(_Tilde), nil
		case '(':
			return tok(_Lparen), nil
		case ')':
			return tok(_Rparen), nil
		case '[':
			return tok(_Lbrack), nil
		case ']':
			return tok(_Rbrack), nil
		case '{':
			return tok(_Lbrace), nil
		case '}':
			return tok(_Rbrace), nil
		case ':':
			return tok(_Colon), nil
		case ';':
			return tok(_Semi), nil

		case '.':
			n, ok, err := l.read()
			if err != nil {
				return Token{}, err
			}
			if ok && isDigit(n) {
				// float with no integer part: .5
				l.putback(n)
				l.litBuf.Reset()
				l.litBuf.WriteRune('.')
				return l.scanFraction(0)
			}
			if ok {
				l.putback(n)
			}
			return tok(_Dot), nil

		case '\'':
			return l.scanChar()
		case '"':
			return l.scanString()
		}

		switch {
		case isDigit(c):
			return l.scanNumber(c)
		case isLetter(c):
			return l.scanIdent(c)
		}
		return Token{}, &LexerError{Kind: UnexpectedChar, Char: c}
	}
}

// pick reads one more character. If it is second, the two-character
// token two is returned; otherwise the character is put back and the
// single-character token one is returned.
func (l *Lexer) pick(second rune, two, one Kind) (Token, error) {
	c, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if ok {
		if c == second {
			return tok(two), nil
		}
		l.putback(c)
	}
	return tok(one), nil
}

// pick2 is pick with two candidate second characters.
func (l *Lexer) pick2(a rune, ka Kind, b rune, kb Kind, one Kind) (Token, error) {
	c, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if ok {
		switch c {
		case a:
			return tok(ka), nil
		case b:
			return tok(kb), nil
		}
		l.putback(c)
	}
	return tok(one), nil
}

// skipComment is called after a '/'. It skips a line or block comment and
// reports whether one was found. Otherwise the lookahead is put back.
func (l *Lexer) skipComment() (bool, error) {
	c, ok, err := l.read()
	if err != nil || !ok {
		return false, err
	}
	switch c {
	case '/':
		for {
			c, ok, err := l.read()
			if err != nil {
				return false, err
			}
			if !ok || c == '\n' {
				return true, nil
			}
		}
	case '*':
		star := false
		for {
			c, ok, err := l.read()
			if err != nil {
				return false, err
			}
			if !ok {
				return false, &LexerError{Kind: UnterminatedComment}
			}
			if star && c == '/' {
				return true, nil
			}
			star = c == '*'
		}
	}
	l.putback(c)
	return false, nil
}

// scanIdent scans an identifier or reserved word starting with first.
func (l *Lexer) scanIdent(first rune) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		c, ok, err := l.read()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			break
		}
		if !isLetter(c) && !isDigit(c) {
			l.putback(c)
			break
		}
		b.WriteRune(c)
	}

	name := b.String()
	if k := LookupKeyword(name); k != _Name {
		return tok(k), nil
	}
	return Token{Kind: _Name, Lit: name}, nil
}

// scanNumber scans an integer or float literal starting with the digit first.
// Negative numbers are unary minus applied by the parser.
func (l *Lexer) scanNumber(first rune) (Token, error) {
	l.litBuf.Reset()
	l.litBuf.WriteRune(first)

	if first == '0' {
		c, ok, err := l.read()
		if err != nil {
			return Token{}, err
		}
		switch {
		case ok && c == 'x':
			l.litBuf.WriteRune(c)
			n, err := l.scanDigits(16, 0)
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: _Int, Int: n, Lit: l.litBuf.String()}, nil
		case ok && isDigit(c):
			l.putback(c)
			n, err := l.scanDigits(8, 0)
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: _Int, Int: n, Lit: l.litBuf.String()}, nil
		case ok:
			// 0, 0.5, 0e3: decimal path
			l.putback(c)
		}
	}

	front, err := l.scanDigits(10, first-'0')
	if err != nil {
		return Token{}, err
	}

	c, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if ok && c == '.' {
		l.litBuf.WriteRune(c)
		return l.scanFraction(float64(front))
	}
	if ok {
		l.putback(c)
	}

	v, err := l.scanExponent(float64(front))
	if err != nil {
		return Token{}, err
	}
	if math.IsNaN(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return Token{}, &LexerError{Kind: IntegerOverflow}
	}
	return Token{Kind: _Int, Int: int32(v), Lit: l.litBuf.String()}, nil
}

// scanDigits accumulates digits of the given base onto num, stopping at
// the first character that is not a digit of that base.
// Overflow past MaxInt32 is reported exactly where it happens.
func (l *Lexer) scanDigits(base, num int32) (int32, error) {
	for {
		c, ok, err := l.read()
		if err != nil {
			return 0, err
		}
		if !ok {
			return num, nil
		}
		d := digitVal(c, base)
		if d < 0 {
			l.putback(c)
			return num, nil
		}
		if num > (math.MaxInt32-d)/base {
			return 0, &LexerError{Kind: IntegerOverflow}
		}
		num = num*base + d
		l.litBuf.WriteRune(c)
	}
}

// scanFraction scans the digits after a decimal point and an optional
// exponent, adding them to the integer part front.
func (l *Lexer) scanFraction(front float64) (Token, error) {
	mantissa := 0.0
	position := 1.0
	for {
		c, ok, err := l.read()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			break
		}
		if !isDigit(c) {
			l.putback(c)
			break
		}
		position /= 10
		mantissa += float64(c-'0') * position
		l.litBuf.WriteRune(c)
	}

	v, err := l.scanExponent(front + mantissa)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: _Float, Float: v, Lit: l.litBuf.String()}, nil
}

// scanExponent applies an optional e/E exponent with optional sign to num.
// A marker without digits is a malformed float.
func (l *Lexer) scanExponent(num float64) (float64, error) {
	c, ok, err := l.read()
	if err != nil {
		return 0, err
	}
	if !ok {
		return num, nil
	}
	if c != 'e' && c != 'E' {
		l.putback(c)
		return num, nil
	}
	l.litBuf.WriteRune(c)

	c, ok, err = l.read()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &LexerError{Kind: MalformedFloat}
	}
	neg := false
	switch c {
	case '-':
		neg = true
		l.litBuf.WriteRune(c)
	case '+':
		l.litBuf.WriteRune(c)
	default:
		l.putback(c)
	}

	// at least one digit must follow the marker
	c, ok, err = l.read()
	if err != nil {
		return 0, err
	}
	if !ok || !isDigit(c) {
		return 0, &LexerError{Kind: MalformedFloat}
	}
	l.litBuf.WriteRune(c)
	exp, err := l.scanDigits(10, c-'0')
	if err != nil {
		return 0, err
	}

	if num == 0 {
		// 0 * Inf would be NaN
		return 0, nil
	}
	e := float64(exp)
	if neg {
		e = -e
	}
	return num * math.Pow(10, e), nil
}

// scanString scans a string literal after its opening quote.
// Supported escapes are \n, \r, \t and \"; any other escape keeps the
// backslash and rescans the following character.
func (l *Lexer) scanString() (Token, error) {
	var b strings.Builder
	for {
		c, ok, err := l.read()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			return Token{}, &LexerError{Kind: UnterminatedString}
		}

		if c == '"' {
			return Token{Kind: _String, Lit: b.String()}, nil
		}

		if c == '\\' {
			e, ok, err := l.read()
			if err != nil {
				return Token{}, err
			}
			if ok {
				switch e {
				case 'n':
					b.WriteRune('\n')
				case 'r':
					b.WriteRune('\r')
				case 't':
					b.WriteRune('\t')
				case '"':
					b.WriteRune('"')
				default:
					l.putback(e)
					b.WriteRune('\\')
				}
				continue
			}
		}

		b.WriteRune(c)
	}
}

// scanChar scans a character constant after its opening quote.
// Exactly one character must precede the closing quote.
func (l *Lexer) scanChar() (Token, error) {
	c, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, &LexerError{Kind: UnterminatedChar}
	}

	q, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, &LexerError{Kind: UnterminatedChar}
	}
	if q != '\'' {
		return Token{}, &LexerError{Kind: CharTooLong}
	}
	return Token{Kind: _Char, Char: c}, nil
}
