package syntax

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func readAll(t *testing.T, s *source) string {
	t.Helper()
	var b strings.Builder
	for {
		ch, ok, err := s.read()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !ok {
			return b.String()
		}
		b.WriteRune(ch)
	}
}

func TestSourceRead(t *testing.T) {
	s := newSource(strings.NewReader("abc"))
	if got := readAll(t, &s); got != "abc" {
		t.Errorf("read %q, want %q", got, "abc")
	}

	// end of stream is sticky and not an error
	for i := 0; i < 2; i++ {
		_, ok, err := s.read()
		if ok || err != nil {
			t.Errorf("read after EOF = (%v, %v), want (false, nil)", ok, err)
		}
	}
}

func TestSourceUTF8(t *testing.T) {
	s := newSource(strings.NewReader("héllo, 世界"))
	if got := readAll(t, &s); got != "héllo, 世界" {
		t.Errorf("read %q", got)
	}
}

func TestSourcePutback(t *testing.T) {
	s := newSource(strings.NewReader("bc"))

	ch, _, _ := s.read()
	if ch != 'b' {
		t.Fatalf("ch = %q, want 'b'", ch)
	}

	// A put back character comes before new stream input.
	s.putback('b')
	ch, _, _ = s.read()
	if ch != 'b' {
		t.Errorf("after putback ch = %q, want 'b'", ch)
	}

	// The pushed character need not be the one just read.
	s.putback('x')
	if got := readAll(t, &s); got != "xc" {
		t.Errorf("rest = %q, want %q", got, "xc")
	}

	// putback at end of stream is still observed.
	s.putback('z')
	ch, ok, err := s.read()
	if !ok || err != nil || ch != 'z' {
		t.Errorf("read = (%q, %v, %v), want ('z', true, nil)", ch, ok, err)
	}
}

func TestSourceIOError(t *testing.T) {
	boom := errors.New("boom")
	s := newSource(iotest.ErrReader(boom))

	_, ok, err := s.read()
	if ok {
		t.Fatal("read reported a character")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("err = %v, want an IO lexer error", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want it to wrap %v", err, boom)
	}
	if errors.Is(err, io.EOF) {
		t.Errorf("err = %v must not be io.EOF", err)
	}
}

func TestDigitVal(t *testing.T) {
	tests := []struct {
		r    rune
		base int32
		want int32
	}{
		{'0', 10, 0},
		{'9', 10, 9},
		{'a', 10, -1},
		{'7', 8, 7},
		{'8', 8, -1},
		{'a', 16, 10},
		{'F', 16, 15},
		{'g', 16, -1},
		{'.', 16, -1},
		{'_', 16, -1},
	}

	for _, tt := range tests {
		if got := digitVal(tt.r, tt.base); got != tt.want {
			t.Errorf("digitVal(%q, %d) = %d, want %d", tt.r, tt.base, got, tt.want)
		}
	}
}

func TestCharClasses(t *testing.T) {
	for _, r := range "aZ_é" {
		if !isLetter(r) {
			t.Errorf("isLetter(%q) = false", r)
		}
	}
	for _, r := range "0$@;" {
		if isLetter(r) {
			t.Errorf("isLetter(%q) = true", r)
		}
	}
	for _, r := range " \t\r\n\v\f" {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false", r)
		}
	}
}
