// Package repl drives the lex, parse and evaluate pipeline for a whole
// session, interactively or over a script.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/madx/internal/eval"
	"github.com/you-not-fish/madx/internal/syntax"
)

// Session holds the variable environment shared by every statement run
// through it. Results go to out, diagnostics to errOut.
type Session struct {
	env    *eval.Env
	out    io.Writer
	errOut io.Writer

	// Verify checks each tree's shape before it is evaluated.
	Verify bool
}

// NewSession creates a Session with an empty environment.
func NewSession(out, errOut io.Writer) *Session {
	return &Session{
		env:    eval.NewEnv(),
		out:    out,
		errOut: errOut,
	}
}

// Env returns the session's variable environment.
func (s *Session) Env() *eval.Env {
	return s.env
}

// Run parses and evaluates every statement read from r, printing the
// value of each non-empty one. It stops at the first error, which is
// returned; bindings made before it are kept.
func (s *Session) Run(r io.Reader) error {
	p := syntax.NewParser(syntax.NewLexer(r))
	for {
		n, err := p.Parse()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if n == nil {
			continue
		}
		v, err := s.exec(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, v)
	}
}

// RunLine runs one line of input. Errors are reported to the error
// writer and the rest of the line is abandoned.
func (s *Session) RunLine(line string) {
	if err := s.Run(strings.NewReader(line)); err != nil {
		fmt.Fprintln(s.errOut, err)
	}
}

// Loop reads lines from in until end of input or a line reading "exit",
// running each through RunLine. The prompt is written to out before
// every line; an empty prompt writes nothing.
func (s *Session) Loop(in io.Reader, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(s.out, prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		s.RunLine(line)
	}
}

func (s *Session) exec(n *syntax.Node) (eval.Value, error) {
	if s.Verify {
		if err := syntax.Verify(n); err != nil {
			return eval.Value{}, err
		}
	}
	return eval.Evaluate(n, s.env)
}
