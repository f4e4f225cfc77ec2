// Package main implements the madx interpreter entry point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/madx/internal/repl"
	"github.com/you-not-fish/madx/internal/syntax"
)

// Interpreter flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	verify     = flag.Bool("verify", false, "Verify AST shape before evaluation")
	prompt     = flag.String("prompt", ">>> ", "REPL prompt")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "madx %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: madx [options] [file.mx]\n\n")
		fmt.Fprintf(os.Stderr, "Without a file, madx reads statements from standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("madx version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		if *emitTokens || *emitAST {
			fmt.Fprintln(os.Stderr, "error: no input file")
			fmt.Fprintln(os.Stderr, "usage: madx [options] <file.mx>")
			os.Exit(1)
		}
		os.Exit(runREPL(os.Stdin))
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	os.Exit(runScript(filename))
}

// runREPL reads statements line by line from in until "exit" or end of input.
func runREPL(in io.Reader) int {
	s := repl.NewSession(os.Stdout, os.Stderr)
	s.Verify = *verify
	if err := s.Loop(in, *prompt); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runScript evaluates every statement in the file, printing each value.
func runScript(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	s := repl.NewSession(os.Stdout, os.Stderr)
	s.Verify = *verify
	if err := s.Run(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}
	return 0
}

// runEmitAST parses the input file and outputs one tree per statement.
func runEmitAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	p := syntax.NewParser(syntax.NewLexer(f))
	for {
		n, err := p.Parse()
		if errors.Is(err, io.EOF) {
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			return 1
		}
		if *verify {
			if err := syntax.Verify(n); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
				return 1
			}
		}

		switch *astFormat {
		case "json":
			if err := syntax.FprintJSON(os.Stdout, n); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return 1
			}
		default:
			syntax.Fprint(os.Stdout, n)
		}
	}
}

// runEmitTokens scans the input file and prints all tokens.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	lx := syntax.NewLexer(f)

	// Print header
	fmt.Printf("%-12s %s\n", "TOKEN", "LITERAL")
	fmt.Printf("%-12s %s\n", strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		tok, err := lx.Take()
		if err != nil {
			fmt.Println()
			fmt.Println("Errors:")
			fmt.Printf("  %s: %v\n", filename, err)
			return 1
		}

		fmt.Printf("%-12s %s\n", tok.Kind, formatLiteral(tok))

		if tok.IsEOF() {
			return 0
		}
	}
}

// formatLiteral formats a token's payload for display, escaping special characters.
func formatLiteral(tok syntax.Token) string {
	switch tok.Kind {
	case syntax.CharLit:
		return quote(string(tok.Char), '\'')
	case syntax.StringLit:
		return quote(tok.Lit, '"')
	}
	return tok.Lit
}

// quote wraps s in q with escapes visible for readability.
func quote(s string, q rune) string {
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case q:
			b.WriteRune('\\')
			b.WriteRune(r)
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
