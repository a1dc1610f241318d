// Package main implements the Decaf frontend entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/decaf/internal/syntax"
)

// Frontend flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	output     = flag.String("o", "", "Output file")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Decaf Frontend %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: decafc [options] <file.decaf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("decafc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: decafc [options] <file.decaf>")
		os.Exit(1)
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

	// Default: syntax check only.
	os.Exit(runCheck(filename))
}

// outputWriter returns the destination for emitted output, honoring -o.
func outputWriter() (io.Writer, func(), error) {
	if *output == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(*output)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// runCheck parses the input file and reports syntax errors.
func runCheck(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	errh := func(pos syntax.Pos, msg string) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
	}

	p := syntax.NewParser(filename, f, errh)
	if _, err := p.Parse(); err != nil {
		return 1
	}
	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	errh := func(pos syntax.Pos, msg string) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
	}

	p := syntax.NewParser(filename, f, errh)
	ast, err := p.Parse()
	if err != nil {
		return 1
	}

	w, closeFn, err := outputWriter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer closeFn()

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(w, ast); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(w, ast)
	}

	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		pos := s.Pos()
		lit := s.Literal()

		fmt.Printf("%-20s %-12s %s\n", pos.String(), tok.String(), formatLiteral(lit))

		if tok.IsEOF() {
			break
		}
	}

	if len(errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
