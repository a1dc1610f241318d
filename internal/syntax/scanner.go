package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on Decaf source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number, string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	// Skip whitespace
	for isWhitespace(s.ch) {
		s.nextch()
	}

	// Record token start position
	s.tokPos = s.pos()

	// Scan token based on current character
	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// scanOperator returned true, meaning we skipped a comment
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier, keyword, or boolean literal.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()

	// true and false are boolean literals, everything else goes
	// through the keyword table.
	if s.lit == "true" || s.lit == "false" {
		s.tok = _Literal
		s.kind = BoolLit
		return
	}
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans an integer literal (decimal or 0x hexadecimal).
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.kind = IntLit

	if s.ch == '0' {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		if lower(s.ch) == 'x' {
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			s.scanHexDigits()
		} else if isDigit(s.ch) {
			// Leading zeros in decimal are allowed (e.g., 007)
			s.scanDecimalDigits()
		}
	} else {
		s.scanDecimalDigits()
	}

	s.lit = s.litBuf.String()
	s.tok = _Literal
}

// scanDecimalDigits scans decimal digits.
func (s *Scanner) scanDecimalDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanHexDigits scans hexadecimal digits.
func (s *Scanner) scanHexDigits() {
	if !isHexDigit(s.ch) {
		s.error("invalid hex digit")
		return
	}
	for isHexDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanString scans a string literal.
// The resulting literal is the decoded string content (escape sequences are interpreted).
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	var b strings.Builder

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		case s.ch == '\\':
			if r, ok := s.scanEscape(); ok {
				b.WriteRune(r)
			}

		case s.ch == '\n' || s.ch < 0:
			s.error("string not terminated")
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		default:
			b.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	switch s.ch {
	case 'n':
		s.nextch()
		return '\n', true
	case 't':
		s.nextch()
		return '\t', true
	case 'r':
		s.nextch()
		return '\r', true
	case '\\':
		s.nextch()
		return '\\', true
	case '"':
		s.nextch()
		return '"', true
	case '0':
		s.nextch()
		return 0, true
	default:
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
		return 0, false
	}
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		if s.ch == '+' {
			s.nextch()
			s.tok = _Concat
			s.lit = "++"
		} else {
			s.tok = _Add
			s.lit = "+"
		}
	case '-':
		s.tok = _Sub
		s.lit = "-"
	case '*':
		s.tok = _Mul
		s.lit = "*"
	case '/':
		if s.ch == '/' {
			// Line comment
			s.skipLineComment()
			return true
		}
		s.tok = _Div
		s.lit = "/"
	case '%':
		if s.ch == '%' {
			s.nextch()
			s.tok = _Repeat
			s.lit = "%%"
		} else {
			s.tok = _Rem
			s.lit = "%"
		}
	case '&':
		if s.ch == '&' {
			s.nextch()
			s.tok = _AndAnd
			s.lit = "&&"
		} else {
			s.error("unexpected character '&'")
			s.tok = _Error
			s.lit = "&"
		}
	case '|':
		switch s.ch {
		case '|':
			s.nextch()
			if s.ch == '|' {
				s.nextch()
				s.tok = _Guard
				s.lit = "|||"
			} else {
				s.tok = _OrOr
				s.lit = "||"
			}
		case ']':
			s.nextch()
			s.tok = _Rcomp
			s.lit = "|]"
		default:
			s.error("unexpected character '|'")
			s.tok = _Error
			s.lit = "|"
		}
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		} else {
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		} else {
			s.tok = _Gtr
			s.lit = ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			s.tok = _Not
			s.lit = "!"
		}
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case '[':
		if s.ch == '|' {
			s.nextch()
			s.tok = _Lcomp
			s.lit = "[|"
		} else {
			s.tok = _Lbrack
			s.lit = "["
		}
	case ']':
		s.tok = _Rbrack
		s.lit = "]"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	case ':':
		s.tok = _Colon
		s.lit = ":"
	case '.':
		s.tok = _Dot
		s.lit = "."
	}

	return false
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	// Already consumed the second /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
