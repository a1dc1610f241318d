// Package syntax implements lexical and syntactic analysis for the Decaf
// programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name    // identifier: foo, Main
	_Literal // literal value (used with LitKind)

	// Operators (ordered by precedence, low to high)
	// Assignment
	_Assign // =

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Array operators
	_Concat // ++
	_Repeat // %%

	// Arithmetic operators (additive)
	_Add // +
	_Sub // -

	// Arithmetic operators (multiplicative)
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Lcomp  // [| (comprehension begin)
	_Rcomp  // |] (comprehension end)
	_Guard  // ||| (guard branch separator)
	_Comma  // ,
	_Semi   // ;
	_Colon  // :
	_Dot    // .

	// Keywords
	_Bool
	_Break
	_Class
	_Default
	_Else
	_Extends
	_For
	_Foreach
	_If
	_In
	_Instanceof
	_Int
	_New
	_Null
	_Print
	_ReadInt
	_ReadLine
	_Return
	_Scopy
	_Sealed
	_Static
	_String
	_This
	_Var
	_Void
	_While

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Concat: "++",
	_Repeat: "%%",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lcomp:  "[|",
	_Rcomp:  "|]",
	_Guard:  "|||",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",
	_Dot:    ".",

	_Bool:       "bool",
	_Break:      "break",
	_Class:      "class",
	_Default:    "default",
	_Else:       "else",
	_Extends:    "extends",
	_For:        "for",
	_Foreach:    "foreach",
	_If:         "if",
	_In:         "in",
	_Instanceof: "instanceof",
	_Int:        "int",
	_New:        "new",
	_Null:       "null",
	_Print:      "print",
	_ReadInt:    "readInt",
	_ReadLine:   "readLine",
	_Return:     "return",
	_Scopy:      "scopy",
	_Sealed:     "sealed",
	_Static:     "static",
	_String:     "string",
	_This:       "this",
	_Var:        "var",
	_Void:       "void",
	_While:      "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == !=
//	4: < <= > >=
//	5: ++ (array concat)
//	6: %% (array repeat)
//	7: + -
//	8: * / %
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Eql, _Neq:
		return 3
	case _Lss, _Leq, _Gtr, _Geq:
		return 4
	case _Concat:
		return 5
	case _Repeat:
		return 6
	case _Add, _Sub:
		return 7
	case _Mul, _Div, _Rem:
		return 8
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Bool && t <= _While
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// isBasicType reports whether t names one of the primitive types.
func (t Token) isBasicType() bool {
	switch t {
	case _Int, _Bool, _String, _Void:
		return true
	}
	return false
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123, 0x1F
	BoolLit                  // true, false
	StringLit                // "hello", "line\n"
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	BoolLit:   "bool",
	StringLit: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// Note: true and false are NOT keywords - they are scanned as boolean
// _Literal tokens.
var keywords = map[string]Token{
	"bool":       _Bool,
	"break":      _Break,
	"class":      _Class,
	"default":    _Default,
	"else":       _Else,
	"extends":    _Extends,
	"for":        _For,
	"foreach":    _Foreach,
	"if":         _If,
	"in":         _In,
	"instanceof": _Instanceof,
	"int":        _Int,
	"new":        _New,
	"null":       _Null,
	"print":      _Print,
	"readInt":    _ReadInt,
	"readLine":   _ReadLine,
	"return":     _Return,
	"scopy":      _Scopy,
	"sealed":     _Sealed,
	"static":     _Static,
	"string":     _String,
	"this":       _This,
	"var":        _Var,
	"void":       _Void,
	"while":      _While,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
