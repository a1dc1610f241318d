package syntax

import (
	"fmt"
	"testing"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_Name, "NAME"},
		{_Literal, "LITERAL"},
		{_Assign, "="},
		{_OrOr, "||"},
		{_AndAnd, "&&"},
		{_Eql, "=="},
		{_Neq, "!="},
		{_Leq, "<="},
		{_Geq, ">="},
		{_Concat, "++"},
		{_Repeat, "%%"},
		{_Not, "!"},
		{_Lcomp, "[|"},
		{_Rcomp, "|]"},
		{_Guard, "|||"},
		{_Class, "class"},
		{_Foreach, "foreach"},
		{_Instanceof, "instanceof"},
		{_ReadInt, "readInt"},
		{_Scopy, "scopy"},
		{tokenCount + 1, fmt.Sprintf("token(%d)", int(tokenCount)+1)},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenPrecedence(t *testing.T) {
	levels := []struct {
		toks []Token
		want int
	}{
		{[]Token{_OrOr}, 1},
		{[]Token{_AndAnd}, 2},
		{[]Token{_Eql, _Neq}, 3},
		{[]Token{_Lss, _Leq, _Gtr, _Geq}, 4},
		{[]Token{_Concat}, 5},
		{[]Token{_Repeat}, 6},
		{[]Token{_Add, _Sub}, 7},
		{[]Token{_Mul, _Div, _Rem}, 8},
	}

	for _, lv := range levels {
		for _, tok := range lv.toks {
			if got := tok.Precedence(); got != lv.want {
				t.Errorf("%s.Precedence() = %d, want %d", tok, got, lv.want)
			}
		}
	}

	// Non-binary tokens have no precedence.
	for _, tok := range []Token{_EOF, _Name, _Assign, _Not, _Lparen, _Class} {
		if got := tok.Precedence(); got != 0 {
			t.Errorf("%s.Precedence() = %d, want 0", tok, got)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	for _, tok := range []Token{_Bool, _Class, _Foreach, _Scopy, _While} {
		if !tok.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false", tok)
		}
	}
	for _, tok := range []Token{_Name, _Literal, _OrOr, _Lbrace, _EOF} {
		if tok.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true", tok)
		}
	}

	for _, tok := range []Token{_Assign, _OrOr, _Concat, _Rem, _Not} {
		if !tok.IsOperator() {
			t.Errorf("%s.IsOperator() = false", tok)
		}
	}
	for _, tok := range []Token{_Lparen, _Comma, _Class, _Name} {
		if tok.IsOperator() {
			t.Errorf("%s.IsOperator() = true", tok)
		}
	}

	if !_EOF.IsEOF() || _Name.IsEOF() {
		t.Error("IsEOF misclassifies")
	}

	for _, tok := range []Token{_Int, _Bool, _String, _Void} {
		if !tok.isBasicType() {
			t.Errorf("%s.isBasicType() = false", tok)
		}
	}
	if _Class.isBasicType() {
		t.Error("class counted as a basic type")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"class", _Class},
		{"foreach", _Foreach},
		{"instanceof", _Instanceof},
		{"readInt", _ReadInt},
		{"readLine", _ReadLine},
		{"var", _Var},
		{"scopy", _Scopy},
		{"sealed", _Sealed},

		// Not keywords
		{"foo", _Name},
		{"Class", _Name},
		{"readint", _Name},
		{"classes", _Name},

		// Boolean literals are scanned as _Literal, not keywords.
		{"true", _Name},
		{"false", _Name},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestLitKindString(t *testing.T) {
	tests := []struct {
		kind LitKind
		want string
	}{
		{IntLit, "int"},
		{BoolLit, "bool"},
		{StringLit, "string"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LitKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
