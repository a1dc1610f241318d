package syntax

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers
		{"ident", "foo", []Token{_Name}, []string{"foo"}},
		{"ident_underscore", "_bar", []Token{_Name}, []string{"_bar"}},
		{"ident_mixed", "foo123", []Token{_Name}, []string{"foo123"}},
		{"ident_caps", "FooBar", []Token{_Name}, []string{"FooBar"}},

		// Boolean constants are literals, not keywords
		{"lit_true", "true", []Token{_Literal}, []string{"true"}},
		{"lit_false", "false", []Token{_Literal}, []string{"false"}},

		// Integer literals
		{"int_dec", "123", []Token{_Literal}, []string{"123"}},
		{"int_zero", "0", []Token{_Literal}, []string{"0"}},
		{"int_hex_lower", "0x1f", []Token{_Literal}, []string{"0x1f"}},
		{"int_hex_upper", "0X1F", []Token{_Literal}, []string{"0X1F"}},
		{"int_leading_zero", "007", []Token{_Literal}, []string{"007"}},

		// String literals (decoded content)
		{"string_simple", `"hello"`, []Token{_Literal}, []string{"hello"}},
		{"string_empty", `""`, []Token{_Literal}, []string{""}},
		{"string_escape_n", `"a\nb"`, []Token{_Literal}, []string{"a\nb"}},
		{"string_escape_t", `"a\tb"`, []Token{_Literal}, []string{"a\tb"}},
		{"string_escape_backslash", `"a\\b"`, []Token{_Literal}, []string{"a\\b"}},
		{"string_escape_quote", `"a\"b"`, []Token{_Literal}, []string{"a\"b"}},
		{"string_escape_zero", `"a\0b"`, []Token{_Literal}, []string{"a\x00b"}},

		// Single-char operators
		{"op_add", "+", []Token{_Add}, []string{"+"}},
		{"op_sub", "-", []Token{_Sub}, []string{"-"}},
		{"op_mul", "*", []Token{_Mul}, []string{"*"}},
		{"op_div", "/", []Token{_Div}, []string{"/"}},
		{"op_rem", "%", []Token{_Rem}, []string{"%"}},
		{"op_not", "!", []Token{_Not}, []string{"!"}},
		{"op_lss", "<", []Token{_Lss}, []string{"<"}},
		{"op_gtr", ">", []Token{_Gtr}, []string{">"}},
		{"op_assign", "=", []Token{_Assign}, []string{"="}},
		{"op_colon", ":", []Token{_Colon}, []string{":"}},

		// Two-char operators
		{"op_andand", "&&", []Token{_AndAnd}, []string{"&&"}},
		{"op_oror", "||", []Token{_OrOr}, []string{"||"}},
		{"op_eql", "==", []Token{_Eql}, []string{"=="}},
		{"op_neq", "!=", []Token{_Neq}, []string{"!="}},
		{"op_leq", "<=", []Token{_Leq}, []string{"<="}},
		{"op_geq", ">=", []Token{_Geq}, []string{">="}},
		{"op_concat", "++", []Token{_Concat}, []string{"++"}},
		{"op_repeat", "%%", []Token{_Repeat}, []string{"%%"}},

		// Comprehension and guard delimiters
		{"delim_lcomp", "[|", []Token{_Lcomp}, []string{"[|"}},
		{"delim_rcomp", "|]", []Token{_Rcomp}, []string{"|]"}},
		{"op_guard", "|||", []Token{_Guard}, []string{"|||"}},
		{"guard_then_or", "|| ||", []Token{_OrOr, _OrOr}, []string{"||", "||"}},
		{"lbrack_then_ident", "[x", []Token{_Lbrack, _Name}, []string{"[", "x"}},

		// Delimiters
		{"delim_lparen", "(", []Token{_Lparen}, []string{"("}},
		{"delim_rparen", ")", []Token{_Rparen}, []string{")"}},
		{"delim_lbrack", "[", []Token{_Lbrack}, []string{"["}},
		{"delim_rbrack", "]", []Token{_Rbrack}, []string{"]"}},
		{"delim_lbrace", "{", []Token{_Lbrace}, []string{"{"}},
		{"delim_rbrace", "}", []Token{_Rbrace}, []string{"}"}},
		{"delim_comma", ",", []Token{_Comma}, []string{","}},
		{"delim_semi", ";", []Token{_Semi}, []string{";"}},
		{"delim_dot", ".", []Token{_Dot}, []string{"."}},

		// Keywords
		{"kw_bool", "bool", []Token{_Bool}, []string{"bool"}},
		{"kw_break", "break", []Token{_Break}, []string{"break"}},
		{"kw_class", "class", []Token{_Class}, []string{"class"}},
		{"kw_default", "default", []Token{_Default}, []string{"default"}},
		{"kw_else", "else", []Token{_Else}, []string{"else"}},
		{"kw_extends", "extends", []Token{_Extends}, []string{"extends"}},
		{"kw_for", "for", []Token{_For}, []string{"for"}},
		{"kw_foreach", "foreach", []Token{_Foreach}, []string{"foreach"}},
		{"kw_if", "if", []Token{_If}, []string{"if"}},
		{"kw_in", "in", []Token{_In}, []string{"in"}},
		{"kw_instanceof", "instanceof", []Token{_Instanceof}, []string{"instanceof"}},
		{"kw_int", "int", []Token{_Int}, []string{"int"}},
		{"kw_new", "new", []Token{_New}, []string{"new"}},
		{"kw_null", "null", []Token{_Null}, []string{"null"}},
		{"kw_print", "print", []Token{_Print}, []string{"print"}},
		{"kw_readInt", "readInt", []Token{_ReadInt}, []string{"readInt"}},
		{"kw_readLine", "readLine", []Token{_ReadLine}, []string{"readLine"}},
		{"kw_return", "return", []Token{_Return}, []string{"return"}},
		{"kw_scopy", "scopy", []Token{_Scopy}, []string{"scopy"}},
		{"kw_sealed", "sealed", []Token{_Sealed}, []string{"sealed"}},
		{"kw_static", "static", []Token{_Static}, []string{"static"}},
		{"kw_string", "string", []Token{_String}, []string{"string"}},
		{"kw_this", "this", []Token{_This}, []string{"this"}},
		{"kw_var", "var", []Token{_Var}, []string{"var"}},
		{"kw_void", "void", []Token{_Void}, []string{"void"}},
		{"kw_while", "while", []Token{_While}, []string{"while"}},

		// Case matters for keywords
		{"kw_case_sensitive", "Class", []Token{_Name}, []string{"Class"}},
		{"kw_readint_lower", "readint", []Token{_Name}, []string{"readint"}},

		// Compound sequences
		{"expr_add", "1 + 2", []Token{_Literal, _Add, _Literal}, []string{"1", "+", "2"}},
		{"expr_concat_repeat", "a ++ b %% c",
			[]Token{_Name, _Concat, _Name, _Repeat, _Name},
			[]string{"a", "++", "b", "%%", "c"}},
		{"expr_index", "arr[0]",
			[]Token{_Name, _Lbrack, _Literal, _Rbrack},
			[]string{"arr", "[", "0", "]"}},
		{"expr_range", "a[1:3]",
			[]Token{_Name, _Lbrack, _Literal, _Colon, _Literal, _Rbrack},
			[]string{"a", "[", "1", ":", "3", "]"}},
		{"expr_comp", "[| x for x in a |]",
			[]Token{_Lcomp, _Name, _For, _Name, _In, _Name, _Rcomp},
			[]string{"[|", "x", "for", "x", "in", "a", "|]"}},
		{"guarded", "{ x : y ||| z : w }",
			[]Token{_Lbrace, _Name, _Colon, _Name, _Guard, _Name, _Colon, _Name, _Rbrace},
			[]string{"{", "x", ":", "y", "|||", "z", ":", "w", "}"}},
		{"minus_minus", "a - -b",
			[]Token{_Name, _Sub, _Sub, _Name},
			[]string{"a", "-", "-", "b"}},

		// Comments are skipped
		{"comment_line", "a // comment\nb", []Token{_Name, _Name}, []string{"a", "b"}},
		{"comment_only", "// just a comment", []Token{_EOF}, []string{""}},
		{"comment_eof", "a //", []Token{_Name}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test.decaf", strings.NewReader(tt.src), nil)
			for i, want := range tt.tokens {
				s.Next()
				if s.Token() != want {
					t.Fatalf("token[%d] = %s, want %s", i, s.Token(), want)
				}
				if want != _EOF && s.Literal() != tt.lits[i] {
					t.Errorf("lit[%d] = %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
			s.Next()
			if !s.Token().IsEOF() {
				t.Errorf("expected EOF, got %s %q", s.Token(), s.Literal())
			}
		})
	}
}

func TestScanLitKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"123", IntLit},
		{"0x1F", IntLit},
		{"true", BoolLit},
		{"false", BoolLit},
		{`"hi"`, StringLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test.decaf", strings.NewReader(tt.src), nil)
			s.Next()
			if s.Token() != _Literal {
				t.Fatalf("token = %s, want LITERAL", s.Token())
			}
			if s.LitKind() != tt.kind {
				t.Errorf("kind = %s, want %s", s.LitKind(), tt.kind)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	src := "class Main {\n  int x;\n}\n"
	s := NewScanner("test.decaf", strings.NewReader(src), nil)

	wants := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Class, 1, 1},
		{_Name, 1, 7},
		{_Lbrace, 1, 12},
		{_Int, 2, 3},
		{_Name, 2, 7},
		{_Semi, 2, 8},
		{_Rbrace, 3, 1},
		{_EOF, 4, 1},
	}

	for i, want := range wants {
		s.Next()
		if s.Token() != want.tok {
			t.Fatalf("token[%d] = %s, want %s", i, s.Token(), want.tok)
		}
		pos := s.Pos()
		if pos.Line() != want.line || pos.Col() != want.col {
			t.Errorf("pos[%d] = %d:%d, want %d:%d", i, pos.Line(), pos.Col(), want.line, want.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"bad_char", "a # b", "unexpected character"},
		{"lone_amp", "a & b", "unexpected character '&'"},
		{"lone_bar", "a | b", "unexpected character '|'"},
		{"unterminated_string", `"abc`, "string not terminated"},
		{"newline_in_string", "\"abc\ndef\"", "string not terminated"},
		{"bad_escape", `"a\qb"`, "unknown escape sequence"},
		{"bad_hex", "0xg", "invalid hex digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs []string
			errh := func(line, col uint32, msg string) {
				errs = append(errs, msg)
			}
			s := NewScanner("test.decaf", strings.NewReader(tt.src), errh)
			for {
				s.Next()
				if s.Token().IsEOF() {
					break
				}
			}
			if len(errs) == 0 {
				t.Fatal("expected a lexical error, got none")
			}
			if !strings.Contains(errs[0], tt.wantMsg) {
				t.Errorf("error = %q, want containing %q", errs[0], tt.wantMsg)
			}
		})
	}
}

func TestScanErrorPosition(t *testing.T) {
	var line, col uint32
	errh := func(l, c uint32, msg string) {
		if line == 0 {
			line, col = l, c
		}
	}
	s := NewScanner("test.decaf", strings.NewReader("x\n  # y\n"), errh)
	for {
		s.Next()
		if s.Token().IsEOF() {
			break
		}
	}
	if line != 2 || col != 3 {
		t.Errorf("error position = %d:%d, want 2:3", line, col)
	}
}
