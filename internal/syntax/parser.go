package syntax

import "io"

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on Decaf source code.
//
// Parsing is fail-fast: the first syntax error is reported through errh,
// recorded, and aborts the parse. No recovery is attempted and no partial
// tree is returned.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	// Error handling
	errh  func(pos Pos, msg string)
	first error // the error that aborted the parse, nil if none
	abort bool
}

// NewParser creates a new Parser for the given source.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	scanErrh := func(line, col uint32, msg string) {
		if errh != nil {
			errh(NewPos(filename, line, col), msg)
		}
	}

	p := &Parser{
		scanner: NewScanner(filename, src, scanErrh),
		errh:    errh,
	}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		p.tok = _EOF
		return
	}
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports a syntax error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position and aborts the
// parse.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt reports a syntax error at a specific position and aborts the
// parse.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	p.first = &SyntaxError{Pos: pos, Msg: msg}
	p.abort = true

	if p.errh != nil {
		p.errh(pos, msg)
	}

	// Force EOF so every production unwinds without further effects.
	p.tok = _EOF
}

// FirstError returns the error that aborted the parse, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program (a non-empty class list) and returns its
// AST, or nil and the first syntax error.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	if p.tok == _EOF {
		p.syntaxError("expected class definition")
	}
	for p.tok != _EOF {
		prog.Classes = append(prog.Classes, p.classDef())
	}

	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns its string value.
func (p *Parser) name() string {
	if p.tok != _Name {
		p.syntaxError("expected identifier")
		return "_"
	}
	name := p.lit
	p.next()
	return name
}

// trueLit synthesizes the boolean constant true at pos; used for the
// defaulted conditions of foreach loops and array comprehensions.
func (p *Parser) trueLit(pos Pos) Expr {
	lit := &Literal{Kind: BoolLit, Value: "true"}
	lit.pos = pos
	return lit
}

// ----------------------------------------------------------------------------
// Class definitions

// classDef parses: [sealed] class Name [extends Parent] { members... }
func (p *Parser) classDef() *ClassDef {
	d := &ClassDef{}
	d.pos = p.pos

	d.Sealed = p.got(_Sealed)
	p.want(_Class)
	d.Name = p.name()
	if p.got(_Extends) {
		d.Parent = p.name()
	}

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		d.Members = append(d.Members, p.member())
	}
	p.want(_Rbrace)

	return d
}

// member parses one class member. A member starts as Type Identifier and is
// disambiguated by what follows: "(" makes it a method, ";" a field.
func (p *Parser) member() Decl {
	pos := p.pos
	static := p.got(_Static)
	typ := p.typeLit()
	name := p.name()

	if p.tok == _Lparen {
		m := &MethodDef{Static: static, Name: name, ReturnType: typ}
		m.pos = pos
		m.Formals = p.formals()
		m.Body = p.block()
		return m
	}

	if static {
		p.syntaxErrorAt(pos, "field cannot be static")
	}
	f := &VarDef{Name: name, VarType: typ}
	f.pos = pos
	p.want(_Semi)
	return f
}

// formals parses (T1 p1, T2 p2, ...)
func (p *Parser) formals() []*VarDef {
	p.want(_Lparen)

	params := []*VarDef{}
	if p.tok != _Rparen && p.tok != _EOF {
		for {
			f := &VarDef{}
			f.pos = p.pos
			f.VarType = p.typeLit()
			f.Name = p.name()
			params = append(params, f)

			if !p.got(_Comma) {
				break
			}
		}
	}

	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Type literals

// basicTypeKinds maps primitive type tokens to their kinds.
var basicTypeKinds = map[Token]TypeKind{
	_Int:    IntType,
	_Bool:   BoolType,
	_String: StringType,
	_Void:   VoidType,
}

// typeLit parses a type: a primitive type, "class Name", or either followed
// by one or more [] pairs.
func (p *Parser) typeLit() TypeLit {
	var t TypeLit

	switch {
	case p.tok.isBasicType():
		t = p.basicType(basicTypeKinds[p.tok])
	case p.tok == _Class:
		ct := &ClassType{}
		ct.pos = p.pos
		p.next()
		ct.Name = p.name()
		t = ct
	default:
		p.syntaxError("expected type")
		bt := &BasicType{Kind: IntType}
		bt.pos = p.pos
		return bt
	}

	// Array suffix: each [] pair wraps the element type once.
	for p.tok == _Lbrack {
		at := &ArrayType{Elem: t}
		at.pos = p.pos
		p.next()
		p.want(_Rbrack)
		t = at
	}

	return t
}

// basicType consumes the current token as a primitive type.
func (p *Parser) basicType(kind TypeKind) TypeLit {
	t := &BasicType{Kind: kind}
	t.pos = p.pos
	p.next()
	return t
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Semi:
		s := &Skip{}
		s.pos = p.pos
		p.next()
		return s

	case _Lbrace:
		return p.block()

	case _If:
		return p.ifStmt()

	case _While:
		return p.whileStmt()

	case _For:
		return p.forStmt()

	case _Foreach:
		return p.foreachStmt()

	case _Return:
		return p.returnStmt()

	case _Break:
		s := &Break{}
		s.pos = p.pos
		p.next()
		p.want(_Semi)
		return s

	case _Print:
		return p.printStmt()

	case _Scopy:
		return p.scopyStmt()

	case _Int, _Bool, _String, _Void, _Class:
		return p.localVarDef()

	case _Var:
		return p.varBinding()

	default:
		s := p.simpleStmt()
		p.want(_Semi)
		return s
	}
}

// simpleStmt parses an expression statement or an assignment, without the
// trailing semicolon (shared by statement position and for clauses).
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.expr()

	if p.tok != _Assign {
		s := &ExprStmt{X: x}
		s.pos = pos
		return s
	}

	switch x.(type) {
	case *Ident, *Indexed:
		// assignable
	default:
		p.syntaxError("expected lvalue on left side of assignment")
	}

	p.next() // consume =
	a := &Assign{Target: x, Value: p.expr()}
	a.pos = pos
	return a
}

// localVarDef parses a local variable declaration: Type Name ;
func (p *Parser) localVarDef() Stmt {
	d := &VarDef{}
	d.pos = p.pos
	d.VarType = p.typeLit()
	d.Name = p.name()
	p.want(_Semi)
	return d
}

// varBinding parses a deduced-type binding: var Name = Expr ;
// It always constructs a fresh binding whose declared type is deduced later.
func (p *Parser) varBinding() Stmt {
	pos := p.pos
	p.next() // consume var

	dv := &DeductedVar{Name: ""}
	dv.pos = p.pos
	dv.Name = p.name()

	p.want(_Assign)
	a := &Assign{Target: dv, Value: p.expr()}
	a.pos = pos
	p.want(_Semi)
	return a
}

// block parses { stmts... }
func (p *Parser) block() *Block {
	b := newBlock(p.pos, nil)

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.stmt())
	}
	p.want(_Rbrace)

	return b
}

// ifStmt parses either the classic conditional
//
//	if (cond) stmt [else stmt]
//
// or the guarded conditional
//
//	if { cond : stmt ||| cond : stmt }
//
// The token after the if keyword selects the form.
func (p *Parser) ifStmt() Stmt {
	pos := p.pos
	p.next() // consume if

	if p.tok == _Lbrace {
		return p.guardedIf(pos)
	}

	s := &If{}
	s.pos = pos
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Then = p.stmt()

	// Dangling else binds to the nearest unmatched if.
	if p.got(_Else) {
		s.Else = p.stmt()
	}

	return s
}

// guardedIf parses the brace body of a guarded conditional. The branch list
// may be empty; branches keep their source order.
func (p *Parser) guardedIf(pos Pos) Stmt {
	s := &GuardedIf{Guards: []*Guard{}}
	s.pos = pos

	p.want(_Lbrace)
	if p.tok != _Rbrace && p.tok != _EOF {
		for {
			g := &Guard{}
			g.pos = p.pos
			g.Cond = p.expr()
			p.want(_Colon)
			g.Body = p.stmt()
			s.Guards = append(s.Guards, g)

			if !p.got(_Guard) {
				break
			}
		}
	}
	p.want(_Rbrace)

	return s
}

// whileStmt parses: while (cond) stmt
func (p *Parser) whileStmt() Stmt {
	s := &While{}
	s.pos = p.pos

	p.next() // consume while
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Body = p.stmt()

	return s
}

// forStmt parses: for (init; cond; update) stmt
// All three clauses are optional.
func (p *Parser) forStmt() Stmt {
	s := &For{}
	s.pos = p.pos

	p.next() // consume for
	p.want(_Lparen)
	if p.tok != _Semi {
		s.Init = p.simpleStmt()
	}
	p.want(_Semi)
	if p.tok != _Semi {
		s.Cond = p.expr()
	}
	p.want(_Semi)
	if p.tok != _Rparen {
		s.Update = p.simpleStmt()
	}
	p.want(_Rparen)
	s.Body = p.stmt()

	return s
}

// foreachStmt parses: foreach (var x in source [while cond]) stmt
// The bound variable is either explicitly typed or deduced (var). The body
// is normalized to a block; the while clause defaults to true.
func (p *Parser) foreachStmt() Stmt {
	s := &Foreach{}
	s.pos = p.pos

	p.next() // consume foreach
	p.want(_Lparen)

	vd := &VarDef{Binding: true}
	vd.pos = p.pos
	if p.tok == _Var {
		dt := &DeductedType{}
		dt.pos = p.pos
		p.next()
		vd.VarType = dt
	} else {
		vd.VarType = p.typeLit()
	}
	vd.Name = p.name()
	s.Var = vd

	p.want(_In)
	s.Source = p.expr()

	if p.got(_While) {
		s.Cond = p.expr()
	} else {
		s.Cond = p.trueLit(p.pos)
	}
	p.want(_Rparen)

	body := p.stmt()
	if b, ok := body.(*Block); ok {
		s.Body = b
	} else {
		s.Body = newBlock(body.Pos(), []Stmt{body})
	}

	return s
}

// returnStmt parses: return [expr] ;
func (p *Parser) returnStmt() Stmt {
	s := &Return{}
	s.pos = p.pos

	p.next() // consume return
	if p.tok != _Semi {
		s.Result = p.expr()
	}
	p.want(_Semi)

	return s
}

// printStmt parses: print(e, e, ...) ; with at least one argument.
func (p *Parser) printStmt() Stmt {
	s := &Print{}
	s.pos = p.pos

	p.next() // consume print
	p.want(_Lparen)
	s.Args = p.exprList()
	p.want(_Rparen)
	p.want(_Semi)

	return s
}

// scopyStmt parses an object copy: scopy(name, expr) ;
func (p *Parser) scopyStmt() Stmt {
	s := &ObjectCopy{}
	s.pos = p.pos

	p.next() // consume scopy
	p.want(_Lparen)
	s.Name = p.name()
	p.want(_Comma)
	s.X = p.expr()
	p.want(_Rparen)
	p.want(_Semi)

	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing: the recursive call with the operator's own
// precedence makes every level left-associative.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Binary{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Sub, _Not:
		op := &Unary{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op

	default:
		return p.postfixExpr()
	}
}

// postfixExpr parses a primary expression followed by a chain of postfix
// operations. The chain is iterative: each application rewraps the running
// expression as its new base, and the resulting node takes the position of
// the last applied postfix operator.
func (p *Parser) postfixExpr() Expr {
	x := p.operand()

	for {
		switch p.tok {
		case _Dot:
			opPos := p.pos
			p.next()
			name := p.name()
			if p.tok == _Lparen {
				call := &Call{Receiver: x, Method: name}
				call.pos = opPos
				call.Args = p.actuals()
				x = call
			} else {
				sel := &Ident{Owner: x, Name: name}
				sel.pos = opPos
				x = sel
			}

		case _Lbrack:
			x = p.bracketExpr(x)

		default:
			return x
		}
	}
}

// bracketExpr parses the [ ... ] postfix forms:
//
//	x[i]            indexed access
//	x[from : to]    range access
//	x[i] default v  element access with fallback
//
// The default value is parsed at postfix-chain precedence so a trailing
// binary operator applies to the whole element access, not to the value.
func (p *Parser) bracketExpr(x Expr) Expr {
	opPos := p.pos
	p.next() // consume [

	index := p.expr()

	if p.got(_Colon) {
		r := &ArrayRange{Array: x, From: index}
		r.pos = opPos
		r.To = p.expr()
		p.want(_Rbrack)
		return r
	}

	p.want(_Rbrack)

	if p.got(_Default) {
		e := &ArrayElement{Array: x, Index: index}
		e.pos = opPos
		e.Default = p.postfixExpr()
		return e
	}

	idx := &Indexed{Array: x, Index: index}
	idx.pos = opPos
	return idx
}

// operand parses an operand (the base of a postfix chain).
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		pos := p.pos
		name := p.name()
		if p.tok == _Lparen {
			// Global-scope call, no receiver.
			call := &Call{Method: name}
			call.pos = pos
			call.Args = p.actuals()
			return call
		}
		id := &Ident{Name: name}
		id.pos = pos
		return id

	case _Literal:
		lit := &Literal{Kind: p.kind, Value: p.lit}
		lit.pos = p.pos
		p.next()
		return lit

	case _Null:
		n := &Null{}
		n.pos = p.pos
		p.next()
		return n

	case _This:
		t := &This{}
		t.pos = p.pos
		p.next()
		return t

	case _ReadInt:
		r := &ReadInt{}
		r.pos = p.pos
		p.next()
		p.want(_Lparen)
		p.want(_Rparen)
		return r

	case _ReadLine:
		r := &ReadLine{}
		r.pos = p.pos
		p.next()
		p.want(_Lparen)
		p.want(_Rparen)
		return r

	case _New:
		return p.newExpr()

	case _Instanceof:
		t := &TypeTest{}
		t.pos = p.pos
		p.next()
		p.want(_Lparen)
		t.X = p.expr()
		p.want(_Comma)
		t.Class = p.name()
		p.want(_Rparen)
		return t

	case _Lparen:
		pos := p.pos
		p.next()
		if p.tok == _Class {
			// Class cast: (class Name) operand, at postfix precedence.
			p.next()
			c := &TypeCast{}
			c.pos = pos
			c.Class = p.name()
			p.want(_Rparen)
			c.X = p.postfixExpr()
			return c
		}
		x := p.expr()
		p.want(_Rparen)
		return x

	case _Lbrack:
		return p.arrayConstant()

	case _Lcomp:
		return p.arrayComp()

	default:
		p.syntaxError("expected operand")
		id := &Ident{Name: "_"}
		id.pos = p.pos
		return id
	}
}

// arrayConstant parses an array literal: [ c, c, ... ] (possibly empty).
func (p *Parser) arrayConstant() Expr {
	a := &ArrayConstant{Elems: []Expr{}}
	a.pos = p.pos

	p.next() // consume [
	if p.tok != _Rbrack && p.tok != _EOF {
		a.Elems = p.exprList()
	}
	p.want(_Rbrack)

	return a
}

// arrayComp parses an array comprehension:
//
//	[| result for x in source if cond |]
//
// The if clause defaults to true.
func (p *Parser) arrayComp() Expr {
	c := &ArrayComp{}
	c.pos = p.pos

	p.next() // consume [|
	c.Result = p.expr()
	p.want(_For)
	c.VarName = p.name()
	p.want(_In)
	c.Source = p.expr()
	if p.got(_If) {
		c.Cond = p.expr()
	} else {
		c.Cond = p.trueLit(p.pos)
	}
	p.want(_Rcomp)

	return c
}

// newExpr parses object and array creation:
//
//	new Name()
//	new Type[...][length]
//
// For arrays, every empty [] pair before the pair carrying the length adds
// one array dimension to the element type.
func (p *Parser) newExpr() Expr {
	pos := p.pos
	p.next() // consume new

	if p.tok == _Name {
		n := &NewClass{Name: p.lit}
		n.pos = pos
		p.next()
		p.want(_Lparen)
		p.want(_Rparen)
		return n
	}

	var elem TypeLit
	switch {
	case p.tok.isBasicType() && p.tok != _Void:
		elem = p.basicType(basicTypeKinds[p.tok])
	case p.tok == _Class:
		ct := &ClassType{}
		ct.pos = p.pos
		p.next()
		ct.Name = p.name()
		elem = ct
	default:
		p.syntaxError("expected class name or type")
		bt := &BasicType{Kind: IntType}
		bt.pos = p.pos
		elem = bt
	}

	n := &NewArray{}
	n.pos = pos
	for {
		bpos := p.pos
		p.want(_Lbrack)
		if p.tok == _Rbrack {
			p.next()
			at := &ArrayType{Elem: elem}
			at.pos = bpos
			elem = at
			continue
		}
		n.Length = p.expr()
		p.want(_Rbrack)
		break
	}
	n.Elem = elem

	return n
}

// actuals parses a call argument list: (e, e, ...) (possibly empty).
func (p *Parser) actuals() []Expr {
	p.want(_Lparen)

	args := []Expr{}
	if p.tok != _Rparen && p.tok != _EOF {
		args = p.exprList()
	}

	p.want(_Rparen)
	return args
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
