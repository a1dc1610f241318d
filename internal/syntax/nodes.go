package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 main classes of nodes: Declarations, Statements, Expressions,
// and Type literals. All nodes implement the Node interface and further
// implement the interface of their family. The set of concrete node types is
// closed: marker methods restrict implementations to this package.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos         // position of the node's leading token
	Accept(v Visitor) // double dispatch into v
	aNode()           // marker method to restrict implementations to this package
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Type is the resolved semantic type of an expression. It is opaque to this
// package: the parser leaves every slot nil, and a later semantic phase is
// the single writer. Declared here only so the slot can live on the nodes.
type Type interface{}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()

	// Type returns the resolved type, or nil before semantic analysis.
	Type() Type
	// SetType records the resolved type. Owned by the semantic phase;
	// never called during parsing.
	SetType(Type)
}

// TypeLit is the interface for all type literal nodes.
type TypeLit interface {
	Node
	aTypeLit()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// expr is embedded in all expression nodes. It carries the write-once type
// slot filled by the semantic phase.
type expr struct {
	node
	typ Type
}

func (*expr) aExpr()           {}
func (e *expr) Type() Type     { return e.typ }
func (e *expr) SetType(t Type) { e.typ = t }

// typeLit is embedded in all type literal nodes.
type typeLit struct{ node }

func (*typeLit) aTypeLit() {}

// ----------------------------------------------------------------------------
// Program and declarations

// Program is the root of every AST: a non-empty ordered list of classes.
type Program struct {
	node
	Classes []*ClassDef // in source order
}

// ClassDef represents a class definition:
// [sealed] class Name [extends Parent] { members... }
type ClassDef struct {
	decl
	Name    string
	Parent  string // "" if the class has no parent
	Sealed  bool
	Members []Decl // fields (*VarDef) and methods (*MethodDef), in source order
}

// MethodDef represents a method definition inside a class.
type MethodDef struct {
	decl
	Static     bool
	Name       string
	ReturnType TypeLit
	Formals    []*VarDef
	Body       *Block
}

// VarDef represents a variable definition: a class field, a formal
// parameter, a local declaration, or a foreach binding (Binding == true,
// printed "varbind"). It is usable both as a declaration and a statement.
type VarDef struct {
	decl
	Name    string
	VarType TypeLit
	Binding bool
}

func (*VarDef) aStmt() {}

// ----------------------------------------------------------------------------
// Statements

// Skip represents the no-op statement ";".
type Skip struct {
	stmt
}

// Block represents a braced statement list. Stmts is never nil.
type Block struct {
	stmt
	Stmts []Stmt
}

// While represents: while (Cond) Body
type While struct {
	stmt
	Cond Expr
	Body Stmt
}

// For represents a C-style loop: for (Init; Cond; Update) Body
// Each of Init, Cond, Update may be nil.
type For struct {
	stmt
	Init   Stmt
	Cond   Expr
	Update Stmt
	Body   Stmt
}

// Foreach represents: foreach (var x in Source while Cond) Body
// The bound variable may carry a deduced type. Body is always a block: a
// non-block source statement is wrapped in a synthesized singleton block at
// construction. Cond defaults to boolean true when the while clause is
// omitted.
type Foreach struct {
	stmt
	Var    *VarDef
	Source Expr
	Cond   Expr
	Body   *Block
}

// If represents: if (Cond) Then [else Else]
type If struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else branch
}

// GuardedIf represents a guarded conditional: if { e : s ||| e : s }
// Guards is never nil (may be empty) and preserves source order.
type GuardedIf struct {
	stmt
	Guards []*Guard
}

// Guard is one condition : statement branch of a GuardedIf.
type Guard struct {
	stmt
	Cond Expr
	Body Stmt
}

// Break represents a break statement.
type Break struct {
	stmt
}

// Return represents: return [Result]
type Return struct {
	stmt
	Result Expr // nil for a bare return
}

// Print represents: print(e, e, ...) with at least one argument.
type Print struct {
	stmt
	Args []Expr
}

// ObjectCopy represents an object copy statement: scopy(Name, X)
type ObjectCopy struct {
	stmt
	Name string
	X    Expr
}

// Assign represents: Target = Value
// Target is an lvalue (*Ident, *Indexed) or a *DeductedVar for the
// deduced-type binding form "var x = e".
type Assign struct {
	stmt
	Target Expr
	Value  Expr
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Expressions

// Ident represents a variable or field reference. Owner is the receiver
// expression for field accesses (x.f) and nil for plain references.
type Ident struct {
	expr
	Owner Expr
	Name  string
}

// DeductedVar represents the left side of a deduced-type binding:
// var Name = expr. Its declared type is deduced by a later phase.
type DeductedVar struct {
	expr
	Name string
}

// Literal represents an int, bool, or string constant. Value holds the
// decoded literal text.
type Literal struct {
	expr
	Kind  LitKind
	Value string
}

// Null represents the null constant.
type Null struct {
	expr
}

// This represents the this expression.
type This struct {
	expr
}

// ReadInt represents a readInt() expression.
type ReadInt struct {
	expr
}

// ReadLine represents a readLine() expression.
type ReadLine struct {
	expr
}

// Unary represents a unary operation. The operator identity is carried in
// Op (one node shape for all unary operators).
type Unary struct {
	expr
	Op Token // _Sub (negation) or _Not
	X  Expr
}

// Binary represents a binary operation. The operator identity is carried in
// Op (one node shape for all arithmetic/logical/array operators).
type Binary struct {
	expr
	Op Token
	X  Expr // left operand
	Y  Expr // right operand
}

// Call represents a method or function call. Receiver is nil for
// global-scope calls.
type Call struct {
	expr
	Receiver Expr
	Method   string
	Args     []Expr
}

// NewClass represents: new Name()
type NewClass struct {
	expr
	Name string
}

// NewArray represents: new Elem[...][Length]
// Empty bracket pairs before the one carrying the length each add one array
// dimension to Elem.
type NewArray struct {
	expr
	Elem   TypeLit
	Length Expr
}

// Indexed represents an array element access: Array[Index]
type Indexed struct {
	expr
	Array Expr
	Index Expr
}

// ArrayRange represents a slice access: Array[From : To]
type ArrayRange struct {
	expr
	Array Expr
	From  Expr
	To    Expr
}

// ArrayElement represents an element access with a fallback value:
// Array[Index] default Default
type ArrayElement struct {
	expr
	Array   Expr
	Index   Expr
	Default Expr
}

// ArrayConstant represents an array literal: [ c, c, ... ]
// Elems preserves source order and may be empty.
type ArrayConstant struct {
	expr
	Elems []Expr
}

// ArrayComp represents an array comprehension:
// [| Result for VarName in Source if Cond |]
// Cond defaults to boolean true when the if clause is omitted.
type ArrayComp struct {
	expr
	VarName string
	Source  Expr
	Cond    Expr
	Result  Expr
}

// TypeCast represents a class cast: (class Name) X
type TypeCast struct {
	expr
	Class string
	X     Expr
}

// TypeTest represents: instanceof(X, Name)
type TypeTest struct {
	expr
	X     Expr
	Class string
}

// ----------------------------------------------------------------------------
// Type literals

// TypeKind identifies a primitive type.
type TypeKind uint8

const (
	VoidType TypeKind = iota
	IntType
	BoolType
	StringType
)

// String returns the primitive type's canonical header keyword.
func (k TypeKind) String() string {
	switch k {
	case IntType:
		return "inttype"
	case BoolType:
		return "booltype"
	case VoidType:
		return "voidtype"
	default:
		return "stringtype"
	}
}

// BasicType represents one of the primitive types.
type BasicType struct {
	typeLit
	Kind TypeKind
}

// ClassType represents a class type: class Name
type ClassType struct {
	typeLit
	Name string
}

// ArrayType represents an array type: Elem[]
type ArrayType struct {
	typeLit
	Elem TypeLit
}

// DeductedType is the placeholder type of a deduced binding, resolved from
// the initializer by a later phase.
type DeductedType struct {
	typeLit
}

// newBlock wraps stmts in a Block at pos; used both for parsed blocks and
// for the synthesized singleton block around a bare foreach body.
func newBlock(pos Pos, stmts []Stmt) *Block {
	if stmts == nil {
		stmts = []Stmt{}
	}
	b := &Block{Stmts: stmts}
	b.pos = pos
	return b
}
