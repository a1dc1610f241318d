package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the canonical indented representation of the AST to w.
// The output is stable for a given tree and serves as the reference form
// in tests and tooling.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// String returns the canonical indented representation of the AST.
func String(node Node) string {
	var sb strings.Builder
	Fprint(&sb, node)
	return sb.String()
}

// printer implements Visitor. Every node variant has a case; adding a node
// type without extending the printer is a compile error.
type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}
	node.Accept(p)
}

// ----------------------------------------------------------------------------
// Declarations

func (p *printer) VisitProgram(n *Program) {
	p.printf("program\n")
	p.indent++
	for _, c := range n.Classes {
		p.print(c)
	}
	p.indent--
}

func (p *printer) VisitClassDef(n *ClassDef) {
	parent := n.Parent
	if parent == "" {
		parent = "<empty>"
	}
	if n.Sealed {
		p.printf("sealed class %s %s\n", n.Name, parent)
	} else {
		p.printf("class %s %s\n", n.Name, parent)
	}
	p.indent++
	for _, m := range n.Members {
		p.print(m)
	}
	p.indent--
}

func (p *printer) VisitMethodDef(n *MethodDef) {
	if n.Static {
		p.printf("static func %s %s\n", n.Name, typeString(n.ReturnType))
	} else {
		p.printf("func %s %s\n", n.Name, typeString(n.ReturnType))
	}
	p.indent++
	p.printf("formals\n")
	p.indent++
	for _, f := range n.Formals {
		p.print(f)
	}
	p.indent--
	p.print(n.Body)
	p.indent--
}

func (p *printer) VisitVarDef(n *VarDef) {
	if n.Binding {
		p.printf("varbind %s %s\n", n.Name, typeString(n.VarType))
	} else {
		p.printf("vardef %s %s\n", n.Name, typeString(n.VarType))
	}
}

// ----------------------------------------------------------------------------
// Statements

func (p *printer) VisitSkip(n *Skip) {
	// prints nothing
}

func (p *printer) VisitBlock(n *Block) {
	p.printf("stmtblock\n")
	p.indent++
	for _, s := range n.Stmts {
		p.print(s)
	}
	p.indent--
}

func (p *printer) VisitWhile(n *While) {
	p.printf("while\n")
	p.indent++
	p.print(n.Cond)
	p.print(n.Body)
	p.indent--
}

func (p *printer) VisitFor(n *For) {
	p.printf("for\n")
	p.indent++
	p.printChild(n.Init)
	p.printChild(n.Cond)
	p.printChild(n.Update)
	p.print(n.Body)
	p.indent--
}

// printChild prints an optional child, with an explicit marker when absent.
func (p *printer) printChild(n Node) {
	if n == nil {
		p.printf("<empty>\n")
		return
	}
	p.print(n)
}

func (p *printer) VisitIf(n *If) {
	p.printf("if\n")
	p.indent++
	p.print(n.Cond)
	p.print(n.Then)
	p.indent--
	if n.Else != nil {
		p.printf("else\n")
		p.indent++
		p.print(n.Else)
		p.indent--
	}
}

func (p *printer) VisitGuardedIf(n *GuardedIf) {
	p.printf("guarded\n")
	p.indent++
	if len(n.Guards) == 0 {
		p.printf("<empty>\n")
	} else {
		for _, g := range n.Guards {
			p.print(g)
		}
	}
	p.indent--
}

func (p *printer) VisitGuard(n *Guard) {
	p.printf("guard\n")
	p.indent++
	p.print(n.Cond)
	p.print(n.Body)
	p.indent--
}

func (p *printer) VisitForeach(n *Foreach) {
	p.printf("foreach\n")
	p.indent++
	p.print(n.Var)
	p.print(n.Source)
	p.print(n.Cond)
	p.print(n.Body)
	p.indent--
}

func (p *printer) VisitBreak(n *Break) {
	p.printf("break\n")
}

func (p *printer) VisitReturn(n *Return) {
	p.printf("return\n")
	if n.Result != nil {
		p.indent++
		p.print(n.Result)
		p.indent--
	}
}

func (p *printer) VisitPrint(n *Print) {
	p.printf("print\n")
	p.indent++
	for _, e := range n.Args {
		p.print(e)
	}
	p.indent--
}

func (p *printer) VisitObjectCopy(n *ObjectCopy) {
	p.printf("scopy\n")
	p.indent++
	p.printf("%s\n", n.Name)
	p.print(n.X)
	p.indent--
}

func (p *printer) VisitAssign(n *Assign) {
	p.printf("assign\n")
	p.indent++
	p.print(n.Target)
	p.print(n.Value)
	p.indent--
}

func (p *printer) VisitExprStmt(n *ExprStmt) {
	p.print(n.X)
}

// ----------------------------------------------------------------------------
// Expressions

func (p *printer) VisitIdent(n *Ident) {
	p.printf("varref %s\n", n.Name)
	if n.Owner != nil {
		p.indent++
		p.print(n.Owner)
		p.indent--
	}
}

func (p *printer) VisitDeductedVar(n *DeductedVar) {
	p.printf("var %s\n", n.Name)
}

func (p *printer) VisitLiteral(n *Literal) {
	switch n.Kind {
	case IntLit:
		p.printf("intconst %s\n", n.Value)
	case BoolLit:
		p.printf("boolconst %s\n", n.Value)
	case StringLit:
		p.printf("stringconst %s\n", quote(n.Value))
	}
}

func (p *printer) VisitNull(n *Null) {
	p.printf("null\n")
}

func (p *printer) VisitThis(n *This) {
	p.printf("this\n")
}

func (p *printer) VisitReadInt(n *ReadInt) {
	p.printf("readint\n")
}

func (p *printer) VisitReadLine(n *ReadLine) {
	p.printf("readline\n")
}

func (p *printer) VisitUnary(n *Unary) {
	p.printf("%s\n", unaryOpNames[n.Op])
	p.indent++
	p.print(n.X)
	p.indent--
}

func (p *printer) VisitBinary(n *Binary) {
	p.printf("%s\n", binaryOpNames[n.Op])
	p.indent++
	p.print(n.X)
	p.print(n.Y)
	p.indent--
}

func (p *printer) VisitCall(n *Call) {
	p.printf("call %s\n", n.Method)
	p.indent++
	if n.Receiver != nil {
		p.print(n.Receiver)
	} else {
		p.printf("<empty>\n")
	}
	for _, a := range n.Args {
		p.print(a)
	}
	p.indent--
}

func (p *printer) VisitNewClass(n *NewClass) {
	p.printf("newobj %s\n", n.Name)
}

func (p *printer) VisitNewArray(n *NewArray) {
	p.printf("newarray %s\n", typeString(n.Elem))
	p.indent++
	p.print(n.Length)
	p.indent--
}

func (p *printer) VisitIndexed(n *Indexed) {
	p.printf("arrref\n")
	p.indent++
	p.print(n.Array)
	p.print(n.Index)
	p.indent--
}

func (p *printer) VisitArrayRange(n *ArrayRange) {
	p.printf("arrref\n")
	p.indent++
	p.print(n.Array)
	p.printf("range\n")
	p.indent++
	p.print(n.From)
	p.print(n.To)
	p.indent--
	p.indent--
}

func (p *printer) VisitArrayElement(n *ArrayElement) {
	p.printf("arrref\n")
	p.indent++
	p.print(n.Array)
	p.print(n.Index)
	p.printf("default\n")
	p.indent++
	p.print(n.Default)
	p.indent--
	p.indent--
}

func (p *printer) VisitArrayConstant(n *ArrayConstant) {
	p.printf("array const\n")
	p.indent++
	if len(n.Elems) == 0 {
		p.printf("<empty>\n")
	} else {
		for _, e := range n.Elems {
			p.print(e)
		}
	}
	p.indent--
}

func (p *printer) VisitArrayComp(n *ArrayComp) {
	p.printf("array comp\n")
	p.indent++
	p.printf("varbind %s\n", n.VarName)
	p.print(n.Source)
	p.print(n.Cond)
	p.print(n.Result)
	p.indent--
}

func (p *printer) VisitTypeCast(n *TypeCast) {
	p.printf("classcast\n")
	p.indent++
	p.printf("%s\n", n.Class)
	p.print(n.X)
	p.indent--
}

func (p *printer) VisitTypeTest(n *TypeTest) {
	p.printf("instanceof\n")
	p.indent++
	p.print(n.X)
	p.printf("%s\n", n.Class)
	p.indent--
}

// ----------------------------------------------------------------------------
// Type literals
//
// Type literals normally appear inline inside another node's line (see
// typeString); visiting one directly prints the inline form on its own line.

func (p *printer) VisitBasicType(n *BasicType) {
	p.printf("%s\n", n.Kind)
}

func (p *printer) VisitClassType(n *ClassType) {
	p.printf("classtype %s\n", n.Name)
}

func (p *printer) VisitArrayType(n *ArrayType) {
	p.printf("arrtype %s\n", typeString(n.Elem))
}

func (p *printer) VisitDeductedType(n *DeductedType) {
	p.printf("var\n")
}

// typeString returns the inline representation of a type literal.
func typeString(t TypeLit) string {
	switch t := t.(type) {
	case *BasicType:
		return t.Kind.String()
	case *ClassType:
		return "classtype " + t.Name
	case *ArrayType:
		return "arrtype " + typeString(t.Elem)
	case *DeductedType:
		return "var"
	default:
		return fmt.Sprintf("<%T>", t)
	}
}

// Operator mnemonics for the canonical form.
var unaryOpNames = map[Token]string{
	_Sub: "neg",
	_Not: "not",
}

var binaryOpNames = map[Token]string{
	_Add:    "add",
	_Sub:    "sub",
	_Mul:    "mul",
	_Div:    "div",
	_Rem:    "mod",
	_AndAnd: "and",
	_OrOr:   "or",
	_Eql:    "equ",
	_Neq:    "neq",
	_Lss:    "les",
	_Leq:    "leq",
	_Gtr:    "gtr",
	_Geq:    "geq",
	_Repeat: "array repeat",
	_Concat: "array concat",
}

// quote returns s as a double-quoted string with the escapes the language
// recognizes reinstated.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
