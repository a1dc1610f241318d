package syntax

// Visitor is the double-dispatch contract for external phases. It declares
// one method per concrete node type, so a phase that misses a variant fails
// to compile. Traversal into children is the visitor's responsibility; a
// node's Accept invokes exactly one method.
type Visitor interface {
	VisitProgram(*Program)
	VisitClassDef(*ClassDef)
	VisitMethodDef(*MethodDef)
	VisitVarDef(*VarDef)

	VisitSkip(*Skip)
	VisitBlock(*Block)
	VisitWhile(*While)
	VisitFor(*For)
	VisitForeach(*Foreach)
	VisitIf(*If)
	VisitGuardedIf(*GuardedIf)
	VisitGuard(*Guard)
	VisitBreak(*Break)
	VisitReturn(*Return)
	VisitPrint(*Print)
	VisitObjectCopy(*ObjectCopy)
	VisitAssign(*Assign)
	VisitExprStmt(*ExprStmt)

	VisitIdent(*Ident)
	VisitDeductedVar(*DeductedVar)
	VisitLiteral(*Literal)
	VisitNull(*Null)
	VisitThis(*This)
	VisitReadInt(*ReadInt)
	VisitReadLine(*ReadLine)
	VisitUnary(*Unary)
	VisitBinary(*Binary)
	VisitCall(*Call)
	VisitNewClass(*NewClass)
	VisitNewArray(*NewArray)
	VisitIndexed(*Indexed)
	VisitArrayRange(*ArrayRange)
	VisitArrayElement(*ArrayElement)
	VisitArrayConstant(*ArrayConstant)
	VisitArrayComp(*ArrayComp)
	VisitTypeCast(*TypeCast)
	VisitTypeTest(*TypeTest)

	VisitBasicType(*BasicType)
	VisitClassType(*ClassType)
	VisitArrayType(*ArrayType)
	VisitDeductedType(*DeductedType)
}

func (n *Program) Accept(v Visitor)       { v.VisitProgram(n) }
func (n *ClassDef) Accept(v Visitor)      { v.VisitClassDef(n) }
func (n *MethodDef) Accept(v Visitor)     { v.VisitMethodDef(n) }
func (n *VarDef) Accept(v Visitor)        { v.VisitVarDef(n) }
func (n *Skip) Accept(v Visitor)          { v.VisitSkip(n) }
func (n *Block) Accept(v Visitor)         { v.VisitBlock(n) }
func (n *While) Accept(v Visitor)         { v.VisitWhile(n) }
func (n *For) Accept(v Visitor)           { v.VisitFor(n) }
func (n *Foreach) Accept(v Visitor)       { v.VisitForeach(n) }
func (n *If) Accept(v Visitor)            { v.VisitIf(n) }
func (n *GuardedIf) Accept(v Visitor)     { v.VisitGuardedIf(n) }
func (n *Guard) Accept(v Visitor)         { v.VisitGuard(n) }
func (n *Break) Accept(v Visitor)         { v.VisitBreak(n) }
func (n *Return) Accept(v Visitor)        { v.VisitReturn(n) }
func (n *Print) Accept(v Visitor)         { v.VisitPrint(n) }
func (n *ObjectCopy) Accept(v Visitor)    { v.VisitObjectCopy(n) }
func (n *Assign) Accept(v Visitor)        { v.VisitAssign(n) }
func (n *ExprStmt) Accept(v Visitor)      { v.VisitExprStmt(n) }
func (n *Ident) Accept(v Visitor)         { v.VisitIdent(n) }
func (n *DeductedVar) Accept(v Visitor)   { v.VisitDeductedVar(n) }
func (n *Literal) Accept(v Visitor)       { v.VisitLiteral(n) }
func (n *Null) Accept(v Visitor)          { v.VisitNull(n) }
func (n *This) Accept(v Visitor)          { v.VisitThis(n) }
func (n *ReadInt) Accept(v Visitor)       { v.VisitReadInt(n) }
func (n *ReadLine) Accept(v Visitor)      { v.VisitReadLine(n) }
func (n *Unary) Accept(v Visitor)         { v.VisitUnary(n) }
func (n *Binary) Accept(v Visitor)        { v.VisitBinary(n) }
func (n *Call) Accept(v Visitor)          { v.VisitCall(n) }
func (n *NewClass) Accept(v Visitor)      { v.VisitNewClass(n) }
func (n *NewArray) Accept(v Visitor)      { v.VisitNewArray(n) }
func (n *Indexed) Accept(v Visitor)       { v.VisitIndexed(n) }
func (n *ArrayRange) Accept(v Visitor)    { v.VisitArrayRange(n) }
func (n *ArrayElement) Accept(v Visitor)  { v.VisitArrayElement(n) }
func (n *ArrayConstant) Accept(v Visitor) { v.VisitArrayConstant(n) }
func (n *ArrayComp) Accept(v Visitor)     { v.VisitArrayComp(n) }
func (n *TypeCast) Accept(v Visitor)      { v.VisitTypeCast(n) }
func (n *TypeTest) Accept(v Visitor)      { v.VisitTypeTest(n) }
func (n *BasicType) Accept(v Visitor)     { v.VisitBasicType(n) }
func (n *ClassType) Accept(v Visitor)     { v.VisitClassType(n) }
func (n *ArrayType) Accept(v Visitor)     { v.VisitArrayType(n) }
func (n *DeductedType) Accept(v Visitor)  { v.VisitDeductedType(n) }
