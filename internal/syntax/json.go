package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":    "Program",
			"pos":     n.pos.String(),
			"classes": mapSlice(n.Classes, func(c *ClassDef) interface{} { return toJSON(c) }),
		}

	case *ClassDef:
		m := map[string]interface{}{
			"type":    "ClassDef",
			"pos":     n.pos.String(),
			"name":    n.Name,
			"sealed":  n.Sealed,
			"members": mapSliceDecl(n.Members, toJSON),
		}
		if n.Parent != "" {
			m["parent"] = n.Parent
		}
		return m

	case *MethodDef:
		return map[string]interface{}{
			"type":       "MethodDef",
			"pos":        n.pos.String(),
			"name":       n.Name,
			"static":     n.Static,
			"returntype": toJSON(n.ReturnType),
			"formals":    mapSlice(n.Formals, func(f *VarDef) interface{} { return toJSON(f) }),
			"body":       toJSON(n.Body),
		}

	case *VarDef:
		return map[string]interface{}{
			"type":    "VarDef",
			"pos":     n.pos.String(),
			"name":    n.Name,
			"binding": n.Binding,
			"vartype": toJSON(n.VarType),
		}

	case *Skip:
		return map[string]interface{}{
			"type": "Skip",
			"pos":  n.pos.String(),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": mapSliceStmt(n.Stmts, toJSON),
		}

	case *While:
		return map[string]interface{}{
			"type": "While",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *For:
		m := map[string]interface{}{
			"type": "For",
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Update != nil {
			m["update"] = toJSON(n.Update)
		}
		return m

	case *Foreach:
		return map[string]interface{}{
			"type":   "Foreach",
			"pos":    n.pos.String(),
			"var":    toJSON(n.Var),
			"source": toJSON(n.Source),
			"cond":   toJSON(n.Cond),
			"body":   toJSON(n.Body),
		}

	case *If:
		m := map[string]interface{}{
			"type": "If",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *GuardedIf:
		return map[string]interface{}{
			"type":   "GuardedIf",
			"pos":    n.pos.String(),
			"guards": mapSlice(n.Guards, func(g *Guard) interface{} { return toJSON(g) }),
		}

	case *Guard:
		return map[string]interface{}{
			"type": "Guard",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *Break:
		return map[string]interface{}{
			"type": "Break",
			"pos":  n.pos.String(),
		}

	case *Return:
		m := map[string]interface{}{
			"type": "Return",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *Print:
		return map[string]interface{}{
			"type": "Print",
			"pos":  n.pos.String(),
			"args": mapSliceExpr(n.Args, toJSON),
		}

	case *ObjectCopy:
		return map[string]interface{}{
			"type": "ObjectCopy",
			"pos":  n.pos.String(),
			"name": n.Name,
			"x":    toJSON(n.X),
		}

	case *Assign:
		return map[string]interface{}{
			"type":   "Assign",
			"pos":    n.pos.String(),
			"target": toJSON(n.Target),
			"value":  toJSON(n.Value),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *Ident:
		m := map[string]interface{}{
			"type": "Ident",
			"pos":  n.pos.String(),
			"name": n.Name,
		}
		if n.Owner != nil {
			m["owner"] = toJSON(n.Owner)
		}
		return m

	case *DeductedVar:
		return map[string]interface{}{
			"type": "DeductedVar",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *Literal:
		return map[string]interface{}{
			"type":  "Literal",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Null:
		return map[string]interface{}{
			"type": "Null",
			"pos":  n.pos.String(),
		}

	case *This:
		return map[string]interface{}{
			"type": "This",
			"pos":  n.pos.String(),
		}

	case *ReadInt:
		return map[string]interface{}{
			"type": "ReadInt",
			"pos":  n.pos.String(),
		}

	case *ReadLine:
		return map[string]interface{}{
			"type": "ReadLine",
			"pos":  n.pos.String(),
		}

	case *Unary:
		return map[string]interface{}{
			"type": "Unary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Call:
		m := map[string]interface{}{
			"type":   "Call",
			"pos":    n.pos.String(),
			"method": n.Method,
			"args":   mapSliceExpr(n.Args, toJSON),
		}
		if n.Receiver != nil {
			m["receiver"] = toJSON(n.Receiver)
		}
		return m

	case *NewClass:
		return map[string]interface{}{
			"type": "NewClass",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *NewArray:
		return map[string]interface{}{
			"type":   "NewArray",
			"pos":    n.pos.String(),
			"elem":   toJSON(n.Elem),
			"length": toJSON(n.Length),
		}

	case *Indexed:
		return map[string]interface{}{
			"type":  "Indexed",
			"pos":   n.pos.String(),
			"array": toJSON(n.Array),
			"index": toJSON(n.Index),
		}

	case *ArrayRange:
		return map[string]interface{}{
			"type":  "ArrayRange",
			"pos":   n.pos.String(),
			"array": toJSON(n.Array),
			"from":  toJSON(n.From),
			"to":    toJSON(n.To),
		}

	case *ArrayElement:
		return map[string]interface{}{
			"type":    "ArrayElement",
			"pos":     n.pos.String(),
			"array":   toJSON(n.Array),
			"index":   toJSON(n.Index),
			"default": toJSON(n.Default),
		}

	case *ArrayConstant:
		return map[string]interface{}{
			"type":  "ArrayConstant",
			"pos":   n.pos.String(),
			"elems": mapSliceExpr(n.Elems, toJSON),
		}

	case *ArrayComp:
		return map[string]interface{}{
			"type":    "ArrayComp",
			"pos":     n.pos.String(),
			"varname": n.VarName,
			"source":  toJSON(n.Source),
			"cond":    toJSON(n.Cond),
			"result":  toJSON(n.Result),
		}

	case *TypeCast:
		return map[string]interface{}{
			"type":  "TypeCast",
			"pos":   n.pos.String(),
			"class": n.Class,
			"x":     toJSON(n.X),
		}

	case *TypeTest:
		return map[string]interface{}{
			"type":  "TypeTest",
			"pos":   n.pos.String(),
			"x":     toJSON(n.X),
			"class": n.Class,
		}

	case *BasicType:
		return map[string]interface{}{
			"type": "BasicType",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
		}

	case *ClassType:
		return map[string]interface{}{
			"type": "ClassType",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *ArrayType:
		return map[string]interface{}{
			"type": "ArrayType",
			"pos":  n.pos.String(),
			"elem": toJSON(n.Elem),
		}

	case *DeductedType:
		return map[string]interface{}{
			"type": "DeductedType",
			"pos":  n.pos.String(),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceDecl(s []Decl, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceStmt(s []Stmt, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceExpr(s []Expr, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
