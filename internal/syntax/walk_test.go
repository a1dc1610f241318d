package syntax

import "testing"

func TestWalkVisitsAllNodes(t *testing.T) {
	src := `class Main {
  int[] data;
  void main() {
    for (i = 0; i < 3; i = i + 1) {
      data[i] = i * i;
    }
  }
}
`
	prog := parseProgram(t, src)

	counts := map[string]int{}
	Walk(prog, func(n Node) bool {
		counts[nodeKind(n)]++
		return true
	})

	want := map[string]int{
		"Program":  1,
		"ClassDef": 1,
		"VarDef":   1,
		"Method":   1,
		"For":      1,
		"Assign":   3,
		"Binary":   3, // i < 3, i + 1, i * i
		"Indexed":  1,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("saw %d %s nodes, want %d", counts[kind], kind, n)
		}
	}
}

func nodeKind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *ClassDef:
		return "ClassDef"
	case *MethodDef:
		return "Method"
	case *VarDef:
		return "VarDef"
	case *For:
		return "For"
	case *Assign:
		return "Assign"
	case *Binary:
		return "Binary"
	case *Indexed:
		return "Indexed"
	default:
		return "other"
	}
}

func TestWalkPrune(t *testing.T) {
	src := `class Main {
  void main() {
    x = 1 + 2;
  }
}
`
	prog := parseProgram(t, src)

	// Returning false at the method stops descent into its body.
	literals := 0
	Walk(prog, func(n Node) bool {
		switch n.(type) {
		case *MethodDef:
			return false
		case *Literal:
			literals++
		}
		return true
	})
	if literals != 0 {
		t.Errorf("saw %d literals under a pruned method", literals)
	}
}

func TestWalkOwnerChain(t *testing.T) {
	expr := parseExpr(t, "a.b.c")

	var names []string
	Inspect(expr, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	// Outermost selection first, then its owners.
	want := []string{"c", "b", "a"}
	if len(names) != len(want) {
		t.Fatalf("saw %d idents, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ident[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWalkNilRoot(t *testing.T) {
	called := false
	Walk(nil, func(n Node) bool {
		called = true
		return true
	})
	if called {
		t.Error("callback invoked for nil root")
	}
}
