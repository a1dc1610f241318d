package syntax

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestFprintJSON(t *testing.T) {
	src := `class Main extends Base {
  static void main() {
    x = a + 1;
  }
}
`
	prog := parseProgram(t, src)

	var buf bytes.Buffer
	if err := FprintJSON(&buf, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var root map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if root["type"] != "Program" {
		t.Errorf("root type = %v, want Program", root["type"])
	}
	classes, ok := root["classes"].([]interface{})
	if !ok || len(classes) != 1 {
		t.Fatalf("classes = %v, want one entry", root["classes"])
	}
	cls := classes[0].(map[string]interface{})
	if cls["name"] != "Main" || cls["parent"] != "Base" {
		t.Errorf("class = %v %v, want Main Base", cls["name"], cls["parent"])
	}

	members := cls["members"].([]interface{})
	method := members[0].(map[string]interface{})
	if method["type"] != "MethodDef" || method["static"] != true {
		t.Errorf("member = %v static=%v, want static MethodDef", method["type"], method["static"])
	}

	// Positions are rendered as strings.
	if _, ok := cls["pos"].(string); !ok {
		t.Errorf("pos = %v, want a string", cls["pos"])
	}
}

func TestFprintJSONOmitsEmpty(t *testing.T) {
	prog := parseProgram(t, "class A { }")

	var buf bytes.Buffer
	if err := FprintJSON(&buf, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var root map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	cls := root["classes"].([]interface{})[0].(map[string]interface{})
	if _, present := cls["parent"]; present {
		t.Error("parent present for a class without one")
	}
}
