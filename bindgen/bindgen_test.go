package bindgen

import (
	"strings"
	"testing"

	"go.bytecodealliance.org/wit"
)

func TestBoundarySurface(t *testing.T) {
	s := BoundarySurface()

	byName := make(map[string]Function, len(s.Funcs))
	for _, fn := range s.Funcs {
		if _, dup := byName[fn.Name]; dup {
			t.Errorf("duplicate function %q", fn.Name)
		}
		byName[fn.Name] = fn
	}

	for _, want := range []string{
		"tree-new", "tree-free", "node-new", "node-append-child",
		"node-child-count", "tree-compute-layout",
		"style-get-width", "style-set-width",
		"style-set-margin", "style-set-inset",
		"style-get-grid-column", "style-set-grid-row",
		"style-get-aspect-ratio", "layout-border-bottom",
	} {
		if _, ok := byName[want]; !ok {
			t.Errorf("surface missing %q", want)
		}
	}

	// The status enum must carry the whole closed set.
	var statusCases int
	for _, e := range s.Enums {
		if e.Name != nil && *e.Name == "status" {
			statusCases = len(e.Kind.(*wit.Enum).Cases)
		}
	}
	if statusCases != 13 {
		t.Errorf("status enum has %d cases", statusCases)
	}

	// Every function that can fail reports a status first.
	for _, fn := range s.Funcs {
		if fn.Name == "tree-new" {
			continue
		}
		if len(fn.Results) == 0 || fn.Results[0].Name != "status" {
			t.Errorf("%s does not lead with a status result", fn.Name)
		}
	}
}

func TestPascalAndCamel(t *testing.T) {
	tests := []struct {
		in, pascal, camel string
	}{
		{"tree-new", "TreeNew", "treeNew"},
		{"style-set-max-width", "StyleSetMaxWidth", "styleSetMaxWidth"},
		{"x", "X", "x"},
		{"fit-content-px", "FitContentPx", "fitContentPx"},
	}
	for _, tt := range tests {
		if got := pascal(tt.in); got != tt.pascal {
			t.Errorf("pascal(%q) = %q", tt.in, got)
		}
		if got := camel(tt.in); got != tt.camel {
			t.Errorf("camel(%q) = %q", tt.in, got)
		}
	}
}

func TestEmitCSharp(t *testing.T) {
	out, err := EmitCSharp(BoundarySurface(), DefaultCSharpConfig())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		"namespace FlexFrame.Layout.Native",
		"public static unsafe partial class NativeMethods",
		"#if FLEXFRAME_IOS",
		`const string __DllName = "__Internal";`,
		`const string __DllName = "flexframe_layout";`,
		`EntryPoint = "LayoutBoundaryStyleSetWidth"`,
		"public static extern Status LayoutBoundaryStyleSetWidth(uint tree, ulong node, float value, Unit unit);",
		"public static extern Status LayoutBoundaryNodeNew(uint tree, out ulong node);",
		"public static extern Status LayoutBoundaryStyleGetWidth(uint tree, ulong node, out Dimension value);",
		"[StructLayout(LayoutKind.Sequential)]",
		"public unsafe partial struct Dimension",
		"public float value;",
		"public enum Unit : int",
		"FitContentPx = 5,",
		"public enum Status : int",
		"NonFiniteValue = 11,",
		"public unsafe partial struct GridPlacement",
		"public short start;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEmitCSharpWithoutIOSDefine(t *testing.T) {
	cfg := DefaultCSharpConfig()
	cfg.IOSDefine = ""
	out, err := EmitCSharp(BoundarySurface(), cfg)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if strings.Contains(out, "__Internal") {
		t.Error("iOS alternate emitted without a define")
	}
	if !strings.Contains(out, `const string __DllName = "flexframe_layout";`) {
		t.Error("dll name missing")
	}
}

func TestEmitCSharpRejectsBadConfig(t *testing.T) {
	if _, err := EmitCSharp(nil, DefaultCSharpConfig()); err == nil {
		t.Error("nil surface accepted")
	}
	cfg := DefaultCSharpConfig()
	cfg.Namespace = ""
	if _, err := EmitCSharp(BoundarySurface(), cfg); err == nil {
		t.Error("empty namespace accepted")
	}
}

func TestEmitWIT(t *testing.T) {
	out, err := EmitWIT(BoundarySurface(), DefaultWITConfig())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		"package flexframe:layout;",
		"interface boundary {",
		"enum status {",
		"non-finite-value,",
		"record dimension {",
		"value: f32,",
		"unit: unit,",
		"record grid-placement {",
		"span: u16,",
		"tree-new: func() -> u32;",
		"tree-free: func(tree: u32) -> status;",
		"node-new: func(tree: u32) -> tuple<status, u64>;",
		"style-set-width: func(tree: u32, node: u64, value: f32, unit: unit) -> status;",
		"style-get-grid-column: func(tree: u32, node: u64) -> tuple<status, grid-placement>;",
		"style-set-margin: func(tree: u32, node: u64, edge: edge, value: f32, unit: unit) -> status;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEmitWITRejectsBadConfig(t *testing.T) {
	if _, err := EmitWIT(nil, DefaultWITConfig()); err == nil {
		t.Error("nil surface accepted")
	}
	if _, err := EmitWIT(BoundarySurface(), WITConfig{}); err == nil {
		t.Error("empty config accepted")
	}
}
