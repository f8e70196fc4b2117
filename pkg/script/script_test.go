package script

import (
	"strings"
	"testing"

	"github.com/chazu/voxgeom/pkg/region"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if scene == nil {
		t.Fatal("expected non-nil scene")
	}
	if scene.Count() != 0 {
		t.Errorf("expected empty scene, got %d regions", scene.Count())
	}
}

func TestEvaluateDefregion(t *testing.T) {
	eng := NewEngine()

	source := `
; a 10x10x10 box at the origin
(defregion "world" (region 0 0 0 10 10 10))
(defregion "cell" (region 2 2 2 3 3 3))
`
	scene, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if scene.Count() != 2 {
		t.Fatalf("expected 2 regions, got %d", scene.Count())
	}

	world, ok := scene.Lookup("world")
	if !ok {
		t.Fatal("region \"world\" not found")
	}
	if world != region.NewRegion(0, 0, 0, 10, 10, 10) {
		t.Errorf("world: got %+v", world)
	}

	names := scene.Names()
	if len(names) != 2 || names[0] != "world" || names[1] != "cell" {
		t.Errorf("definition order: got %v, want [world cell]", names)
	}
}

func TestEvaluateMutators(t *testing.T) {
	eng := NewEngine()

	source := `
(def base (region 0 0 0 10 10 10))
(defregion "grown" (grow-unified base 2))
(defregion "trimmed" (shift-upper base 1 1 1))
(defregion "extended" (shift-lower base 1 2 3))
`
	scene, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}

	tests := []struct {
		name string
		want region.Region
	}{
		{"grown", region.NewRegion(-2, -2, -2, 14, 14, 14)},
		{"trimmed", region.NewRegion(1, 1, 1, 9, 9, 9)},
		{"extended", region.NewRegion(0, 0, 0, 11, 12, 13)},
	}
	for _, tt := range tests {
		got, ok := scene.Lookup(tt.name)
		if !ok {
			t.Errorf("region %q not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}

	// Builtins are functional: base itself is unchanged.
	source += `(defregion "base" base)`
	scene, evalErrs, err = eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("re-evaluate: err=%v evalErrs=%v", err, evalErrs)
	}
	base, _ := scene.Lookup("base")
	if base != region.NewRegion(0, 0, 0, 10, 10, 10) {
		t.Errorf("base mutated by builtins: %+v", base)
	}
}

func TestEvaluateCornersKeepsExtentSign(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate(`(defregion "c" (corners 0 0 0 4 4 4))`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}

	c, ok := scene.Lookup("c")
	if !ok {
		t.Fatal("region \"c\" not found")
	}
	if c.Width != -4 || c.Height != -4 || c.Depth != -4 {
		t.Errorf("corner-built extent: got (%d,%d,%d), want (-4,-4,-4)", c.Width, c.Height, c.Depth)
	}

	warnings := scene.Validate()
	if len(warnings) != 1 {
		t.Fatalf("Validate: got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0].Name != "c" {
		t.Errorf("warning name: got %q, want \"c\"", warnings[0].Name)
	}
}

func TestEvaluateBadBuiltinArguments(t *testing.T) {
	eng := NewEngine()

	tests := []struct {
		name   string
		source string
	}{
		{"region arity", `(region 1 2 3)`},
		{"defregion without name", `(defregion (region 0 0 0 1 1 1))`},
		{"grow on non-region", `(grow "nope" 1 1 1)`},
		{"contains arity", `(contains (region 0 0 0 1 1 1))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, evalErrs, err := eng.Evaluate(tt.source)
			if err != nil {
				t.Fatalf("unexpected fatal error: %v", err)
			}
			if len(evalErrs) == 0 {
				t.Errorf("expected eval errors, got none (scene: %v)", scene)
			}
		})
	}
}

func TestEvaluateParseError(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate(`(defregion "x" (region 0 0 0 1 1 1)`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if scene != nil {
		t.Error("expected nil scene on parse error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for unbalanced parens")
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"kebab call", `(grow-unified r 1)`, `(grow_unified r 1)`},
		{"minus stays", `(- 5 3)`, `(- 5 3)`},
		{"negative literal", `(region 0 0 0 -1 -1 -1)`, `(region 0 0 0 -1 -1 -1)`},
		{"comment", "; note\n(region 0 0 0 1 1 1)", "// note\n(region 0 0 0 1 1 1)"},
		{"double semicolon", ";; note", "// note"},
		{"hyphen in string", `(defregion "my-region" r)`, `(defregion "my-region" r)`},
		{"semicolon in string", `(defregion "a;b" r)`, `(defregion "a;b" r)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.source); got != tt.want {
				t.Errorf("preprocessSource(%q):\n got %q\nwant %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseZygomysError(t *testing.T) {
	errs := parseZygomysError(&testError{"Error on line 3: unexpected token"})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Line != 3 {
		t.Errorf("line: got %d, want 3", errs[0].Line)
	}
	if !strings.Contains(errs[0].Message, "unexpected token") {
		t.Errorf("message: got %q", errs[0].Message)
	}

	errs = parseZygomysError(&testError{"something went wrong"})
	if len(errs) != 1 || errs[0].Line != 0 {
		t.Errorf("fallback: got %+v", errs)
	}
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
