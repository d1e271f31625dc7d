package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseTree,
				Kind:   KindCycle,
				Path:   []string{"node", "children"},
				Detail: "would create a cycle",
			},
			contains: []string{"[tree]", "cycle", "node.children", "would create a cycle"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindInvalidNode,
			},
			contains: []string{"[layout]", "invalid_node"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindRegistration,
				Detail: "register env#style_set_width",
				Cause:  errors.New("duplicate export"),
			},
			contains: []string{"[host]", "registration", "caused by", "duplicate export"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseTree,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match the cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidNode(PhaseLayout, 42)

	if !errors.Is(err, &Error{Phase: PhaseLayout, Kind: KindInvalidNode}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseTree, Kind: KindInvalidNode}) {
		t.Error("unexpected match on different phase")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseBindgen, KindUnsupported).
		Path("signature", "result").
		Value("blob").
		Cause(cause).
		Detail("no declaration form for %s", "blob").
		Build()

	if err.Phase != PhaseBindgen || err.Kind != KindUnsupported {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "no declaration form for blob" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if len(err.Path) != 2 || err.Path[0] != "signature" {
		t.Errorf("unexpected path: %v", err.Path)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"invalid node", InvalidNode(PhaseTree, 7), PhaseTree, KindInvalidNode, "node 7"},
		{"cycle", Cycle(1, 2), PhaseTree, KindCycle, "node 2 under 1"},
		{"nil pointer", NilPointer(PhaseHost, "tree"), PhaseHost, KindNilPointer, "nil tree"},
		{"invalid unit", InvalidUnit(PhaseStyle, 9), PhaseStyle, KindInvalidUnit, "unit tag 9"},
		{"invalid input", InvalidInput(PhaseHost, "empty name"), PhaseHost, KindInvalidInput, "empty name"},
		{"not found", NotFound(PhaseBindgen, "type", "blob"), PhaseBindgen, KindNotFound, `type "blob" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
