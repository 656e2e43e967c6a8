package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_ValidSchema(t *testing.T) {
	s, err := New("signup",
		Field{Name: "firstName", Label: "First Name", Rules: []Rule{Required(), MaxLength(15)}},
		Field{Name: "email", Rules: []Rule{Required(), Email()}},
	)
	if err != nil {
		t.Fatalf("expected schema to build, got %v", err)
	}

	if diff := cmp.Diff([]string{"firstName", "email"}, s.Names()); diff != "" {
		t.Fatalf("unexpected field order (-want +got):\n%s", diff)
	}
}

func TestNew_RejectsEmptySchema(t *testing.T) {
	if _, err := New("empty"); err == nil {
		t.Fatal("expected error for schema without fields")
	}
}

func TestNew_RejectsDuplicateFields(t *testing.T) {
	_, err := New("dup",
		Field{Name: "email", Rules: []Rule{Required()}},
		Field{Name: "email", Rules: []Rule{Email()}},
	)
	if err == nil || !strings.Contains(err.Error(), "duplicate field") {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
}

func TestNew_RejectsUnnamedField(t *testing.T) {
	_, err := New("anon", Field{Rules: []Rule{Required()}})
	if err == nil || !strings.Contains(err.Error(), "has no name") {
		t.Fatalf("expected unnamed field error, got %v", err)
	}
}

func TestNew_RejectsNegativeLimit(t *testing.T) {
	_, err := New("bad", Field{Name: "nick", Rules: []Rule{MaxLength(-1)}})
	if err == nil || !strings.Contains(err.Error(), "must not be negative") {
		t.Fatalf("expected negative limit error, got %v", err)
	}
}

func TestNew_RejectsSelectWithoutOptions(t *testing.T) {
	_, err := New("prefs", Field{Name: "plan", Type: InputSelect})
	if err == nil || !strings.Contains(err.Error(), "needs options") {
		t.Fatalf("expected select options error, got %v", err)
	}

	if _, err := New("prefs", Field{Name: "plan", Type: InputSelect, Options: []string{"free", "pro"}}); err != nil {
		t.Fatalf("select with options should pass, got %v", err)
	}
}

func TestPattern_CompileError(t *testing.T) {
	if _, err := Pattern("("); err == nil {
		t.Fatal("expected compile error for invalid pattern")
	}
}

func TestField_Required(t *testing.T) {
	required := Field{Name: "email", Rules: []Rule{Email(), Required()}}
	optional := Field{Name: "nick", Rules: []Rule{MaxLength(10)}}

	if !required.Required() {
		t.Fatal("expected field with required rule to report required")
	}
	if optional.Required() {
		t.Fatal("expected field without required rule to report optional")
	}
}

func TestField_DisplayLabel(t *testing.T) {
	if got := (Field{Name: "firstName"}).DisplayLabel(); got != "firstName" {
		t.Fatalf("expected name fallback, got %q", got)
	}
	if got := (Field{Name: "firstName", Label: "First Name"}).DisplayLabel(); got != "First Name" {
		t.Fatalf("expected configured label, got %q", got)
	}
}

func TestSchema_Defaults(t *testing.T) {
	s := MustNew("signup",
		Field{Name: "firstName", Default: "Jane"},
		Field{Name: "email"},
	)

	want := map[string]string{"firstName": "Jane", "email": ""}
	if diff := cmp.Diff(want, s.Defaults()); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}
}

func TestRule_WithMessage(t *testing.T) {
	rule := MaxLength(15).WithMessage("too wordy")
	if rule.Message != "too wordy" {
		t.Fatalf("expected message override, got %q", rule.Message)
	}
	if rule.Limit != 15 {
		t.Fatalf("expected limit preserved, got %d", rule.Limit)
	}
}
