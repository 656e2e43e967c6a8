package form

import (
	"testing"

	"github.com/goliatone/go-formstate/pkg/validate"
)

func TestStore_SeedsDefaults(t *testing.T) {
	s := NewStore(map[string]string{"firstName": "Jane", "email": ""})

	if got := s.Value("firstName"); got != "Jane" {
		t.Fatalf("expected seeded default, got %q", got)
	}
	if s.Touched("firstName") {
		t.Fatal("fresh store should have no touched fields")
	}
	if !s.Errors().Empty() {
		t.Fatalf("fresh store should have no errors, got %v", s.Errors())
	}
}

func TestStore_TouchIsMonotonic(t *testing.T) {
	s := NewStore(nil)

	s.Touch("email")
	if !s.Touched("email") {
		t.Fatal("expected email to be touched")
	}

	// Editing the value never clears the flag.
	s.SetValue("email", "jane@doe.com")
	s.Touch("email")
	if !s.Touched("email") {
		t.Fatal("touched must survive later events")
	}
}

func TestStore_TouchAll(t *testing.T) {
	s := NewStore(nil)
	s.TouchAll([]string{"firstName", "lastName", "email"})

	for _, field := range []string{"firstName", "lastName", "email"} {
		if !s.Touched(field) {
			t.Fatalf("expected %s to be touched", field)
		}
	}
}

func TestStore_ValuesReturnsCopy(t *testing.T) {
	s := NewStore(map[string]string{"firstName": "Jane"})

	values := s.Values()
	values["firstName"] = "mutated"

	if got := s.Value("firstName"); got != "Jane" {
		t.Fatalf("store leaked its value map: %q", got)
	}
}

func TestStore_TouchedFieldsReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	s.Touch("email")

	touched := s.TouchedFields()
	touched["firstName"] = true

	if s.Touched("firstName") {
		t.Fatal("store leaked its touched map")
	}
}

func TestStore_ReplaceErrors(t *testing.T) {
	s := NewStore(nil)
	s.replaceErrors(validate.Errors{"email": {Code: validate.CodeRequired, Text: "Required"}})

	if s.Errors().Empty() {
		t.Fatal("expected errors after replace")
	}

	s.replaceErrors(nil)
	if !s.Errors().Empty() {
		t.Fatal("expected replace to clear errors")
	}
}
