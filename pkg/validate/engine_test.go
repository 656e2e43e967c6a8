package validate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/schema"
)

func signupSchema(t *testing.T) schema.Schema {
	t.Helper()
	return schema.MustNew("signup",
		schema.Field{Name: "firstName", Rules: []schema.Rule{schema.Required(), schema.MaxLength(15)}},
		schema.Field{Name: "lastName", Rules: []schema.Rule{schema.Required(), schema.MaxLength(20)}},
		schema.Field{Name: "email", Rules: []schema.Rule{schema.Required(), schema.Email()}},
	)
}

func TestValidate_CleanValues(t *testing.T) {
	values := map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@doe.com",
	}

	errs := Validate(values, signupSchema(t))
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	values := map[string]string{
		"firstName": "",
		"lastName":  "Smith",
		"email":     "a@b.com",
	}

	errs := Validate(values, signupSchema(t))
	if got := errs["firstName"].Code; got != CodeRequired {
		t.Fatalf("expected required code, got %q", got)
	}
	if got := errs.Text("firstName"); got != "Required" {
		t.Fatalf("unexpected message: %q", got)
	}
	if _, failed := errs["lastName"]; failed {
		t.Fatalf("lastName should pass, got %v", errs["lastName"])
	}
}

func TestValidate_RequiredAcceptsWhitespace(t *testing.T) {
	// Required rejects unset fields and empty strings only; a whitespace
	// value counts as present.
	values := map[string]string{
		"firstName": " ",
		"lastName":  "Doe",
		"email":     "jane@doe.com",
	}

	errs := Validate(values, signupSchema(t))
	if msg, failed := errs["firstName"]; failed {
		t.Fatalf("whitespace value should satisfy required, got %v", msg)
	}
}

func TestValidate_UnsetFieldIsRequired(t *testing.T) {
	errs := Validate(map[string]string{}, signupSchema(t))
	for _, field := range []string{"firstName", "lastName", "email"} {
		if errs[field].Code != CodeRequired {
			t.Fatalf("expected %s to fail required, got %v", field, errs[field])
		}
	}
}

func TestValidate_MaxLengthBoundary(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantCode Code
	}{
		{"fifteen chars passes", strings.Repeat("a", 15), ""},
		{"sixteen chars fails", strings.Repeat("a", 16), CodeTooLong},
		{"rune count not byte count", strings.Repeat("é", 15), ""},
		{"sixteen runes fails", strings.Repeat("é", 16), CodeTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := map[string]string{
				"firstName": tc.value,
				"lastName":  "Doe",
				"email":     "jane@doe.com",
			}
			errs := Validate(values, signupSchema(t))
			if tc.wantCode == "" {
				if _, failed := errs["firstName"]; failed {
					t.Fatalf("expected pass, got %v", errs["firstName"])
				}
				return
			}
			msg, failed := errs["firstName"]
			if !failed || msg.Code != tc.wantCode {
				t.Fatalf("expected %q, got %v", tc.wantCode, msg)
			}
			if msg.Text != "Must be 15 characters or less" {
				t.Fatalf("unexpected message: %q", msg.Text)
			}
			if msg.Params["limit"] != "15" {
				t.Fatalf("expected limit param 15, got %v", msg.Params)
			}
		})
	}
}

func TestValidate_EmailShape(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"jane@doe.com", true},
		{"a@b.com", true},
		{"first.last+tag@sub.example.org", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@doe.com", false},
		{"jane@.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			values := map[string]string{
				"firstName": "Jane",
				"lastName":  "Doe",
				"email":     tc.value,
			}
			errs := Validate(values, signupSchema(t))
			msg, failed := errs["email"]
			if tc.valid && failed {
				t.Fatalf("expected %q to pass, got %v", tc.value, msg)
			}
			if !tc.valid && msg.Code != CodeInvalidFormat {
				t.Fatalf("expected invalid_format for %q, got %v", tc.value, msg)
			}
		})
	}
}

func TestValidate_EmptyEmailFailsRequiredNotFormat(t *testing.T) {
	values := map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "",
	}

	errs := Validate(values, signupSchema(t))
	if got := errs["email"].Code; got != CodeRequired {
		t.Fatalf("expected required (declared first), got %q", got)
	}
}

func TestValidate_EmailRuleSkipsEmptyWhenOptional(t *testing.T) {
	s := schema.MustNew("newsletter",
		schema.Field{Name: "email", Rules: []schema.Rule{schema.Email()}},
	)

	if errs := Validate(map[string]string{"email": ""}, s); !errs.Empty() {
		t.Fatalf("optional empty email should pass, got %v", errs)
	}
	if errs := Validate(map[string]string{"email": "nope"}, s); errs["email"].Code != CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", errs["email"])
	}
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	s := schema.MustNew("ordered",
		schema.Field{Name: "code", Rules: []schema.Rule{
			schema.MaxLength(3),
			schema.MustPattern("^[A-Z]+$"),
		}},
	)

	// Value violates both rules; declaration order decides the message.
	errs := Validate(map[string]string{"code": "lowercase"}, s)
	if got := errs["code"].Code; got != CodeTooLong {
		t.Fatalf("expected first declared rule to win, got %q", got)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	values := map[string]string{
		"firstName": strings.Repeat("x", 20),
		"lastName":  "",
		"email":     "bad",
	}
	s := signupSchema(t)

	first := Validate(values, s)
	second := Validate(values, s)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("validation is not idempotent (-first +second):\n%s", diff)
	}
}

func TestValidate_NumericRange(t *testing.T) {
	s := schema.MustNew("pricing",
		schema.Field{Name: "quantity", Rules: []schema.Rule{schema.Min(1), schema.Max(10)}},
	)

	tests := []struct {
		value    string
		wantCode Code
	}{
		{"", ""},
		{"5", ""},
		{"1", ""},
		{"10", ""},
		{"0", CodeTooSmall},
		{"11", CodeTooLarge},
		{"lots", CodeNotANumber},
	}

	for _, tc := range tests {
		errs := Validate(map[string]string{"quantity": tc.value}, s)
		got := errs["quantity"].Code
		if got != tc.wantCode {
			t.Fatalf("value %q: expected %q, got %q", tc.value, tc.wantCode, got)
		}
	}
}

func TestValidate_RuleMessageOverride(t *testing.T) {
	s := schema.MustNew("signup",
		schema.Field{Name: "firstName", Rules: []schema.Rule{
			schema.Required().WithMessage("Tell us your name"),
		}},
	)

	errs := Validate(map[string]string{"firstName": ""}, s)
	if got := errs.Text("firstName"); got != "Tell us your name" {
		t.Fatalf("expected rule override, got %q", got)
	}
}

func TestValidate_EngineMessageOverride(t *testing.T) {
	engine := New(WithMessages(map[Code]string{
		CodeTooLong: "Keep it under %d characters",
	}))
	s := schema.MustNew("signup",
		schema.Field{Name: "firstName", Rules: []schema.Rule{schema.MaxLength(5)}},
	)

	errs := engine.Validate(map[string]string{"firstName": "toolongvalue"}, s)
	if got := errs.Text("firstName"); got != "Keep it under 5 characters" {
		t.Fatalf("expected engine override, got %q", got)
	}
}

func TestErrors_Fields(t *testing.T) {
	errs := Errors{
		"zebra": {Code: CodeRequired},
		"apple": {Code: CodeRequired},
	}
	if diff := cmp.Diff([]string{"apple", "zebra"}, errs.Fields()); diff != "" {
		t.Fatalf("expected sorted fields (-want +got):\n%s", diff)
	}
}
