package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind identifies a validation rule variant.
type RuleKind string

const (
	RuleRequired  RuleKind = "required"
	RuleMaxLength RuleKind = "maxLength"
	RuleMinLength RuleKind = "minLength"
	RuleEmail     RuleKind = "email"
	RulePattern   RuleKind = "pattern"
	RuleMin       RuleKind = "min"
	RuleMax       RuleKind = "max"
)

// Rule is a single validation constraint. Rules are evaluated in the order
// they are declared on a field; the first failing rule produces the field's
// error and evaluation short-circuits. Use the constructors below rather than
// building Rule values by hand so the kind/parameter pairing stays coherent.
type Rule struct {
	Kind    RuleKind
	Limit   int            // maxLength / minLength (rune count, inclusive)
	Bound   float64        // min / max numeric bound
	Pattern *regexp.Regexp // pattern
	Message string         // optional message override
}

// WithMessage returns a copy of the rule carrying a custom error message.
func (r Rule) WithMessage(message string) Rule {
	r.Message = strings.TrimSpace(message)
	return r
}

// Required fails on unset fields and empty strings.
func Required() Rule {
	return Rule{Kind: RuleRequired}
}

// MaxLength fails when the value exceeds limit characters. The limit counts
// runes, not bytes, and is inclusive.
func MaxLength(limit int) Rule {
	return Rule{Kind: RuleMaxLength, Limit: limit}
}

// MinLength fails when a non-empty value is shorter than limit runes.
func MinLength(limit int) Rule {
	return Rule{Kind: RuleMinLength, Limit: limit}
}

// Email fails when a non-empty value does not look like an email address.
// Empty values pass; pair with Required to reject them.
func Email() Rule {
	return Rule{Kind: RuleEmail}
}

// Pattern fails when a non-empty value does not match expr.
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("schema: compile pattern %q: %w", expr, err)
	}
	return Rule{Kind: RulePattern, Pattern: re}, nil
}

// MustPattern is the panic-on-error variant of Pattern for static schemas.
func MustPattern(expr string) Rule {
	rule, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return rule
}

// Min fails when a non-empty value parses to a number below bound.
func Min(bound float64) Rule {
	return Rule{Kind: RuleMin, Bound: bound}
}

// Max fails when a non-empty value parses to a number above bound.
func Max(bound float64) Rule {
	return Rule{Kind: RuleMax, Bound: bound}
}

func (r Rule) validate() error {
	switch r.Kind {
	case RuleRequired, RuleEmail, RuleMin, RuleMax:
		return nil
	case RuleMaxLength, RuleMinLength:
		if r.Limit < 0 {
			return fmt.Errorf("schema: %s limit must not be negative, got %d", r.Kind, r.Limit)
		}
		return nil
	case RulePattern:
		if r.Pattern == nil {
			return fmt.Errorf("schema: pattern rule requires a compiled expression")
		}
		return nil
	case "":
		return fmt.Errorf("schema: rule kind is required")
	default:
		return fmt.Errorf("schema: unknown rule kind %q", r.Kind)
	}
}
