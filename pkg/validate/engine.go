// Package validate evaluates declarative schemas against form values. The
// engine is deterministic and side-effect free: the same (values, schema)
// pair always produces the same Errors map, and validation failures are
// represented as data rather than Go errors.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formstate/pkg/schema"
)

// emailPattern is the usual pragmatic address-shape check. Deliverability is
// not a client-side concern.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)

// Engine validates value maps against a schema. The zero value is not
// usable; construct with New.
type Engine struct {
	messages map[Code]string
}

// Option customises the engine.
type Option func(*Engine)

// WithMessages overrides default message formats per code. Formats receive
// the rule threshold as their only argument (length rules get an int, range
// rules a float64); codes without a threshold use the format verbatim.
func WithMessages(overrides map[Code]string) Option {
	return func(e *Engine) {
		for code, format := range overrides {
			if strings.TrimSpace(format) == "" {
				continue
			}
			e.messages[code] = format
		}
	}
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{messages: defaultMessages()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Validate applies each field's rules in declaration order against values.
// The first failing rule per field wins and evaluation short-circuits, so the
// result carries at most one message per field. Fields missing from values
// are treated as unset.
func (e *Engine) Validate(values map[string]string, s schema.Schema) Errors {
	errs := make(Errors)
	for _, field := range s.Fields {
		value := values[field.Name]
		for _, rule := range field.Rules {
			msg, ok := e.apply(rule, value)
			if !ok {
				continue
			}
			errs[field.Name] = msg
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate runs a default engine. Convenience for callers that do not need
// message overrides.
func Validate(values map[string]string, s schema.Schema) Errors {
	return New().Validate(values, s)
}

// apply evaluates one rule; ok reports a failure.
func (e *Engine) apply(rule schema.Rule, value string) (Message, bool) {
	switch rule.Kind {
	case schema.RuleRequired:
		if value == "" {
			return e.message(rule, CodeRequired, nil), true
		}

	case schema.RuleMaxLength:
		if utf8.RuneCountInString(value) > rule.Limit {
			return e.message(rule, CodeTooLong, map[string]string{"limit": strconv.Itoa(rule.Limit)}), true
		}

	case schema.RuleMinLength:
		if value != "" && utf8.RuneCountInString(value) < rule.Limit {
			return e.message(rule, CodeTooShort, map[string]string{"limit": strconv.Itoa(rule.Limit)}), true
		}

	case schema.RuleEmail:
		if value != "" && !emailPattern.MatchString(value) {
			return e.message(rule, CodeInvalidFormat, nil), true
		}

	case schema.RulePattern:
		if value != "" && rule.Pattern != nil && !rule.Pattern.MatchString(value) {
			return e.message(rule, CodePatternMismatch, map[string]string{"pattern": rule.Pattern.String()}), true
		}

	case schema.RuleMin, schema.RuleMax:
		if value == "" {
			return Message{}, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return e.message(rule, CodeNotANumber, nil), true
		}
		bound := formatBound(rule.Bound)
		if rule.Kind == schema.RuleMin && parsed < rule.Bound {
			return e.message(rule, CodeTooSmall, map[string]string{"min": bound}), true
		}
		if rule.Kind == schema.RuleMax && parsed > rule.Bound {
			return e.message(rule, CodeTooLarge, map[string]string{"max": bound}), true
		}
	}

	return Message{}, false
}

func (e *Engine) message(rule schema.Rule, code Code, params map[string]string) Message {
	text := rule.Message
	if text == "" {
		text = e.render(code, rule)
	}
	return Message{Code: code, Text: text, Params: params}
}

func (e *Engine) render(code Code, rule schema.Rule) string {
	format, ok := e.messages[code]
	if !ok {
		return string(code)
	}
	switch code {
	case CodeTooLong, CodeTooShort:
		return fmt.Sprintf(format, rule.Limit)
	case CodeTooSmall, CodeTooLarge:
		return fmt.Sprintf(format, formatBound(rule.Bound))
	default:
		return format
	}
}

func defaultMessages() map[Code]string {
	return map[Code]string{
		CodeRequired:        "Required",
		CodeTooLong:         "Must be %d characters or less",
		CodeTooShort:        "Must be at least %d characters",
		CodeInvalidFormat:   "Invalid email address",
		CodePatternMismatch: "Invalid format",
		CodeNotANumber:      "Must be a number",
		CodeTooSmall:        "Must be at least %s",
		CodeTooLarge:        "Must be %s or less",
	}
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}
