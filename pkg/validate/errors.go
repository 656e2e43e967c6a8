package validate

import "sort"

// Code classifies a validation failure. Codes are stable identifiers meant
// for programmatic handling; Text carries the human-readable message.
type Code string

const (
	CodeRequired        Code = "required"
	CodeTooLong         Code = "too_long"
	CodeTooShort        Code = "too_short"
	CodeInvalidFormat   Code = "invalid_format"
	CodePatternMismatch Code = "pattern_mismatch"
	CodeNotANumber      Code = "not_a_number"
	CodeTooSmall        Code = "too_small"
	CodeTooLarge        Code = "too_large"
)

// Message is one field-level validation failure. Params carries the rule's
// threshold (for example Params["limit"] for length rules) so consumers can
// build their own messages without parsing Text.
type Message struct {
	Code   Code
	Text   string
	Params map[string]string
}

// Errors maps field names to their first failing rule's message. A field
// absent from the map passed validation. Errors is plain data: validation
// failures never propagate as Go errors.
type Errors map[string]Message

// Empty reports whether every field passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text returns the message text for a field, or "" when the field is clean.
func (e Errors) Text(field string) string {
	return e[field].Text
}
