package form

import (
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Phase describes where the controller is in the submission flow. Submit
// leaves the phase at PhaseAccepted or PhaseRejected so renderers can react
// to the attempt; the next change or blur event returns it to PhaseIdle.
// PhaseValidating is only observable mid-submission.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseAccepted   Phase = "accepted"
	PhaseRejected   Phase = "rejected"
)

// FieldState is the read-only view of one field a renderer consumes.
type FieldState struct {
	Name        string
	Label       string
	Placeholder string
	Description string
	Type        schema.InputType
	Options     []string
	Required    bool
	Value       string
	Touched     bool
	Error       *validate.Message
}

// ShowError reports whether a renderer should surface the field's error:
// only after the user visited the field (or a submit touched everything).
func (f FieldState) ShowError() bool {
	return f.Touched && f.Error != nil
}

// ErrorText returns the display message, or "" when nothing should show.
func (f FieldState) ErrorText() string {
	if !f.ShowError() {
		return ""
	}
	return f.Error.Text
}

// State is a point-in-time snapshot of a form instance. It is a copy:
// mutating it does not affect the controller.
type State struct {
	Name    string
	Fields  []FieldState
	Values  map[string]string
	Touched map[string]bool
	Errors  validate.Errors
	Valid   bool
	Phase   Phase

	// LastOutcome records how the most recent submit attempt ended, "" before
	// the first attempt. FormError carries a submit-handler failure message.
	LastOutcome Outcome
	FormError   string
}

// Field looks up a field view by name.
func (s State) Field(name string) (FieldState, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldState{}, false
}
