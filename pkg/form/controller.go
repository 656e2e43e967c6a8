package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// SubmitHandler receives the validated values of an accepted submission. The
// values map is a copy; the handler may retain it. A returned error is
// surfaced as a form-level error on the next snapshot.
type SubmitHandler func(ctx context.Context, values map[string]string) error

// Outcome is the result of one submit attempt.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// Result reports how a submit attempt ended. Rejected results carry the
// validation errors that blocked the handler.
type Result struct {
	Outcome Outcome
	Values  map[string]string
	Errors  validate.Errors
}

var (
	errSchemaRequired  = errors.New("form: schema is required")
	errContextRequired = errors.New("form: context is required")
)

// Controller wires a schema, a validation engine, and a store into the
// change/blur/submit event surface a view layer binds to. Each event
// re-validates synchronously, so Snapshot always reflects the latest values.
type Controller struct {
	schema      schema.Schema
	engine      *validate.Engine
	store       *Store
	initial     map[string]string
	onSubmit    SubmitHandler
	phase       Phase
	lastOutcome Outcome
	formError   string
}

// Option customises the controller.
type Option func(*Controller)

// WithDefaults overrides the initial values derived from the schema.
// Unknown field names are ignored.
func WithDefaults(defaults map[string]string) Option {
	return func(c *Controller) {
		for name, value := range defaults {
			if _, ok := c.schema.Field(name); ok {
				c.store.SetValue(name, value)
			}
		}
	}
}

// WithEngine injects a custom validation engine (message overrides etc.).
func WithEngine(engine *validate.Engine) Option {
	return func(c *Controller) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithSubmitHandler registers the consumer invoked on accepted submissions.
func WithSubmitHandler(handler SubmitHandler) Option {
	return func(c *Controller) {
		c.onSubmit = handler
	}
}

// New constructs a controller for one form instance. The schema is validated
// up front; the store starts with the schema defaults, touched flags all
// false, and no errors until the first validation pass.
func New(s schema.Schema, options ...Option) (*Controller, error) {
	if len(s.Fields) == 0 {
		return nil, errSchemaRequired
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		schema: s,
		engine: validate.New(),
		store:  NewStore(s.Defaults()),
		phase:  PhaseIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.initial = c.store.Values()
	return c, nil
}

// SetValue handles a change event: update the field's value and re-validate.
// Any change event ends the previous submit attempt's phase.
func (c *Controller) SetValue(field, value string) error {
	if _, ok := c.schema.Field(field); !ok {
		return fmt.Errorf("form: unknown field %q", field)
	}
	c.phase = PhaseIdle
	c.store.SetValue(field, value)
	c.revalidate()
	return nil
}

// Blur handles a blur event: mark the field touched and re-validate.
// Touched is monotonic; repeated blurs are no-ops.
func (c *Controller) Blur(field string) error {
	if _, ok := c.schema.Field(field); !ok {
		return fmt.Errorf("form: unknown field %q", field)
	}
	c.phase = PhaseIdle
	c.store.Touch(field)
	c.revalidate()
	return nil
}

// Submit runs one submit attempt: every field is marked touched, the full
// rule set is evaluated, and the submit handler runs only when no field
// failed. The handler is invoked at most once per attempt with a copy of the
// values. A handler error is returned and recorded as the form-level error;
// the attempt still counts as accepted (validation passed). The phase stays
// at Accepted or Rejected until the next event returns it to Idle.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	if ctx == nil {
		return Result{}, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	c.phase = PhaseValidating
	c.formError = ""
	c.store.TouchAll(c.schema.Names())
	c.revalidate()

	if errs := c.store.Errors(); !errs.Empty() {
		c.phase = PhaseRejected
		c.lastOutcome = OutcomeRejected
		return Result{Outcome: OutcomeRejected, Errors: errs}, nil
	}

	c.phase = PhaseAccepted
	c.lastOutcome = OutcomeAccepted
	values := c.store.Values()

	var handlerErr error
	if c.onSubmit != nil {
		handlerErr = c.onSubmit(ctx, values)
	}

	if handlerErr != nil {
		c.formError = handlerErr.Error()
		return Result{Outcome: OutcomeAccepted, Values: values}, fmt.Errorf("form: submit handler: %w", handlerErr)
	}
	return Result{Outcome: OutcomeAccepted, Values: values}, nil
}

// Reset returns the instance to its initial state: the values the controller
// was constructed with, nothing touched, no errors. Equivalent to unmounting
// and remounting the form.
func (c *Controller) Reset() {
	c.store = NewStore(c.initial)
	c.phase = PhaseIdle
	c.lastOutcome = ""
	c.formError = ""
}

// Schema returns the schema the controller was built with.
func (c *Controller) Schema() schema.Schema {
	return c.schema
}

// Errors returns the latest validation result.
func (c *Controller) Errors() validate.Errors {
	return c.store.Errors()
}

// Valid reports whether the latest validation pass found no failures. Before
// any event has triggered validation the form counts as valid.
func (c *Controller) Valid() bool {
	return c.store.Errors().Empty()
}

// Snapshot returns a read-only copy of the current form state, including the
// per-field views renderers bind to.
func (c *Controller) Snapshot() State {
	errs := copyErrors(c.store.Errors())
	fields := make([]FieldState, 0, len(c.schema.Fields))
	for _, spec := range c.schema.Fields {
		view := FieldState{
			Name:        spec.Name,
			Label:       spec.DisplayLabel(),
			Placeholder: spec.Placeholder,
			Description: spec.Description,
			Type:        fieldInputType(spec),
			Options:     append([]string(nil), spec.Options...),
			Required:    spec.Required(),
			Value:       c.store.Value(spec.Name),
			Touched:     c.store.Touched(spec.Name),
		}
		if msg, ok := errs[spec.Name]; ok {
			view.Error = &msg
		}
		fields = append(fields, view)
	}

	return State{
		Name:        c.schema.Name,
		Fields:      fields,
		Values:      c.store.Values(),
		Touched:     c.store.TouchedFields(),
		Errors:      errs,
		Valid:       errs.Empty(),
		Phase:       c.phase,
		LastOutcome: c.lastOutcome,
		FormError:   c.formError,
	}
}

func copyErrors(errs validate.Errors) validate.Errors {
	if len(errs) == 0 {
		return nil
	}
	out := make(validate.Errors, len(errs))
	for field, msg := range errs {
		out[field] = msg
	}
	return out
}

func (c *Controller) revalidate() {
	c.store.replaceErrors(c.engine.Validate(c.store.values, c.schema))
}

func fieldInputType(spec schema.Field) schema.InputType {
	if spec.Type != "" {
		return spec.Type
	}
	for _, rule := range spec.Rules {
		if rule.Kind == schema.RuleEmail {
			return schema.InputEmail
		}
	}
	return schema.InputText
}
