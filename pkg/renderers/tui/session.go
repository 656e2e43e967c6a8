package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Session walks a form-state controller through terminal prompts: each
// answered prompt is a change plus blur event, and a full pass ends with a
// submit attempt. Rejected attempts report their messages and re-prompt only
// the offending fields.
type Session struct {
	controller  *form.Controller
	driver      PromptDriver
	engine      *validate.Engine
	theme       Theme
	maxAttempts int
}

// ErrTooManyAttempts is returned when WithMaxAttempts is exhausted without
// an accepted submission.
var ErrTooManyAttempts = errors.New("tui: too many submit attempts")

// NewSession binds a session to a controller.
func NewSession(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller: controller,
		driver:     newSurveyDriver(),
		engine:     validate.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run prompts for every field, submits, and repeats over rejected fields
// until the controller accepts or the driver aborts. On success it returns
// the accepted values.
func (s *Session) Run(ctx context.Context) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}

	fields := s.controller.Schema().Fields
	attempts := 0

	for {
		for _, field := range fields {
			if err := s.promptField(ctx, field); err != nil {
				return nil, err
			}
		}

		result, err := s.controller.Submit(ctx)
		if err != nil {
			return nil, err
		}
		if result.Outcome == form.OutcomeAccepted {
			return result.Values, nil
		}

		summary := fmt.Sprintf("%s%d field(s) need attention", s.theme.InfoPrefix, len(result.Errors))
		if err := s.driver.Info(ctx, summary); err != nil {
			return nil, err
		}
		for _, name := range result.Errors.Fields() {
			msg := fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, name, result.Errors.Text(name))
			if err := s.driver.Info(ctx, msg); err != nil {
				return nil, err
			}
		}

		attempts++
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			return nil, ErrTooManyAttempts
		}
		fields = rejectedFields(s.controller.Schema(), result.Errors)
	}
}

func (s *Session) promptField(ctx context.Context, field schema.Field) error {
	cfg := InputConfig{
		Message:     field.DisplayLabel(),
		Default:     s.controller.Snapshot().Values[field.Name],
		Help:        field.Description,
		Placeholder: field.Placeholder,
		Validator:   s.fieldValidator(field),
	}

	var (
		response string
		err      error
	)
	switch field.Type {
	case schema.InputPassword:
		response, err = s.driver.Password(ctx, cfg)
	case schema.InputTextArea:
		response, err = s.driver.TextArea(ctx, TextAreaConfig{
			Message: cfg.Message,
			Default: cfg.Default,
			Help:    cfg.Help,
		})
	case schema.InputSelect:
		var idx int
		idx, err = s.driver.Select(ctx, SelectConfig{
			Message:      cfg.Message,
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, cfg.Default),
			Help:         cfg.Help,
		})
		if err == nil && idx >= 0 && idx < len(field.Options) {
			response = field.Options[idx]
		}
	default:
		response, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := s.controller.SetValue(field.Name, response); err != nil {
		return err
	}
	return s.controller.Blur(field.Name)
}

// fieldValidator lets the prompt driver reject bad input inline, before the
// value ever reaches the controller. The controller still re-validates on
// submit; this only improves the prompt loop.
func (s *Session) fieldValidator(field schema.Field) func(string) error {
	single := schema.Schema{Name: "prompt", Fields: []schema.Field{field}}
	return func(value string) error {
		errs := s.engine.Validate(map[string]string{field.Name: value}, single)
		if errs.Empty() {
			return nil
		}
		return errors.New(errs.Text(field.Name))
	}
}

func rejectedFields(s schema.Schema, errs validate.Errors) []schema.Field {
	out := make([]schema.Field, 0, len(errs))
	for _, field := range s.Fields {
		if _, failed := errs[field.Name]; failed {
			out = append(out, field)
		}
	}
	return out
}
