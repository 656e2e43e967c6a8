package formstate

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formstate/pkg/schema"
)

func TestFacade_EndToEnd(t *testing.T) {
	s := schema.MustNew("signup",
		Field{Name: "firstName", Label: "First Name", Rules: []Rule{schema.Required(), schema.MaxLength(15)}},
		Field{Name: "email", Label: "Email Address", Rules: []Rule{schema.Required(), schema.Email()}},
	)

	var accepted map[string]string
	controller, err := New(s,
		WithDefaults(map[string]string{"firstName": "Jane"}),
		WithSubmitHandler(func(ctx context.Context, values map[string]string) error {
			accepted = values
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	if err := controller.SetValue("email", "jane@doe.com"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	result, err := controller.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != "accepted" || accepted["email"] != "jane@doe.com" {
		t.Fatalf("unexpected submission: %+v / %v", result, accepted)
	}

	markup, err := RenderHTML(context.Background(), controller, RenderOptions{Action: "/signup"})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(string(markup), `action="/signup"`) {
		t.Fatalf("unexpected markup:\n%s", markup)
	}
}

func TestRenderers_SeedsHTML(t *testing.T) {
	registry := Renderers()
	if !registry.Has("html") {
		t.Fatalf("expected built-in html renderer, registry holds %v", registry.List())
	}
}

func TestRender_ResolvesByName(t *testing.T) {
	s := schema.MustNew("signup",
		Field{Name: "email", Rules: []Rule{schema.Required(), schema.Email()}},
	)
	controller, err := New(s)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	markup, err := Render(context.Background(), controller, "html", RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(markup), `name="email"`) {
		t.Fatalf("unexpected markup:\n%s", markup)
	}

	if _, err := Render(context.Background(), controller, "pdf", RenderOptions{}); err == nil {
		t.Fatal("expected error for unregistered renderer")
	}
}
