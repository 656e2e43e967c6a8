package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/render"
	"github.com/goliatone/go-formstate/pkg/renderers/tui"
	"github.com/goliatone/go-formstate/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema document path (YAML or JSON)")
	formID := flag.String("form", "", "form ID inside the schema document")
	openapiPath := flag.String("openapi", "", "OpenAPI document path (alternative to -schema)")
	operation := flag.String("operation", "", "operation ID inside the OpenAPI document")
	mode := flag.String("mode", "tui", "output mode: tui or a registered renderer name (e.g. html)")
	action := flag.String("action", "", "form action URL for HTML output")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	s, err := loadSchema(ctx, *schemaPath, *formID, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	controller, err := form.New(s)
	if err != nil {
		log.Fatalf("Failed to build controller: %v", err)
	}

	if *mode == "tui" {
		runTUI(ctx, controller)
		return
	}
	renderForm(ctx, controller, *mode, *action, *output)
}

func loadSchema(ctx context.Context, schemaPath, formID, openapiPath, operation string) (schema.Schema, error) {
	switch {
	case schemaPath != "":
		raw, err := os.ReadFile(schemaPath)
		if err != nil {
			return schema.Schema{}, err
		}
		forms, err := schema.Parse(raw)
		if err != nil {
			return schema.Schema{}, err
		}
		if formID == "" {
			if len(forms) == 1 {
				for _, s := range forms {
					return s, nil
				}
			}
			return schema.Schema{}, fmt.Errorf("document holds %d forms; pick one with -form", len(forms))
		}
		s, ok := forms[formID]
		if !ok {
			return schema.Schema{}, fmt.Errorf("form %q not found in %s", formID, schemaPath)
		}
		return s, nil
	case openapiPath != "":
		if operation == "" {
			return schema.Schema{}, errors.New("-operation is required with -openapi")
		}
		return openapi.FromFile(ctx, openapiPath, operation, openapi.Options{})
	default:
		return schema.Schema{}, errors.New("provide -schema or -openapi")
	}
}

func runTUI(ctx context.Context, controller *form.Controller) {
	session, err := tui.NewSession(controller, tui.WithTheme(tui.Theme{ErrorPrefix: "✗ "}))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	values, err := session.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("Session failed: %v", err)
	}

	encoded, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}
	fmt.Println(string(encoded))
}

func renderForm(ctx context.Context, controller *form.Controller, mode, action, output string) {
	renderer, err := formstate.Renderers().Get(mode)
	if err != nil {
		log.Fatalf("Unknown mode %q (want tui or one of %v)", mode, formstate.Renderers().List())
	}

	markup, err := renderer.Render(ctx, controller.Snapshot(), render.Options{Action: action})
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if output != "" {
		if err := os.WriteFile(output, markup, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", output)
	} else {
		fmt.Println(string(markup))
	}
}
