package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/render"
)

func stubRenderer(name string) render.Renderer {
	return render.RendererFunc{
		FormatName: name,
		Fn: func(data model.TemplateData) string {
			return name + ":" + data.ProductName
		},
	}
}

func TestRegistry_RegisterAndList(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer("v1"))
	registry.MustRegister(stubRenderer("A4"))

	if diff := cmp.Diff([]string{"a4", "v1"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has(" V1 ") {
		t.Fatalf("expected case-insensitive Has")
	}

	got, err := registry.Get("a4")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out := got.Render(model.TemplateData{ProductName: "Táo"}); out != "A4:Táo" {
		t.Fatalf("unexpected render output %q", out)
	}
}

func TestRegistry_RegisterErrors(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer("a4"))

	if err := registry.Register(stubRenderer("A4")); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer("  ")); err == nil {
		t.Fatalf("expected error for blank name")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic for a missing renderer")
		}
	}()
	registry.MustGet("v9")
}

func TestRegistry_ResolveFallsBackToDefault(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer("a4"))
	registry.MustRegister(stubRenderer("v2"))

	tests := map[string]string{
		"v2":      "v2",
		"V2":      "v2",
		"xyz":     "a4",
		"":        "a4",
		"unknown": "a4",
	}
	for input, want := range tests {
		renderer := registry.Resolve(input)
		if renderer == nil {
			t.Fatalf("Resolve(%q) returned nil", input)
		}
		if renderer.Name() != want {
			t.Fatalf("Resolve(%q) = %q, want %q", input, renderer.Name(), want)
		}
	}
}

func TestRegistry_ResolveWithoutDefault(t *testing.T) {
	registry := render.NewRegistry()
	if registry.Resolve("a4") != nil {
		t.Fatalf("expected nil from an empty registry")
	}

	registry.MustRegister(stubRenderer("v1"))
	if registry.Resolve("xyz") != nil {
		t.Fatalf("expected nil when the default format is not registered")
	}
}

func TestRendererFunc_NilFn(t *testing.T) {
	r := render.RendererFunc{FormatName: "a4"}
	if r.Render(model.TemplateData{}) != "" {
		t.Fatalf("expected empty output")
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}
