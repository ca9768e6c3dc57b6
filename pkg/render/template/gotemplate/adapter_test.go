package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without base dir or fs.FS")
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}")},
	}

	engine, err := New(WithFS(fsys), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "maas"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hello maas" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderString_InlineContent(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.Render("{% if on %}enabled{% endif %}", map[string]any{"on": true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "enabled" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGlobalContext_SeedsEveryRender(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}), WithGlobalData(map[string]any{"product": "MAAS"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("{{ product }}", nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "MAAS" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertToContext_RejectsUnsupportedTypes(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = engine.RenderString("{{ x }}", 42)
	if err == nil || !strings.Contains(err.Error(), "unsupported context type") {
		t.Fatalf("expected unsupported context error, got %v", err)
	}
}
