// Package powerform renders power-parameter fieldset fragments from the
// power-type catalog and assembles them into a linked form section on a
// console page.
package powerform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/jamestiotio/maas/pkg/catalog"
	"github.com/jamestiotio/maas/pkg/fragments"
	rendertemplate "github.com/jamestiotio/maas/pkg/render/template"
	gotemplate "github.com/jamestiotio/maas/pkg/render/template/gotemplate"
)

const fieldsetTemplate = "templates/fieldset.tmpl"

// Option configures the fragment renderer.
type Option func(*config)

type config struct {
	catalog          *catalog.Catalog
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	chrome           ChromeClasses
	themeStyle       string
}

// WithCatalog supplies the power-type catalog. Without it the embedded
// catalog is loaded.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(cfg *config) {
		if cat != nil {
			cfg.catalog = cat
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithChromeClasses overrides the CSS classes stamped onto rendered markup.
func WithChromeClasses(chrome ChromeClasses) Option {
	return func(cfg *config) {
		cfg.chrome = chrome
	}
}

// WithTheme derives chrome classes and inline CSS variables from a go-theme
// renderer configuration. Token keys: fieldset-class, legend-class,
// row-class, label-class, control-class, hidden-class. CSS vars become an
// inline style on the fieldset.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		if cfg == nil {
			return
		}
		c.chrome = chromeFromTokens(cfg.Tokens, c.chrome)
		c.themeStyle = cssVarsStyle(cfg.CSSVars)
	}
}

// Renderer produces one fieldset fragment per power type.
type Renderer struct {
	engine  rendertemplate.TemplateRenderer
	catalog *catalog.Catalog
	chrome  ChromeClasses
	style   string
}

// NewRenderer constructs a renderer applying any provided options.
func NewRenderer(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.catalog == nil {
		cat, err := DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("powerform: load embedded catalog: %w", err)
		}
		cfg.catalog = cat
	}
	if cfg.catalog.Len() == 0 {
		return nil, errors.New("powerform: catalog has no drivers")
	}

	engine := cfg.templateRenderer
	if engine == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("powerform: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{
		engine:  engine,
		catalog: cfg.catalog,
		chrome:  cfg.chrome.withDefaults(),
		style:   cfg.themeStyle,
	}, nil
}

// Catalog returns the catalog this renderer draws drivers from.
func (r *Renderer) Catalog() *catalog.Catalog {
	return r.catalog
}

// HiddenClass returns the class the assembled section uses to hide its
// target region.
func (r *Renderer) HiddenClass() string {
	return r.chrome.Hidden
}

// RenderDriver renders the fieldset fragment for the named power type,
// prefilling control values from values (keyed by field name).
func (r *Renderer) RenderDriver(name string, values map[string]string) (string, error) {
	driver, ok := r.catalog.Driver(name)
	if !ok {
		return "", fmt.Errorf("powerform: unknown power type %q", name)
	}

	rendered, err := r.engine.RenderTemplate(fieldsetTemplate, r.templateContext(driver, values))
	if err != nil {
		return "", fmt.Errorf("powerform: render %q: %w", name, err)
	}
	return strings.TrimSpace(rendered), nil
}

// BuildProvider renders every driver in the catalog and returns the results
// as a fragment bundle keyed by prefix + driver name, ready to back a
// linked-content widget.
func (r *Renderer) BuildProvider(prefix string, values map[string]string) (fragments.Map, error) {
	bundle := make(fragments.Map, r.catalog.Len())
	for _, name := range r.catalog.Names() {
		markup, err := r.RenderDriver(name, values)
		if err != nil {
			return nil, err
		}
		bundle[prefix+name] = markup
	}
	return bundle, nil
}

func (r *Renderer) templateContext(driver catalog.Driver, values map[string]string) map[string]any {
	fields := make([]map[string]any, 0, len(driver.Fields))
	for _, field := range driver.Fields {
		value := values[field.Name]
		if value == "" {
			value = field.Default
		}
		if field.Secret {
			// Secrets are never echoed back into markup.
			value = ""
		}

		choices := make([]map[string]any, 0, len(field.Choices))
		for _, choice := range field.Choices {
			choices = append(choices, map[string]any{
				"value":    choice.Value,
				"label":    choice.Label,
				"selected": choice.Value == value,
			})
		}

		fields = append(fields, map[string]any{
			"name":     field.Name,
			"label":    field.DisplayLabel(),
			"kind":     string(field.Type),
			"input":    field.InputType(),
			"required": field.Required,
			"value":    value,
			"choices":  choices,
		})
	}

	return map[string]any{
		"driver_label":    driver.DisplayLabel(),
		"fields":          fields,
		"chrome_fieldset": r.chrome.Fieldset,
		"chrome_legend":   r.chrome.Legend,
		"chrome_row":      r.chrome.Row,
		"chrome_label":    r.chrome.Label,
		"chrome_control":  r.chrome.Control,
		"theme_style":     r.style,
	}
}

func chromeFromTokens(tokens map[string]string, chrome ChromeClasses) ChromeClasses {
	pick := func(key, current string) string {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			return value
		}
		return current
	}
	chrome.Fieldset = pick("fieldset-class", chrome.Fieldset)
	chrome.Legend = pick("legend-class", chrome.Legend)
	chrome.Row = pick("row-class", chrome.Row)
	chrome.Label = pick("label-class", chrome.Label)
	chrome.Control = pick("control-class", chrome.Control)
	chrome.Hidden = pick("hidden-class", chrome.Hidden)
	return chrome
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		parts = append(parts, name+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
