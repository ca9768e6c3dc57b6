package powerform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jamestiotio/maas/pkg/events"
	"github.com/jamestiotio/maas/pkg/fragments"
	"github.com/jamestiotio/maas/pkg/linkedcontent"
)

// Default selectors for the console's node edit page.
const (
	DefaultTargetSelector = "#power-parameters"
	DefaultDriverSelector = "select[name='power_type']"
	DefaultTemplatePrefix = "#power-parameter-form-"
	DefaultEventName      = "change"
)

// SectionConfig locates the power-parameter section on a console page. Zero
// values fall back to the defaults above.
type SectionConfig struct {
	TargetSelector string
	DriverSelector string
	TemplatePrefix string
	EventName      string
	// Sanitize runs page-captured fragments through the form-field policy
	// before they are cached. It only applies to NewPageSection.
	Sanitize bool
}

func (cfg SectionConfig) withDefaults() SectionConfig {
	if strings.TrimSpace(cfg.TargetSelector) == "" {
		cfg.TargetSelector = DefaultTargetSelector
	}
	if strings.TrimSpace(cfg.DriverSelector) == "" {
		cfg.DriverSelector = DefaultDriverSelector
	}
	if strings.TrimSpace(cfg.TemplatePrefix) == "" {
		cfg.TemplatePrefix = DefaultTemplatePrefix
	}
	if strings.TrimSpace(cfg.EventName) == "" {
		cfg.EventName = DefaultEventName
	}
	return cfg
}

// NewSection assembles a linked power-parameter section on the given page:
// every catalog driver is rendered into a fragment bundle up front, a widget
// is constructed over the page's target region, and the widget is bound to
// the driver select's change event. The returned widget is live; fire its
// dispatcher to simulate selection changes.
func NewSection(renderer *Renderer, page *goquery.Document, cfg SectionConfig, opts ...linkedcontent.Option) (*linkedcontent.Widget, error) {
	if renderer == nil {
		return nil, errors.New("powerform: renderer is required")
	}

	cfg = cfg.withDefaults()
	provider, err := renderer.BuildProvider(cfg.TemplatePrefix, nil)
	if err != nil {
		return nil, err
	}

	options := append([]linkedcontent.Option{
		linkedcontent.WithHiddenClass(renderer.HiddenClass()),
	}, opts...)

	return assemble(renderer.Catalog().Names(), provider, page, cfg, options)
}

// NewPageSection assembles a section whose fragments are captured from
// non-rendering template blocks embedded in the page itself, addressed by
// template prefix + driver name. This matches consoles that pre-render their
// fragment templates server side.
func NewPageSection(drivers []string, page *goquery.Document, cfg SectionConfig, opts ...linkedcontent.Option) (*linkedcontent.Widget, error) {
	if page == nil {
		return nil, errors.New("powerform: page document is required")
	}

	cfg = cfg.withDefaults()
	source, err := fragments.NewDocument(page)
	if err != nil {
		return nil, err
	}

	var provider fragments.Provider = source
	if cfg.Sanitize {
		provider = fragments.Sanitized(provider, nil)
	}

	return assemble(drivers, provider, page, cfg, opts)
}

func assemble(drivers []string, provider fragments.Provider, page *goquery.Document, cfg SectionConfig, opts []linkedcontent.Option) (*linkedcontent.Widget, error) {
	if page == nil {
		return nil, errors.New("powerform: page document is required")
	}

	target := page.Find(cfg.TargetSelector).First()
	if target.Length() == 0 {
		return nil, fmt.Errorf("powerform: target region %q not found", cfg.TargetSelector)
	}

	widget, err := linkedcontent.New(linkedcontent.Config{
		Drivers:        drivers,
		TemplatePrefix: cfg.TemplatePrefix,
		Target:         target,
		Source:         provider,
	}, opts...)
	if err != nil {
		return nil, err
	}

	driver := events.NewSelectSource(page.Find(cfg.DriverSelector).First())
	if err := widget.BindTo(driver, cfg.EventName); err != nil {
		return nil, err
	}
	return widget, nil
}
