package linkedcontent_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jamestiotio/maas/pkg/events"
	"github.com/jamestiotio/maas/pkg/fragments"
	"github.com/jamestiotio/maas/pkg/linkedcontent"
)

const prefix = "#power-parameter-form-"

var bundle = fragments.Map{
	prefix + "ipmi":  `<fieldset><input name="ip"></fieldset>`,
	prefix + "virsh": `<fieldset><input name="uri"></fieldset>`,
}

func newTarget(t *testing.T) *goquery.Selection {
	t.Helper()
	page := `<div id="power-parameters" class="u-hidden"><p class="static-note">Power parameters</p></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc.Find("#power-parameters")
}

func newWidget(t *testing.T, target *goquery.Selection, opts ...linkedcontent.Option) *linkedcontent.Widget {
	t.Helper()
	widget, err := linkedcontent.New(linkedcontent.Config{
		Drivers:        []string{"ipmi", "virsh"},
		TemplatePrefix: prefix,
		Target:         target,
		Source:         bundle,
	}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return widget
}

func TestNew_CapturesOneTemplatePerDriver(t *testing.T) {
	widget := newWidget(t, newTarget(t))

	for driver, selector := range map[string]string{"ipmi": prefix + "ipmi", "virsh": prefix + "virsh"} {
		markup, ok := widget.Template(driver)
		if !ok {
			t.Fatalf("missing captured template for %q", driver)
		}
		if markup != bundle[selector] {
			t.Fatalf("template for %q = %q, want %q", driver, markup, bundle[selector])
		}
	}
	if _, ok := widget.Template("amt"); ok {
		t.Fatal("unexpected template for undeclared driver")
	}
}

func TestNew_MissingTemplateFailsFast(t *testing.T) {
	_, err := linkedcontent.New(linkedcontent.Config{
		Drivers:        []string{"ipmi", "amt", "wedge"},
		TemplatePrefix: prefix,
		Target:         newTarget(t),
		Source:         bundle,
	})
	if !errors.Is(err, linkedcontent.ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}
	for _, missing := range []string{"amt", "wedge"} {
		if !strings.Contains(err.Error(), missing) {
			t.Fatalf("error should enumerate %q: %v", missing, err)
		}
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	target := newTarget(t)

	cases := []struct {
		name string
		cfg  linkedcontent.Config
	}{
		{
			name: "no drivers",
			cfg:  linkedcontent.Config{TemplatePrefix: prefix, Target: target, Source: bundle},
		},
		{
			name: "duplicate drivers",
			cfg: linkedcontent.Config{
				Drivers:        []string{"ipmi", "ipmi"},
				TemplatePrefix: prefix,
				Target:         target,
				Source:         bundle,
			},
		},
		{
			name: "missing target",
			cfg: linkedcontent.Config{
				Drivers:        []string{"ipmi"},
				TemplatePrefix: prefix,
				Source:         bundle,
			},
		},
		{
			name: "missing source",
			cfg: linkedcontent.Config{
				Drivers:        []string{"ipmi"},
				TemplatePrefix: prefix,
				Target:         target,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := linkedcontent.New(tc.cfg); err == nil {
				t.Fatal("expected construction to fail")
			}
		})
	}
}

func TestSetVisibility_HiddenIffEmpty(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	widget.SetVisibility("ipmi")
	if widget.Hidden() {
		t.Fatal("non-empty value must show the target")
	}
	widget.SetVisibility("ipmi")
	if widget.Hidden() {
		t.Fatal("SetVisibility must be idempotent")
	}

	widget.SetVisibility("")
	if !widget.Hidden() {
		t.Fatal("empty value must hide the target")
	}
	widget.SetVisibility("")
	if !widget.Hidden() {
		t.Fatal("SetVisibility must be idempotent when hiding")
	}
}

func TestSwitchTo_ReplacesPreviousFragment(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	if err := widget.SwitchTo("ipmi"); err != nil {
		t.Fatalf("SwitchTo(ipmi): %v", err)
	}
	if err := widget.SwitchTo("virsh"); err != nil {
		t.Fatalf("SwitchTo(virsh): %v", err)
	}

	if got := target.Find("fieldset").Length(); got != 1 {
		t.Fatalf("expected exactly one fieldset after the swap, got %d", got)
	}
	if target.Find(`input[name='ip']`).Length() != 0 {
		t.Fatal("residue of the previous fragment survived the swap")
	}
	if target.Find(`input[name='uri']`).Length() != 1 {
		t.Fatal("fragment for the new value is missing")
	}
}

func TestSwitchTo_PreservesUnrelatedContent(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	for _, value := range []string{"ipmi", "virsh", "", "ipmi"} {
		_ = widget.SwitchTo(value)
		if target.Find("p.static-note").Length() != 1 {
			t.Fatalf("static content lost after SwitchTo(%q)", value)
		}
	}
}

func TestSwitchTo_EmptyValueClearsAndHides(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	if err := widget.SwitchTo("ipmi"); err != nil {
		t.Fatalf("SwitchTo(ipmi): %v", err)
	}
	if err := widget.SwitchTo(""); err != nil {
		t.Fatalf("SwitchTo(\"\"): %v", err)
	}

	if target.Find("fieldset").Length() != 0 {
		t.Fatal("empty value must remove the previous fragment")
	}
	if !widget.Hidden() {
		t.Fatal("empty value must hide the target")
	}
}

func TestSwitchTo_UnknownDriver(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	if err := widget.SwitchTo("ipmi"); err != nil {
		t.Fatalf("SwitchTo(ipmi): %v", err)
	}

	err := widget.SwitchTo("nova")
	if !errors.Is(err, linkedcontent.ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
	if target.Find("fieldset").Length() != 0 {
		t.Fatal("unknown value must still clear the previous fragment")
	}
	if widget.Hidden() {
		t.Fatal("unknown non-empty value still updates visibility")
	}
}

func TestBindTo_SetsVisibilityWithoutInjectingContent(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	if err := widget.BindTo(events.SourceFunc(func() string { return "ipmi" }), "change"); err != nil {
		t.Fatalf("BindTo: %v", err)
	}

	// Initial bind only synchronizes visibility; the server pre-renders the
	// fragment for the initially selected driver.
	if widget.Hidden() {
		t.Fatal("bind must show the target for a non-empty initial value")
	}
	if target.Find("fieldset").Length() != 0 {
		t.Fatal("bind must not inject the initial fragment")
	}
}

func TestBindTo_RejectsInvalidArguments(t *testing.T) {
	widget := newWidget(t, newTarget(t))

	if err := widget.BindTo(nil, "change"); err == nil {
		t.Fatal("expected error for nil driver source")
	}
	if err := widget.BindTo(events.SourceFunc(func() string { return "" }), "  "); err == nil {
		t.Fatal("expected error for blank event name")
	}
}

func TestWidget_ChangeEventScenario(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target)

	value := ""
	source := events.SourceFunc(func() string { return value })
	if err := widget.BindTo(source, "change"); err != nil {
		t.Fatalf("BindTo: %v", err)
	}

	if !widget.Hidden() || target.Find("fieldset").Length() != 0 {
		t.Fatal("initial empty selection: target must be hidden and empty")
	}

	widget.Events().Fire("change", "ipmi")
	if widget.Hidden() {
		t.Fatal("after selecting ipmi the target must be visible")
	}
	if target.Find(`input[name='ip']`).Length() != 1 {
		t.Fatal("ipmi fieldset missing after change event")
	}

	widget.Events().Fire("change", "virsh")
	if widget.Hidden() {
		t.Fatal("target must stay visible across driver changes")
	}
	if target.Find(`input[name='ip']`).Length() != 0 {
		t.Fatal("ipmi fieldset must be gone after switching to virsh")
	}
	if target.Find(`input[name='uri']`).Length() != 1 {
		t.Fatal("virsh fieldset missing after change event")
	}

	widget.Events().Fire("change", "")
	if !widget.Hidden() {
		t.Fatal("clearing the selection must hide the target")
	}
	if target.Find("fieldset").Length() != 0 {
		t.Fatal("clearing the selection must remove the fragment")
	}
}

func TestWidget_EventPathErrorsReachHandler(t *testing.T) {
	target := newTarget(t)

	var seen error
	widget := newWidget(t, target, linkedcontent.WithErrorHandler(func(err error) {
		seen = err
	}))
	if err := widget.BindTo(events.SourceFunc(func() string { return "" }), "change"); err != nil {
		t.Fatalf("BindTo: %v", err)
	}

	widget.Events().Fire("change", "nova")
	if !errors.Is(seen, linkedcontent.ErrUnknownDriver) {
		t.Fatalf("error handler should receive ErrUnknownDriver, got %v", seen)
	}
}

func TestWidget_CustomHiddenClass(t *testing.T) {
	target := newTarget(t)
	widget := newWidget(t, target, linkedcontent.WithHiddenClass("is-hidden"))

	widget.SetVisibility("")
	if !target.HasClass("is-hidden") {
		t.Fatal("custom hidden class not applied")
	}
	widget.SetVisibility("ipmi")
	if target.HasClass("is-hidden") {
		t.Fatal("custom hidden class not removed")
	}
}
