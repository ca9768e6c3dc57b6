package powerform_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jamestiotio/maas/pkg/powerform"
)

const nodeEditPage = `<html><body>
<form id="node-edit">
  <select name="power_type">
    <option value="" selected>Select power type</option>
    <option value="ipmi">IPMI</option>
    <option value="virsh">Virsh</option>
  </select>
  <div id="power-parameters"><p class="static-note">Power parameters</p></div>
</form>
</body></html>`

const preRenderedPage = `<html><body>
<select name="power_type">
  <option value="" selected>Select power type</option>
  <option value="ipmi">IPMI</option>
  <option value="virsh">Virsh</option>
</select>
<div id="power-parameters"></div>
<script type="text/x-template" id="power-parameter-form-ipmi"><fieldset><input name="ip"></fieldset></script>
<script type="text/x-template" id="power-parameter-form-virsh"><fieldset><input name="uri"></fieldset></script>
</body></html>`

func parsePage(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

func TestNewSection_SwapsRenderedFragments(t *testing.T) {
	renderer, err := powerform.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	page := parsePage(t, nodeEditPage)
	widget, err := powerform.NewSection(renderer, page, powerform.SectionConfig{})
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}

	target := page.Find("#power-parameters")
	if !target.HasClass("u-hidden") {
		t.Fatal("empty initial selection must hide the target")
	}

	widget.Events().Fire("change", "ipmi")
	if target.HasClass("u-hidden") {
		t.Fatal("target must be visible after selecting ipmi")
	}
	if target.Find(`input[name='power_parameters_power_address']`).Length() != 1 {
		t.Fatal("ipmi parameter controls missing after change event")
	}

	widget.Events().Fire("change", "virsh")
	if target.Find(`input[name='power_parameters_power_address']`).Length() != 0 {
		t.Fatal("ipmi controls must be removed after switching to virsh")
	}
	if target.Find(`input[name='power_parameters_power_id']`).Length() != 1 {
		t.Fatal("virsh parameter controls missing after change event")
	}
	if target.Find("p.static-note").Length() != 1 {
		t.Fatal("static target content must survive the swap")
	}
}

func TestNewSection_MissingTarget(t *testing.T) {
	renderer, err := powerform.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	page := parsePage(t, `<html><body><select name="power_type"></select></body></html>`)
	if _, err := powerform.NewSection(renderer, page, powerform.SectionConfig{}); err == nil {
		t.Fatal("expected error when the target region is absent")
	}
}

func TestNewPageSection_CapturesPageTemplates(t *testing.T) {
	page := parsePage(t, preRenderedPage)

	widget, err := powerform.NewPageSection([]string{"ipmi", "virsh"}, page, powerform.SectionConfig{})
	if err != nil {
		t.Fatalf("NewPageSection: %v", err)
	}

	target := page.Find("#power-parameters")
	widget.Events().Fire("change", "virsh")
	if target.Find(`input[name='uri']`).Length() != 1 {
		t.Fatal("virsh fragment not injected from page template block")
	}
	widget.Events().Fire("change", "ipmi")
	if target.Find(`input[name='uri']`).Length() != 0 {
		t.Fatal("virsh fragment not removed when switching to ipmi")
	}
	if target.Find(`input[name='ip']`).Length() != 1 {
		t.Fatal("ipmi fragment not injected from page template block")
	}
}

func TestNewPageSection_MissingTemplateFailsFast(t *testing.T) {
	page := parsePage(t, preRenderedPage)

	_, err := powerform.NewPageSection([]string{"ipmi", "amt"}, page, powerform.SectionConfig{})
	if err == nil || !strings.Contains(err.Error(), "amt") {
		t.Fatalf("expected missing template error naming amt, got %v", err)
	}
}

func TestNewPageSection_Sanitizes(t *testing.T) {
	dirty := `<html><body>
<select name="power_type"><option value="" selected></option></select>
<div id="power-parameters"></div>
<script type="text/x-template" id="power-parameter-form-ipmi"><fieldset><input name="ip" onfocus="steal()"></fieldset></script>
</body></html>`
	page := parsePage(t, dirty)

	widget, err := powerform.NewPageSection([]string{"ipmi"}, page, powerform.SectionConfig{Sanitize: true})
	if err != nil {
		t.Fatalf("NewPageSection: %v", err)
	}

	markup, ok := widget.Template("ipmi")
	if !ok {
		t.Fatal("captured template missing")
	}
	if strings.Contains(markup, "onfocus") {
		t.Fatalf("sanitizer left an event handler attribute: %q", markup)
	}
	if !strings.Contains(markup, `name="ip"`) {
		t.Fatalf("sanitizer dropped the field: %q", markup)
	}
}
