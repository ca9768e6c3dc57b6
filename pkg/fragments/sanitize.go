package fragments

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fieldPolicyOnce sync.Once
	fieldPolicy     *bluemonday.Policy
)

// Sanitized wraps a provider so every fragment passes through the supplied
// bluemonday policy. A nil policy falls back to FieldPolicy.
func Sanitized(provider Provider, policy *bluemonday.Policy) Provider {
	if policy == nil {
		policy = FieldPolicy()
	}
	return ProviderFunc(func(selector string) (string, error) {
		markup, err := provider.Fragment(selector)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(policy.Sanitize(markup)), nil
	})
}

// FieldPolicy admits form-field markup (fieldset, legend, label, input,
// select, option, textarea and their safe attributes) and strips everything
// that could execute, so fragments captured from a live page cannot smuggle
// scripts back into the target region.
func FieldPolicy() *bluemonday.Policy {
	fieldPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()

		policy.AllowElements(
			"fieldset", "legend", "label", "input", "select", "option",
			"optgroup", "textarea", "div", "span", "p", "small", "ul", "li",
		)

		policy.AllowAttrs("class", "id", "title").Globally()
		policy.AllowAttrs(
			"name", "type", "value", "placeholder", "required", "disabled",
			"readonly", "checked", "min", "max", "step", "maxlength",
			"autocomplete", "pattern",
		).OnElements("input")
		policy.AllowAttrs("name", "required", "disabled", "multiple").OnElements("select")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs(
			"name", "rows", "cols", "placeholder", "required", "disabled",
			"readonly", "maxlength",
		).OnElements("textarea")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("disabled", "name").OnElements("fieldset")

		fieldPolicy = policy
	})
	return fieldPolicy
}
