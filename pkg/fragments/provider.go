package fragments

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that a provider has no fragment for the requested
// selector.
var ErrNotFound = errors.New("fragments: fragment not found")

// Provider resolves a lookup selector to a raw HTML fragment. Implementations
// must be safe for repeated reads; providers backed by live sources should
// capture their content once so later page mutations are not picked up.
type Provider interface {
	Fragment(selector string) (string, error)
}

// Map is a build-time fragment bundle keyed by selector.
type Map map[string]string

// Fragment returns the fragment stored under selector.
func (m Map) Fragment(selector string) (string, error) {
	markup, ok := m[selector]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, selector)
	}
	return markup, nil
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func(selector string) (string, error)

// Fragment delegates to the underlying function.
func (fn ProviderFunc) Fragment(selector string) (string, error) {
	return fn(selector)
}

// Capture resolves every selector through the provider and returns the
// results as a Map, so the caller holds an immutable snapshot. A missing
// fragment aborts the capture; the error names every unresolved selector.
func Capture(provider Provider, selectors []string) (Map, error) {
	if provider == nil {
		return nil, errors.New("fragments: provider is required")
	}

	captured := make(Map, len(selectors))
	var missing []string
	for _, selector := range selectors {
		markup, err := provider.Fragment(selector)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				missing = append(missing, selector)
				continue
			}
			return nil, fmt.Errorf("fragments: capture %q: %w", selector, err)
		}
		captured[selector] = markup
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}
	return captured, nil
}
