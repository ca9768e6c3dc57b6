package events

import (
	"github.com/PuerkitoBio/goquery"
)

// SelectSource reads the current value of a <select> element in a parsed
// page. The selection is observed, not owned.
type SelectSource struct {
	node *goquery.Selection
}

// NewSelectSource wraps a goquery selection pointing at a select element.
func NewSelectSource(node *goquery.Selection) *SelectSource {
	return &SelectSource{node: node}
}

// Value resolves the selected option's value the way a browser would: an
// option carrying the selected attribute wins, otherwise the first option,
// otherwise the element's own value attribute. Returns the empty string when
// the control has no resolvable value.
func (s *SelectSource) Value() string {
	if s == nil || s.node == nil || s.node.Length() == 0 {
		return ""
	}

	if selected := s.node.Find("option[selected]").First(); selected.Length() > 0 {
		return optionValue(selected)
	}
	if first := s.node.Find("option").First(); first.Length() > 0 {
		return optionValue(first)
	}

	value, _ := s.node.Attr("value")
	return value
}

func optionValue(option *goquery.Selection) string {
	if value, ok := option.Attr("value"); ok {
		return value
	}
	return option.Text()
}
