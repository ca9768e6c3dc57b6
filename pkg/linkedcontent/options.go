package linkedcontent

import (
	"strings"

	"github.com/jamestiotio/maas/pkg/events"
)

// DefaultHiddenClass marks the target region hidden when no driver is
// selected.
const DefaultHiddenClass = "u-hidden"

// DefaultFragmentAttr tags the nodes a widget inserts so removal can be
// scoped to exactly the material this widget owns inside the target.
const DefaultFragmentAttr = "data-linked-fragment"

// Option configures a widget before construction.
type Option func(*config)

type config struct {
	hiddenClass  string
	fragmentAttr string
	dispatcher   *events.Dispatcher
	onError      func(error)
}

// WithHiddenClass overrides the CSS class applied to the target when the
// driver value is empty. Empty input is ignored.
func WithHiddenClass(class string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(class)
		if trimmed == "" {
			return
		}
		cfg.hiddenClass = trimmed
	}
}

// WithFragmentAttr overrides the data attribute used to tag inserted
// fragment nodes. Empty input is ignored.
func WithFragmentAttr(attr string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(attr)
		if trimmed == "" {
			return
		}
		cfg.fragmentAttr = trimmed
	}
}

// WithDispatcher shares an externally owned event dispatcher. By default each
// widget allocates its own.
func WithDispatcher(dispatcher *events.Dispatcher) Option {
	return func(cfg *config) {
		if dispatcher != nil {
			cfg.dispatcher = dispatcher
		}
	}
}

// WithErrorHandler registers a callback for errors raised on the event path,
// where SwitchTo has no caller to return to. Without one those errors are
// dropped, matching the original console behavior.
func WithErrorHandler(handler func(error)) Option {
	return func(cfg *config) {
		if handler != nil {
			cfg.onError = handler
		}
	}
}
