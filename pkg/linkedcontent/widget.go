// Package linkedcontent binds a driver selection control to a target content
// region inside a parsed HTML page. When the driver value changes, the widget
// swaps in the fragment associated with the new value and toggles the target's
// visibility. The target is externally owned; the widget only mutates its
// contents and class list, and scopes every removal to the nodes it inserted
// itself.
package linkedcontent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jamestiotio/maas/pkg/events"
	"github.com/jamestiotio/maas/pkg/fragments"
)

// Config carries the required construction inputs.
type Config struct {
	// Drivers is the ordered enumeration of recognized driver values. It must
	// be non-empty and free of duplicates.
	Drivers []string
	// TemplatePrefix is concatenated with each driver value to form the
	// fragment lookup selector.
	TemplatePrefix string
	// Target is the DOM region whose contents the widget swaps. The widget
	// observes and mutates it but never constructs or destroys it.
	Target *goquery.Selection
	// Source resolves lookup selectors to raw fragment markup. Fragments are
	// captured once during construction; later source changes are not picked
	// up.
	Source fragments.Provider
}

// Widget is the linked-content form-section toggler. All methods run
// synchronously on the calling goroutine; change events are assumed to be
// delivered one at a time, as a browser would.
type Widget struct {
	drivers      []string
	templates    map[string]string
	target       *goquery.Selection
	hiddenClass  string
	fragmentAttr string
	dispatcher   *events.Dispatcher
	onError      func(error)
}

// New validates the configuration and captures one fragment per driver value.
// A fragment that cannot be resolved fails construction; the error enumerates
// every missing driver.
func New(cfg Config, opts ...Option) (*Widget, error) {
	if len(cfg.Drivers) == 0 {
		return nil, errors.New("linkedcontent: at least one driver is required")
	}
	if cfg.Target == nil || cfg.Target.Length() == 0 {
		return nil, errors.New("linkedcontent: target region is required")
	}
	if cfg.Source == nil {
		return nil, errors.New("linkedcontent: fragment source is required")
	}

	options := config{
		hiddenClass:  DefaultHiddenClass,
		fragmentAttr: DefaultFragmentAttr,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}
	if options.dispatcher == nil {
		options.dispatcher = events.NewDispatcher()
	}

	templates, err := captureTemplates(cfg)
	if err != nil {
		return nil, err
	}

	return &Widget{
		drivers:      append([]string(nil), cfg.Drivers...),
		templates:    templates,
		target:       cfg.Target,
		hiddenClass:  options.hiddenClass,
		fragmentAttr: options.fragmentAttr,
		dispatcher:   options.dispatcher,
		onError:      options.onError,
	}, nil
}

func captureTemplates(cfg Config) (map[string]string, error) {
	templates := make(map[string]string, len(cfg.Drivers))
	var missing []string

	for _, driver := range cfg.Drivers {
		key := strings.TrimSpace(driver)
		if key == "" {
			return nil, errors.New("linkedcontent: driver values must be non-empty")
		}
		if _, exists := templates[key]; exists {
			return nil, fmt.Errorf("linkedcontent: duplicate driver value %q", key)
		}

		markup, err := cfg.Source.Fragment(cfg.TemplatePrefix + key)
		if err != nil {
			if errors.Is(err, fragments.ErrNotFound) {
				missing = append(missing, key)
				continue
			}
			return nil, fmt.Errorf("linkedcontent: capture template for %q: %w", key, err)
		}
		templates[key] = markup
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, strings.Join(missing, ", "))
	}
	return templates, nil
}

// BindTo subscribes the widget to the named change event of the driving
// control and establishes the initial visibility from the control's current
// value. The initial fragment is NOT injected here: the console server
// pre-renders the fieldset for the initially selected driver, so the swap only
// happens once the user changes the selection. The subscription persists for
// the widget's lifetime.
func (w *Widget) BindTo(driver events.Source, eventName string) error {
	if driver == nil {
		return errors.New("linkedcontent: driver source is required")
	}
	if strings.TrimSpace(eventName) == "" {
		return errors.New("linkedcontent: event name is required")
	}

	w.dispatcher.On(eventName, func(value string) {
		if err := w.SwitchTo(value); err != nil && w.onError != nil {
			w.onError(err)
		}
	})
	w.SetVisibility(driver.Value())
	return nil
}

// SwitchTo removes the fragment previously inserted by this widget, appends
// the fragment for value, and synchronizes visibility. The empty value is the
// documented "none selected" state: the old fragment is removed and the target
// hidden, with no error. A value outside the driver enumeration also clears
// the old fragment and updates visibility, but reports ErrUnknownDriver.
func (w *Widget) SwitchTo(value string) error {
	w.removeFragment()

	var switchErr error
	if value != "" {
		markup, ok := w.templates[value]
		switch {
		case !ok:
			switchErr = fmt.Errorf("%w: %q", ErrUnknownDriver, value)
		default:
			switchErr = w.appendFragment(value, markup)
		}
	}

	w.SetVisibility(value)
	return switchErr
}

// SetVisibility hides the target iff value is the empty string. It reads no
// other state and is idempotent.
func (w *Widget) SetVisibility(value string) {
	if value == "" {
		w.target.AddClass(w.hiddenClass)
		return
	}
	w.target.RemoveClass(w.hiddenClass)
}

// Hidden reports whether the target currently carries the hidden class.
func (w *Widget) Hidden() bool {
	return w.target.HasClass(w.hiddenClass)
}

// Template returns the fragment captured for the given driver value.
func (w *Widget) Template(driver string) (string, bool) {
	markup, ok := w.templates[driver]
	return markup, ok
}

// Drivers returns the configured driver enumeration in order.
func (w *Widget) Drivers() []string {
	return append([]string(nil), w.drivers...)
}

// Events exposes the dispatcher delivering this widget's change events, so
// the host can fire them.
func (w *Widget) Events() *events.Dispatcher {
	return w.dispatcher
}

func (w *Widget) removeFragment() {
	w.target.ChildrenFiltered("[" + w.fragmentAttr + "]").Remove()
}

// appendFragment parses the fragment and appends its nodes to the target's
// existing content. Top-level element nodes are tagged with the fragment
// attribute so a later swap removes exactly this material. Fragments are
// expected to be element-rooted (a fieldset); bare top-level text is inserted
// as-is but not tracked for removal.
func (w *Widget) appendFragment(driver, markup string) error {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("linkedcontent: parse fragment for %q: %w", driver, err)
	}

	appended := nodes[:0]
	for _, node := range nodes {
		if node.Type == html.TextNode && strings.TrimSpace(node.Data) == "" {
			continue
		}
		if node.Type == html.ElementNode {
			node.Attr = append(node.Attr, html.Attribute{Key: w.fragmentAttr, Val: driver})
		}
		appended = append(appended, node)
	}

	w.target.AppendNodes(appended...)
	return nil
}
