package powerform

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassFieldset ChromeClass = "powerform-fieldset"
	ClassLegend   ChromeClass = "powerform-legend"
	ClassRow      ChromeClass = "powerform-row"
	ClassLabel    ChromeClass = "powerform-label"
	ClassControl  ChromeClass = "powerform-control"
	ClassHidden   ChromeClass = "u-hidden"
)

// ChromeClasses carries the class names stamped onto rendered fieldset
// markup. Zero values fall back to the defaults above.
type ChromeClasses struct {
	Fieldset string
	Legend   string
	Row      string
	Label    string
	Control  string
	Hidden   string
}

func (c ChromeClasses) withDefaults() ChromeClasses {
	if c.Fieldset == "" {
		c.Fieldset = string(ClassFieldset)
	}
	if c.Legend == "" {
		c.Legend = string(ClassLegend)
	}
	if c.Row == "" {
		c.Row = string(ClassRow)
	}
	if c.Label == "" {
		c.Label = string(ClassLabel)
	}
	if c.Control == "" {
		c.Control = string(ClassControl)
	}
	if c.Hidden == "" {
		c.Hidden = string(ClassHidden)
	}
	return c
}
