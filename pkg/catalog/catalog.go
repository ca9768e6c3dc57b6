// Package catalog describes the power types a console deployment recognizes:
// the driver enumeration plus per-driver parameter field metadata. Catalogs
// are loaded from YAML/JSON files and are read-only afterwards.
package catalog

import "strings"

// FieldType enumerates the parameter field kinds a driver can declare.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypePassword FieldType = "password"
	FieldTypeChoice   FieldType = "choice"
	FieldTypeInteger  FieldType = "integer"
)

// Choice is one selectable value of a choice field.
type Choice struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Field describes one power parameter of a driver.
type Field struct {
	Name     string    `yaml:"name" json:"name"`
	Label    string    `yaml:"label" json:"label"`
	Type     FieldType `yaml:"type" json:"type"`
	Required bool      `yaml:"required" json:"required"`
	Secret   bool      `yaml:"secret" json:"secret"`
	Default  string    `yaml:"default" json:"default"`
	Choices  []Choice  `yaml:"choices" json:"choices"`
}

// Driver is one recognized power type.
type Driver struct {
	Name        string  `yaml:"name" json:"name"`
	Label       string  `yaml:"label" json:"label"`
	Description string  `yaml:"description" json:"description"`
	Fields      []Field `yaml:"fields" json:"fields"`
}

// Catalog holds the ordered driver enumeration.
type Catalog struct {
	drivers []Driver
	byName  map[string]int
}

// New builds a catalog from the given drivers, preserving order. Empty and
// duplicate driver names are rejected by the loader before reaching here;
// New trims names defensively but performs no further validation.
func New(drivers []Driver) *Catalog {
	cat := &Catalog{
		drivers: append([]Driver(nil), drivers...),
		byName:  make(map[string]int, len(drivers)),
	}
	for idx := range cat.drivers {
		cat.drivers[idx].Name = strings.TrimSpace(cat.drivers[idx].Name)
		cat.byName[cat.drivers[idx].Name] = idx
	}
	return cat
}

// Driver returns the named driver.
func (c *Catalog) Driver(name string) (Driver, bool) {
	if c == nil {
		return Driver{}, false
	}
	idx, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return Driver{}, false
	}
	return c.drivers[idx], true
}

// Names returns the driver names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.drivers))
	for idx, driver := range c.drivers {
		names[idx] = driver.Name
	}
	return names
}

// Drivers returns the drivers in catalog order.
func (c *Catalog) Drivers() []Driver {
	if c == nil {
		return nil
	}
	return append([]Driver(nil), c.drivers...)
}

// Len reports the number of drivers.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.drivers)
}

// DisplayLabel returns the field's display label, falling back to its name.
func (f Field) DisplayLabel() string {
	if trimmed := strings.TrimSpace(f.Label); trimmed != "" {
		return trimmed
	}
	return f.Name
}

// DisplayLabel returns the driver's display label, falling back to its name.
func (d Driver) DisplayLabel() string {
	if trimmed := strings.TrimSpace(d.Label); trimmed != "" {
		return trimmed
	}
	return d.Name
}

// InputType maps the field type to the HTML input type used when rendering.
func (f Field) InputType() string {
	switch f.Type {
	case FieldTypePassword:
		return "password"
	case FieldTypeInteger:
		return "number"
	default:
		if f.Secret {
			return "password"
		}
		return "text"
	}
}
