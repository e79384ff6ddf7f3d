package catalog

import (
	"fmt"
	"strings"
)

// Catalog holds the enumerated building and department options the wizard
// offers. Treat it as immutable after construction; it is validated once and
// then only read.
type Catalog struct {
	buildings   []string
	departments []string
}

// New constructs a catalog from the embedded defaults plus any overrides.
func New(fns ...OptionFn) (*Catalog, error) {
	opts, err := NewOptions(fns...)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		buildings:   opts.Buildings,
		departments: opts.Departments,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Buildings returns a copy of the building options in declaration order.
func (c *Catalog) Buildings() []string {
	return append([]string{}, c.buildings...)
}

// Departments returns a copy of the department options in declaration order.
func (c *Catalog) Departments() []string {
	return append([]string{}, c.departments...)
}

// ContainsBuilding reports whether value is a configured building.
func (c *Catalog) ContainsBuilding(value string) bool {
	return contains(c.buildings, value)
}

// ContainsDepartment reports whether value is a configured department.
func (c *Catalog) ContainsDepartment(value string) bool {
	return contains(c.departments, value)
}

func (c *Catalog) validate() error {
	if len(c.buildings) == 0 {
		return fmt.Errorf("catalog: building list is empty")
	}
	if len(c.departments) == 0 {
		return fmt.Errorf("catalog: department list is empty")
	}
	if dup := firstDuplicate(c.buildings); dup != "" {
		return fmt.Errorf("catalog: duplicate building %q", dup)
	}
	if dup := firstDuplicate(c.departments); dup != "" {
		return fmt.Errorf("catalog: duplicate department %q", dup)
	}
	return nil
}

func contains(entries []string, value string) bool {
	for _, entry := range entries {
		if entry == value {
			return true
		}
	}
	return false
}

func firstDuplicate(entries []string) string {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		key := strings.TrimSpace(entry)
		if _, ok := seen[key]; ok {
			return entry
		}
		seen[key] = struct{}{}
	}
	return ""
}
