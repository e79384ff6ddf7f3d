package catalog

// Options carries the resolved option lists used to build a Catalog.
type Options struct {
	Buildings   []string
	Departments []string
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// NewOptions resolves the embedded defaults and applies overrides in order.
// A later override wins; passing an empty list falls back to the defaults so
// a partial YAML document cannot silently blank a dropdown.
func NewOptions(fns ...OptionFn) (Options, error) {
	buildings, err := DefaultBuildings()
	if err != nil {
		return Options{}, err
	}
	departments, err := DefaultDepartments()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Buildings:   buildings,
		Departments: departments,
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts, nil
}

// WithBuildings replaces the building list. Empty input is ignored.
func WithBuildings(entries []string) OptionFn {
	return func(o *Options) {
		if o == nil || len(entries) == 0 {
			return
		}
		o.Buildings = append([]string{}, entries...)
	}
}

// WithDepartments replaces the department list. Empty input is ignored.
func WithDepartments(entries []string) OptionFn {
	return func(o *Options) {
		if o == nil || len(entries) == 0 {
			return
		}
		o.Departments = append([]string{}, entries...)
	}
}
