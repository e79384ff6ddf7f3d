package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Buildings   []string `yaml:"buildings"`
	Departments []string `yaml:"departments"`
}

// LoadOverrides parses a YAML override document and returns the option
// functions it implies. Either key may be omitted; an omitted or empty list
// keeps the embedded default. The source string is used in error messages.
func LoadOverrides(r io.Reader, source string) ([]OptionFn, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader for %s", source)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", source, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", source, err)
	}

	buildings, err := normaliseEntries(doc.Buildings, "buildings", source)
	if err != nil {
		return nil, err
	}
	departments, err := normaliseEntries(doc.Departments, "departments", source)
	if err != nil {
		return nil, err
	}

	var fns []OptionFn
	if len(buildings) > 0 {
		fns = append(fns, WithBuildings(buildings))
	}
	if len(departments) > 0 {
		fns = append(fns, WithDepartments(departments))
	}
	return fns, nil
}

// LoadOverridesFile reads a YAML override document from disk.
func LoadOverridesFile(path string) ([]OptionFn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadOverrides(f, path)
}

func normaliseEntries(raw []string, key, source string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			return nil, fmt.Errorf("catalog: file %s defines an empty %s entry", source, key)
		}
		if _, ok := seen[trimmed]; ok {
			return nil, fmt.Errorf("catalog: file %s defines duplicate %s entry %q", source, key, trimmed)
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out, nil
}
