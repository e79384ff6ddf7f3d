package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadOverrides(t *testing.T) {
	doc := `
buildings:
  - Library
  - Annex
departments:
  - IT
`
	fns, err := LoadOverrides(strings.NewReader(doc), "test.yaml")
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}

	c, err := New(fns...)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"Library", "Annex"}, c.Buildings()); diff != "" {
		t.Fatalf("buildings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"IT"}, c.Departments()); diff != "" {
		t.Fatalf("departments mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides_PartialDocumentKeepsDefaults(t *testing.T) {
	fns, err := LoadOverrides(strings.NewReader("departments:\n  - IT\n"), "test.yaml")
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}

	c, err := New(fns...)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if !c.ContainsBuilding("SAS Hall") {
		t.Fatalf("expected embedded default buildings to survive a partial override")
	}
	if !c.ContainsDepartment("IT") {
		t.Fatalf("expected overridden departments")
	}
}

func TestLoadOverrides_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "empty file", doc: "   \n"},
		{name: "not yaml", doc: "buildings: [unclosed"},
		{name: "blank entry", doc: "buildings:\n  - ''\n"},
		{name: "duplicate entry", doc: "departments:\n  - IT\n  - IT\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadOverrides(strings.NewReader(tc.doc), "test.yaml"); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("buildings:\n  - Depot\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fns, err := LoadOverridesFile(path)
	if err != nil {
		t.Fatalf("load overrides file: %v", err)
	}
	c, err := New(fns...)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if !c.ContainsBuilding("Depot") {
		t.Fatalf("expected Depot from override file")
	}
}

func TestLoadOverridesFile_Missing(t *testing.T) {
	if _, err := LoadOverridesFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
