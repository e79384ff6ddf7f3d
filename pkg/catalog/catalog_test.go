package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	wantBuildings := []string{"SAS Hall", "Thomas Hall", "Ricks Hall"}
	if diff := cmp.Diff(wantBuildings, c.Buildings()); diff != "" {
		t.Fatalf("buildings mismatch (-want +got):\n%s", diff)
	}

	wantDepartments := []string{"Math", "Biology", "Chemistry", "Physics"}
	if diff := cmp.Diff(wantDepartments, c.Departments()); diff != "" {
		t.Fatalf("departments mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_Overrides(t *testing.T) {
	c, err := New(
		WithBuildings([]string{"Library", "Annex"}),
		WithDepartments([]string{"IT"}),
	)
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

func TestNew_EmptyOverrideKeepsDefaults(t *testing.T) {
	c, err := New(WithBuildings(nil))
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if len(c.Buildings()) == 0 {
		t.Fatalf("expected default buildings, got empty list")
	}
}

func TestNew_DuplicateRejected(t *testing.T) {
	_, err := New(WithBuildings([]string{"Library", "Library"}))
	if err == nil {
		t.Fatalf("expected duplicate building error")
	}
}

func TestContains(t *testing.T) {
	c, err := New(
		WithBuildings([]string{"Library"}),
		WithDepartments([]string{"IT"}),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if !c.ContainsBuilding("Library") {
		t.Fatalf("expected Library to be a valid building")
	}
	if c.ContainsBuilding("library") {
		t.Fatalf("membership must be exact match")
	}
	if !c.ContainsDepartment("IT") {
		t.Fatalf("expected IT to be a valid department")
	}
	if c.ContainsDepartment("HR") {
		t.Fatalf("HR is not configured")
	}
}

func TestLoadList(t *testing.T) {
	input := "# comment\nLibrary\n\nAnnex\nLibrary\n  Depot  \n"
	got, err := LoadList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load list: %v", err)
	}
	want := []string{"Library", "Annex", "Depot"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadList_NilReader(t *testing.T) {
	if _, err := LoadList(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
