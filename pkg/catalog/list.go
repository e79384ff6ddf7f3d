package catalog

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/buildings.txt data/departments.txt
var dataFS embed.FS

const (
	defaultBuildingsPath   = "data/buildings.txt"
	defaultDepartmentsPath = "data/departments.txt"
)

var (
	defaultOnce        sync.Once
	defaultBuildings   []string
	defaultDepartments []string
	defaultErr         error
)

// DefaultBuildings returns a copy of the embedded building list.
func DefaultBuildings() ([]string, error) {
	loadDefaults()
	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultBuildings...), nil
}

// DefaultDepartments returns a copy of the embedded department list.
func DefaultDepartments() ([]string, error) {
	loadDefaults()
	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultDepartments...), nil
}

func loadDefaults() {
	defaultOnce.Do(func() {
		defaultBuildings, defaultErr = loadEmbedded(defaultBuildingsPath)
		if defaultErr != nil {
			return
		}
		defaultDepartments, defaultErr = loadEmbedded(defaultDepartmentsPath)
	})
}

func loadEmbedded(path string) ([]string, error) {
	f, err := dataFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadList(f)
}

// LoadList reads option entries from r, one per line. Blank lines and lines
// starting with # are skipped; duplicates are dropped while the first
// occurrence keeps its position. Declaration order is preserved so dropdowns
// render the way the list was written.
func LoadList(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}

	scanner := bufio.NewScanner(r)
	entries := make([]string, 0, 16)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
