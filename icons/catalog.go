// Package icons renders Material Design vector icons as frozen raster images
// or as theme-reactive fyne resources. The icon tables are embedded in the
// binary and loaded once per process.
package icons

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

//go:embed assets/material_icons.json
var outlineData []byte

//go:embed assets/material_icons_filled.json
var filledData []byte

// ErrNotFound is returned when a name is absent from the table consulted.
var ErrNotFound = errors.New("icon not found")

type catalogTables struct {
	outline map[string]string
	filled  map[string]string
}

var (
	catalogOnce sync.Once
	catalog     catalogTables
	catalogErr  error
)

// loadCatalog decodes the embedded tables exactly once. A malformed table is
// a fatal initialization error: it panics at first use and again on every
// later use, so the catalog never degrades to an empty table.
func loadCatalog() catalogTables {
	catalogOnce.Do(func() {
		if err := json.Unmarshal(outlineData, &catalog.outline); err != nil {
			catalogErr = fmt.Errorf("outline icon table: %w", err)
			return
		}
		if err := json.Unmarshal(filledData, &catalog.filled); err != nil {
			catalogErr = fmt.Errorf("filled icon table: %w", err)
		}
	})
	if catalogErr != nil {
		panic(catalogErr)
	}
	return catalog
}

// lookup resolves an icon name to its raw markup. A filled request falls back
// to the outline table when the filled set has no entry of that name.
func lookup(name string, filled bool) (string, error) {
	tables := loadCatalog()
	if filled {
		if src, ok := tables.filled[name]; ok {
			return src, nil
		}
	}
	src, ok := tables.outline[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return src, nil
}

// Names returns the sorted names of the outline table, which is the full set
// of renderable icons.
func Names() []string {
	tables := loadCatalog()
	names := make([]string, 0, len(tables.outline))
	for name := range tables.outline {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
