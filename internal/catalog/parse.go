// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/bitforge-eda/bitforge/internal/issue"
)

//go:embed catalog_schema.cue
var catalogSchema []byte

// maxCatalogSize bounds the catalog file size so a corrupted or hostile
// file cannot exhaust memory during parsing.
const maxCatalogSize = 1 << 20 // 1 MiB

// Load reads and parses the catalog file at path. Any failure is an
// internal configuration error: the catalog ships with the distribution
// and is not user-serviceable.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewInternalError("load package catalog", err).
			WithPage(issue.CatalogInvalidId)
	}
	c, err := Parse(data, path)
	if err != nil {
		return nil, issue.NewInternalError("load package catalog", err).
			WithPage(issue.CatalogInvalidId)
	}
	return c, nil
}

// Parse validates data against the embedded schema and decodes it.
// The filename is used only in error messages.
func Parse(data []byte, filename string) (*Catalog, error) {
	if int64(len(data)) > maxCatalogSize {
		return nil, fmt.Errorf("%s: catalog size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxCatalogSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(catalogSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath("#Catalog"))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("catalog schema definition not found: %w", schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, formatCUEError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, filename)
	}

	var c Catalog
	if err := unified.Decode(&c); err != nil {
		return nil, formatCUEError(err, filename)
	}

	if err := checkDuplicates(&c); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	c.index()
	return &c, nil
}

// checkDuplicates rejects catalogs that declare the same package twice.
// Duplicate names would make the name index silently drop a definition.
func checkDuplicates(c *Catalog) error {
	seen := make(map[string]struct{}, len(c.Packages))
	for _, p := range c.Packages {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("package %q declared more than once", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// formatCUEError renders a CUE error as "<file>: <cue-path>: <message>"
// lines so the offending field is identifiable without reading CUE output.
func formatCUEError(err error, filename string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var lines []string
	for _, e := range cueErrs {
		path := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		if path != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", path, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}
