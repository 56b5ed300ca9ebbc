package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor/pkg/registry"
)

// ListRules prints the built-in rules a problem document may reference.
func ListRules(w io.Writer) error {
	c := registry.Default().Catalog()
	for _, section := range []struct {
		kind  string
		names []string
	}{
		{"grow", c.Grow},
		{"cut", c.Cut},
		{"end", c.End},
	} {
		if _, err := fmt.Fprintf(w, "%-5s %s\n", section.kind, strings.Join(section.names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// Validate loads and compiles the problem without evaluating it.
func Validate(o Options) error {
	p, err := loadProblem(o)
	if err != nil {
		return err
	}
	_, err = p.Compile(registry.Default(), compileOptions(o, createLogger(o)))
	return err
}
