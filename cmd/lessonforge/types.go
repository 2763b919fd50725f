package main

import (
	"fmt"

	"github.com/jbetz/lessonforge"
)

// Run executes the types command.
func (c *TypesCmd) Run(deps *Dependencies) error {
	recommended := lessonforge.RecommendedTypes(c.Subject, c.Grade)

	fmt.Fprintf(deps.Stdout, "Recommended for %s, %s:\n", c.Subject, c.Grade)
	for _, typ := range recommended {
		fmt.Fprintf(deps.Stdout, "  %s\n", typ)
	}

	fmt.Fprintln(deps.Stdout, "\nAll types:")
	for _, typ := range lessonforge.Types() {
		fmt.Fprintf(deps.Stdout, "  %s\n", typ)
	}

	return nil
}
