package main

import (
	"encoding/json"
	"fmt"

	"github.com/jbetz/lessonforge"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Pipeline.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lessonforge.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(extraction)
	}

	fmt.Fprintf(deps.Stdout, "Source: %s\n\n%s\n", extraction.Source, extraction.ContentText)
	return nil
}
