package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/gofpdf"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	typ := lessonforge.Type(c.Type)
	if !typ.Valid() {
		return lessonforge.Errorf(lessonforge.EINVALID, "unknown worksheet type %q", c.Type)
	}

	resource := &lessonforge.Resource{
		Title:   c.Title,
		Subject: c.Subject,
		Grade:   c.Grade,
		URL:     c.URL,
	}

	if c.URL != "" {
		extraction, err := deps.Pipeline.Extract(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lessonforge.ErrorMessage(err))
			return err
		}
		resource.ContentText = extraction.ContentText
		resource.Source = extraction.Source
	}

	ws := lessonforge.Generate(resource, c.Child, c.Grade, typ)

	var key *lessonforge.AnswerKey
	if c.AnswerKey {
		key = lessonforge.GenerateAnswerKey(resource, typ)
	}

	if c.Out != "" {
		return c.writePDFs(deps, ws, key)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ws); err != nil {
		return err
	}
	if key != nil {
		return enc.Encode(key)
	}
	return nil
}

// writePDFs renders the worksheet, and optionally the answer key, next to
// the requested output path.
func (c *GenerateCmd) writePDFs(deps *Dependencies, ws *lessonforge.Worksheet, key *lessonforge.AnswerKey) error {
	renderer := gofpdf.NewRenderer()

	out, err := renderer.RenderWorksheet(ws)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, out, 0644); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "wrote %s\n", c.Out)

	if key == nil {
		return nil
	}

	keyOut, err := renderer.RenderAnswerKey(key)
	if err != nil {
		return err
	}
	keyPath := answerKeyPath(c.Out)
	if err := os.WriteFile(keyPath, keyOut, 0644); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "wrote %s\n", keyPath)
	return nil
}

// answerKeyPath derives the answer key filename from the worksheet path.
func answerKeyPath(out string) string {
	if strings.HasSuffix(out, ".pdf") {
		return strings.TrimSuffix(out, ".pdf") + "-key.pdf"
	}
	return out + "-key.pdf"
}
