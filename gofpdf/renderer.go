// Package gofpdf renders worksheets and answer keys as printable PDFs.
package gofpdf

import (
	"bytes"
	"fmt"

	"github.com/jbetz/lessonforge"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements lessonforge.Renderer at compile time.
var _ lessonforge.Renderer = (*Renderer)(nil)

// Renderer produces A4 portrait PDFs with a basic Helvetica layout. It is
// intentionally simple: one pass down the page, no columns or pagination
// logic beyond gofpdf's automatic page breaks.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// doc bundles the pdf handle with the codepage translator so the layout
// helpers stay readable.
type doc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDoc() *doc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator maps UTF-8 input (×, ÷, •).
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()
	return &doc{pdf: pdf, tr: tr}
}

func (d *doc) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) subheading(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) line(text string) {
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", false)
}

func (d *doc) italic(text string) {
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "L", false)
	d.pdf.SetFont("Helvetica", "", 11)
}

func (d *doc) gap() {
	d.pdf.Ln(4)
}

// responseLines draws ruled lines for a written answer.
func (d *doc) responseLines(n int) {
	for i := 0; i < n; i++ {
		d.pdf.Ln(7)
		x, y := d.pdf.GetXY()
		d.pdf.Line(x, y, 190, y)
	}
	d.pdf.Ln(4)
}

func (d *doc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderWorksheet lays out the worksheet for printing.
func (r *Renderer) RenderWorksheet(ws *lessonforge.Worksheet) ([]byte, error) {
	d := newDoc()

	d.heading(ws.Title)
	d.line(fmt.Sprintf("Name: %s    Grade: %s    Date: %s", ws.ChildName, ws.Grade, ws.Date))
	d.italic(ws.Instructions)
	d.gap()

	switch content := ws.Content.(type) {
	case lessonforge.VocabularyContent:
		for i, item := range content.Items {
			d.subheading(fmt.Sprintf("%d. %s", i+1, item.Word))
			d.line("Definition:")
			d.responseLines(2)
			d.italic("Example: " + item.ExampleSentence)
			d.gap()
		}

	case lessonforge.MatchingContent:
		d.subheading("Column A")
		for i, left := range content.LeftItems {
			d.line(fmt.Sprintf("%d. %s", i+1, left))
		}
		d.gap()
		d.subheading("Column B")
		for i, right := range content.RightItems {
			d.line(fmt.Sprintf("%c. %s", 'A'+i, right))
		}

	case lessonforge.FillInBlankContent:
		d.subheading("Word Bank")
		bank := ""
		for i, word := range content.WordBank {
			if i > 0 {
				bank += "    "
			}
			bank += word
		}
		d.line(bank)
		d.gap()
		for i, item := range content.Items {
			d.line(fmt.Sprintf("%d. %s", i+1, item.Sentence))
			d.gap()
		}

	case lessonforge.MultipleChoiceContent:
		for i, item := range content.Items {
			d.line(fmt.Sprintf("%d. %s", i+1, item.Question))
			for _, opt := range item.Options {
				d.line(fmt.Sprintf("    %s) %s", opt.Letter, opt.Text))
			}
			d.gap()
		}

	case lessonforge.ShortAnswerContent:
		for _, item := range content.Items {
			d.line(fmt.Sprintf("%d. %s", item.QuestionNumber, item.Question))
			d.responseLines(item.ResponseLines)
		}

	case lessonforge.DrawingContent:
		for _, item := range content.Items {
			d.line(item.Prompt)
			d.drawingBox(item.DrawingAreaWidth, item.DrawingAreaHeight)
			d.gap()
		}
		d.subheading("Suggestions")
		for _, s := range content.Suggestions {
			d.line("- " + s)
		}

	case lessonforge.LabelingContent:
		d.subheading(content.DiagramTitle)
		d.italic(content.DiagramDescription)
		d.diagram(content.DiagramPoints)
		d.subheading("Labels")
		for _, label := range content.Labels {
			d.line("- " + label)
		}

	case lessonforge.SequencingContent:
		d.line("Number the events in the correct order:")
		d.gap()
		for _, event := range content.Events {
			d.line("____  " + event)
			d.gap()
		}

	case lessonforge.MathPracticeContent:
		for i, problem := range content.Problems {
			d.line(fmt.Sprintf("%d. %s", i+1, problem))
			d.responseLines(1)
		}

	case lessonforge.GenericContent:
		for _, item := range content.Items {
			d.line(item)
			d.gap()
		}
	}

	if ws.Source != "" {
		d.gap()
		d.italic("Source: " + ws.Source)
	}

	return d.bytes()
}

// drawingBox draws an empty rectangle scaled from the worksheet's pixel
// dimensions to page millimeters.
func (d *doc) drawingBox(widthPx, heightPx int) {
	const scale = 0.4
	w := float64(widthPx) * scale
	h := float64(heightPx) * scale
	x, y := d.pdf.GetXY()
	d.pdf.Rect(x, y+2, w, h, "D")
	d.pdf.SetY(y + h + 6)
}

// diagram draws the labeling points as numbered circles, scaled from the
// 300x300 layout space.
func (d *doc) diagram(points []lessonforge.DiagramPoint) {
	const scale = 0.35
	x0, y0 := d.pdf.GetXY()
	y0 += 4

	d.pdf.Rect(x0, y0, 300*scale, 300*scale, "D")
	for i, p := range points {
		cx := x0 + p.X*scale
		cy := y0 + p.Y*scale
		d.pdf.Circle(cx, cy, 2.5, "D")
		d.pdf.SetXY(cx-2, cy-2)
		d.pdf.SetFont("Helvetica", "", 8)
		d.pdf.CellFormat(4, 4, fmt.Sprintf("%d", i+1), "", 0, "C", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 11)
	}

	d.pdf.SetXY(x0, y0+300*scale+6)
}

// RenderAnswerKey lays out the solutions-only view.
func (r *Renderer) RenderAnswerKey(key *lessonforge.AnswerKey) ([]byte, error) {
	d := newDoc()

	d.heading(fmt.Sprintf("Answer Key (%s)", key.Type))
	d.gap()

	if key.Note != "" {
		d.italic(key.Note)
	}

	for i, pair := range key.Pairs {
		d.line(fmt.Sprintf("%d. %s -> %s", i+1, pair.Left, pair.Right))
	}

	for i, answer := range key.Answers {
		d.line(fmt.Sprintf("%d. %s", i+1, answer.Answer))
		d.italic(answer.Sentence)
		d.gap()
	}

	for i, choice := range key.Choices {
		d.line(fmt.Sprintf("%d. %s", i+1, choice.Question))
		d.line(fmt.Sprintf("    Answer: %s", choice.CorrectOption))
		d.gap()
	}

	for i, sample := range key.SampleAnswers {
		d.line(fmt.Sprintf("%d. %s", i+1, sample.Question))
		d.italic("Sample: " + sample.SampleAnswer)
		d.gap()
	}

	for i, label := range key.Labels {
		d.line(fmt.Sprintf("%d. %s", i+1, label.CorrectLabel))
		d.italic(label.Description)
		d.gap()
	}

	for _, event := range key.CorrectOrder {
		d.line(fmt.Sprintf("%d. %s", event.Position, event.Event))
	}

	for i, solved := range key.Solutions {
		d.line(fmt.Sprintf("%d. %s", i+1, solved.Solution))
	}

	return d.bytes()
}
