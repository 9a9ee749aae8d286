// Package render: PDF renderer.
// Converts Markdown into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks, and lists.
// Images are not rendered.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/jung-kurt/gofpdf"
)

var (
	numberedItemRegex = regexp.MustCompile(`^\d+\.\s`)
	italicRegex       = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	imageRegex        = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	plainLinkRegex    = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes. The core fonts only cover
// cp1252, so text is translated from UTF-8 first.
func (r *PDFRenderer) Render(markdown string, meta core.ArticleMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s / %s | Updated: %s", meta.Category, meta.Section, meta.UpdatedAt)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(line, "#") {
			level := len(line) - len(strings.TrimLeft(line, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(line, "# "))), level)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		switch {
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedItemRegex.MatchString(trimmed):
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			if text := cleanInlineMarkdown(line); text != "" {
				pdf.MultiCell(0, 5, tr(text), "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = imageRegex.ReplaceAllString(text, "")
	text = plainLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
