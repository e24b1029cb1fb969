// Package extraction turns source documents (PDF, HTML, plain text, URLs)
// into the raw text the analysis engine consumes. The engine makes no
// assumptions about the result beyond it being text; extracted pages are
// separated with a visible page-break marker.
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// PageBreakMarker separates extracted PDF pages in the combined text.
const PageBreakMarker = "───── Page Break ─────"

// Error represents a failure extracting text from a source document.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FromPDF extracts the text of every page of a PDF file, joining non-empty
// pages with the page-break marker.
func FromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Source: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"+PageBreakMarker+"\n\n"), nil
}

// FromHTML parses HTML and returns the main body text. Noise elements are
// removed first; if none of the content selectors match, the body is used.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &Error{Source: "html", Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// contentSelectors returns the selectors tried, in order, to locate the main
// content of a page.
func contentSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// FromFile extracts text from a local file, dispatching on its extension.
// PDF and HTML files are parsed; anything else is read as plain text.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FromPDF(path)
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &Error{Source: path, Message: "failed to read HTML file", Cause: err}
		}
		return FromHTML(string(data))
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &Error{Source: path, Message: "failed to read file", Cause: err}
		}
		return string(data), nil
	}
}

// cleanWhitespace trims every line and drops blank lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
