package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxVisibleTextChars bounds the prompt size for whole-page extraction.
const maxVisibleTextChars = 20000

// VisibleText returns the page's human-readable text with script, style and
// whitespace noise removed. Used only when no structured block exists, so
// mutating the document is fine.
func VisibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, template").Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	text := strings.Join(strings.Fields(sel.Text()), " ")
	if len(text) > maxVisibleTextChars {
		text = text[:maxVisibleTextChars]
	}
	return text
}
