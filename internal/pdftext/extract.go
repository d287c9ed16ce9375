package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls plain text out of a stored upload so it can be fed to
// the LLM.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Extractor reads the text layer of a PDF file.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (Extractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return b.String(), nil
}
