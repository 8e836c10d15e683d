package util

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// ValidateCVPDF checks that an uploaded CV is a readable PDF with at least
// one page before it is accepted into storage. Text extraction itself is the
// external extractor's job; this only rejects corrupt or empty files early.
func ValidateCVPDF(data []byte) error {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return fmt.Errorf("PDF has no pages")
	}
	return nil
}
