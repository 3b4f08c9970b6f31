// Package extractor is the default implementation of the document
// text-extraction boundary: given raw PDF bytes, produce linearized plain
// text per page. Extraction is best-effort, not layout-aware; a quality
// gate keeps garbage from custom-font encodings out of the statement
// parser.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF from memory and returns the text content of
// each page. Row-based extraction is tried first (best layout
// preservation), then the plain-text paths; the first result that passes
// the readability gate wins.
func ExtractText(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByRow(r, numPages)
	if IsReadableText(pages) {
		return pages, nil
	}

	pages = extractByPagePlainText(r, numPages)
	if IsReadableText(pages) {
		return pages, nil
	}

	if text := extractWholeDocument(r); IsReadableText([]string{text}) {
		return []string{text}, nil
	}

	return nil, fmt.Errorf("no readable text could be extracted: the PDF may be image-based/scanned or use custom font encodings")
}

// extractByRow reconstructs each page from its text rows.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPagePlainText uses the per-page plain-text path with the
// page's font map.
func extractByPagePlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// extractWholeDocument is the whole-document extraction path, used as a
// last resort since it loses page boundaries.
func extractWholeDocument(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// IsReadableText reports whether extracted pages look like genuine
// statement text: enough characters, a high readable-ASCII ratio, and at
// least one word that financial documents reliably contain.
func IsReadableText(pages []string) bool {
	total := 0
	for _, p := range pages {
		total += len(strings.TrimSpace(p))
	}
	if total <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsCommonWords(pages)
}

// textQuality returns the ratio of basic readable ASCII characters to
// total characters. A strict ASCII check is used on purpose:
// unicode.IsLetter matches the accented garbage produced by
// identity-encoded fonts.
func textQuality(pages []string) float64 {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"£$€%&@#!?+=*`, r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// commonWords appear in virtually all bank statements and tax documents.
// Extracted text containing none of them is likely garbage.
var commonWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "invoice",
	"money", "paid", "opening", "closing", "transfer", "tax",
	"number", "page", "period",
}

func containsCommonWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}
