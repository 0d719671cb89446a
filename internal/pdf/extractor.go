package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tezlab/tezcheck/internal/analysis"
)

// Extractor turns PDF bytes into an ordered sequence of per-page plain-text
// strings. Pages whose text cannot be extracted yield empty strings rather
// than errors; the rule engine tolerates them.
type Extractor struct {
	maxFileSize int64
	maxTextSize int
}

// NewExtractor creates an extractor with the given file size limit.
func NewExtractor(maxFileSize int64) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractFile extracts per-page text from a PDF file on disk.
func (e *Extractor) ExtractFile(path string) ([]analysis.PageText, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() > e.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return e.extractPages(reader), nil
}

// ExtractData extracts per-page text from in-memory PDF bytes.
func (e *Extractor) ExtractData(data []byte) ([]analysis.PageText, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data cannot be empty")
	}
	if int64(len(data)) > e.maxFileSize {
		return nil, fmt.Errorf("data too large: %d bytes (max: %d bytes)",
			len(data), e.maxFileSize)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return e.extractPages(reader), nil
}

// extractPages walks every page, collecting plain text. The returned slice
// always has reader.NumPage() entries in physical page order.
func (e *Extractor) extractPages(reader *pdf.Reader) []analysis.PageText {
	numPages := reader.NumPage()
	pages := make([]analysis.PageText, 0, numPages)

	totalLength := 0
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		text := ""
		if totalLength < e.maxTextSize {
			text = e.extractPageText(reader, pageNum)
			if totalLength+len(text) > e.maxTextSize {
				text = text[:e.maxTextSize-totalLength]
			}
			totalLength += len(text)
		}
		pages = append(pages, analysis.PageText{
			PageNumber: pageNum,
			Text:       strings.TrimSpace(text),
		})
	}

	return pages
}

// extractPageText reads one page's plain text, recovering from parser
// panics on malformed content streams.
func (e *Extractor) extractPageText(reader *pdf.Reader, pageNum int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
