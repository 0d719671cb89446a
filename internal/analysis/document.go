package analysis

import (
	"regexp"
	"strings"
)

// PageText holds the extracted plain text of a single page.
type PageText struct {
	PageNumber int    `json:"pageNumber"`
	Text       string `json:"text"`
}

// Section records a detected heading and the page it first appears on.
type Section struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PageNumber int    `json:"pageNumber"`
}

// ReferencesBlock is the tail of the document presumed to be the
// bibliography. PageStart == 0 marks the absent state (no references-like
// heading was detected), which is valid, not an error.
type ReferencesBlock struct {
	Entries   []string `json:"entries"`
	RawText   string   `json:"rawText"`
	PageStart int      `json:"pageStart,omitempty"`
	PageEnd   int      `json:"pageEnd,omitempty"`
}

// Found reports whether a references section was detected.
func (r ReferencesBlock) Found() bool {
	return r.PageStart > 0
}

// DocumentMeta carries extraction metadata.
type DocumentMeta struct {
	NumPages int `json:"numPages"`
}

// ParsedDocument is the read-only document model evaluators operate on.
// Each request builds its own instance; nothing here is shared or mutated
// after construction.
type ParsedDocument struct {
	PageCount  int             `json:"pageCount"`
	Pages      []PageText      `json:"pages"`
	Sections   []Section       `json:"sections"`
	References ReferencesBlock `json:"references"`
	Meta       DocumentMeta    `json:"meta"`
}

// FullText concatenates all page texts with newlines.
func (d *ParsedDocument) FullText() string {
	parts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// sectionCandidate is one known section kind with its acceptable headings.
type sectionCandidate struct {
	id     string
	titles []string
}

// sectionCandidates is the fixed ordered list of known thesis sections.
// Within a page, candidate order decides detection order.
var sectionCandidates = []sectionCandidate{
	{id: "ozet-tr", titles: []string{"ÖZET", "TÜRKÇE ÖZET"}},
	{id: "ozet-en", titles: []string{"ABSTRACT", "SUMMARY"}},
	{id: "giris", titles: []string{"GİRİŞ"}},
	{id: "literatur", titles: []string{"LİTERATÜR TARAMASI", "GENEL BİLGİLER", "KURAMSAL ÇERÇEVE"}},
	{id: "yontem", titles: []string{"YÖNTEM", "GEREÇ VE YÖNTEM", "GEREÇ VE YÖNTEMLER"}},
	{id: "bulgular", titles: []string{"BULGULAR", "SONUÇLAR"}},
	{id: "tartisma", titles: []string{"TARTIŞMA", "TARTIŞMA VE SONUÇ", "TARTIŞMA VE YORUM"}},
	{id: "sonuc", titles: []string{"SONUÇ", "GENEL SONUÇLAR", "SONUÇ VE ÖNERİLER"}},
	{id: "kaynakca", titles: []string{"KAYNAKÇA", "REFERENCES"}},
}

// turkishFolder maps the uppercase Turkish letters to their closest Latin
// base letters. Extracted thesis text mixes both forms freely; without this
// folding, real headings like GİRİŞ are missed.
var turkishFolder = strings.NewReplacer(
	"İ", "I",
	"Ğ", "G",
	"Ü", "U",
	"Ş", "S",
	"Ö", "O",
	"Ç", "C",
)

// NormalizeHeading uppercases a line and folds Turkish-specific letters.
// Only the six documented letters are folded; other diacritics pass through.
func NormalizeHeading(s string) string {
	return turkishFolder.Replace(strings.ToUpper(s))
}

// referenceEntryPattern qualifies a line as a bibliography entry candidate:
// it carries a plausible 4-digit year (1900-2099) or ends with a bracketed
// numeric tag like [12].
var referenceEntryPattern = regexp.MustCompile(`(19|20)[0-9]{2}|\[[0-9]{1,3}\]$`)

// BuildDocument turns raw per-page texts into the full document model.
func BuildDocument(pages []PageText) *ParsedDocument {
	sections := DetectSections(pages)
	return &ParsedDocument{
		PageCount:  len(pages),
		Pages:      pages,
		Sections:   sections,
		References: ExtractReferences(pages, sections),
		Meta:       DocumentMeta{NumPages: len(pages)},
	}
}

// PagesFromTexts wraps raw page strings into ordered PageText values.
func PagesFromTexts(texts []string) []PageText {
	pages := make([]PageText, len(texts))
	for i, t := range texts {
		pages[i] = PageText{PageNumber: i + 1, Text: t}
	}
	return pages
}

// DetectSections scans every page for known section headings. A heading
// matches when a trimmed line, after normalization, equals one of the
// candidate titles for the full line. The first matching title per candidate
// per page wins; a page may still match other candidates. No match anywhere
// yields an empty slice.
func DetectSections(pages []PageText) []Section {
	var sections []Section

	for _, page := range pages {
		lines := strings.Split(page.Text, "\n")
		normalized := make([]string, len(lines))
		for i, line := range lines {
			normalized[i] = NormalizeHeading(strings.TrimSpace(line))
		}

		for _, candidate := range sectionCandidates {
			for _, title := range candidate.titles {
				want := NormalizeHeading(title)
				matched := false
				for _, line := range normalized {
					if line == want {
						matched = true
						break
					}
				}
				if matched {
					sections = append(sections, Section{
						ID:         candidate.id,
						Title:      title,
						PageNumber: page.PageNumber,
					})
					break
				}
			}
		}
	}

	return sections
}

// ExtractReferences locates the references section and collects candidate
// bibliography entry lines from that page to the end of the document.
func ExtractReferences(pages []PageText, sections []Section) ReferencesBlock {
	var refSection *Section
	for i := range sections {
		s := &sections[i]
		if s.ID == "kaynakca" || strings.Contains(strings.ToUpper(s.Title), "KAYNAKÇA") {
			refSection = s
			break
		}
	}

	if refSection == nil {
		return ReferencesBlock{Entries: []string{}}
	}

	start := refSection.PageNumber - 1
	if start < 0 {
		start = 0
	}
	if start > len(pages) {
		start = len(pages)
	}

	parts := make([]string, 0, len(pages)-start)
	for _, p := range pages[start:] {
		parts = append(parts, p.Text)
	}
	rawText := strings.Join(parts, "\n\n")

	entries := []string{}
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if referenceEntryPattern.MatchString(line) {
			entries = append(entries, line)
		}
	}

	return ReferencesBlock{
		Entries:   entries,
		RawText:   rawText,
		PageStart: refSection.PageNumber,
		PageEnd:   len(pages),
	}
}
