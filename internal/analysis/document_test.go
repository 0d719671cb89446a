package analysis

import (
	"reflect"
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"GİRİŞ", "GIRIS"},
		{"giriş", "GIRIS"},
		{"ÖZET", "OZET"},
		{"Gereç ve Yöntem", "GEREC VE YONTEM"},
		{"KAYNAKÇA", "KAYNAKCA"},
		{"ABSTRACT", "ABSTRACT"},
	}

	for _, tt := range tests {
		if got := NormalizeHeading(tt.input); got != tt.want {
			t.Errorf("NormalizeHeading(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectSectionsTurkishFolding(t *testing.T) {
	pages := PagesFromTexts([]string{"GİRİŞ"})

	sections := DetectSections(pages)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].ID != "giris" {
		t.Errorf("expected section id 'giris', got %q", sections[0].ID)
	}
	if sections[0].PageNumber != 1 {
		t.Errorf("expected page 1, got %d", sections[0].PageNumber)
	}

	// ASCII-folded headings in the extracted text must match too.
	folded := DetectSections(PagesFromTexts([]string{"GIRIS"}))
	if len(folded) != 1 || folded[0].ID != "giris" {
		t.Errorf("expected folded heading to match candidate 'giris', got %+v", folded)
	}
}

func TestDetectSectionsFullLineMatchOnly(t *testing.T) {
	// A heading embedded in a sentence is not a section heading.
	pages := PagesFromTexts([]string{"Bu bölümde GİRİŞ kısmı anlatılır."})

	if sections := DetectSections(pages); len(sections) != 0 {
		t.Errorf("expected no sections, got %+v", sections)
	}
}

func TestDetectSectionsOrder(t *testing.T) {
	pages := PagesFromTexts([]string{
		"ÖZET\nsome text",
		"GİRİŞ\nmore text",
		"YÖNTEM",
		"BULGULAR\n\nTARTIŞMA",
		"SONUÇ",
		"KAYNAKÇA",
	})

	sections := DetectSections(pages)
	wantIDs := []string{"ozet-tr", "giris", "yontem", "bulgular", "tartisma", "sonuc", "kaynakca"}

	if len(sections) != len(wantIDs) {
		t.Fatalf("expected %d sections, got %d: %+v", len(wantIDs), len(sections), sections)
	}
	for i, want := range wantIDs {
		if sections[i].ID != want {
			t.Errorf("section[%d].ID = %q, want %q", i, sections[i].ID, want)
		}
	}
}

func TestDetectSectionsIdempotent(t *testing.T) {
	pages := PagesFromTexts([]string{"ÖZET", "GİRİŞ\ntext", "KAYNAKÇA"})

	first := DetectSections(pages)
	second := DetectSections(pages)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("detection not idempotent: %+v vs %+v", first, second)
	}
}

func TestDetectSectionsNoHeadings(t *testing.T) {
	pages := PagesFromTexts([]string{"just some prose", "more prose"})

	if sections := DetectSections(pages); len(sections) != 0 {
		t.Errorf("expected no sections, got %+v", sections)
	}
}

func TestExtractReferencesAbsent(t *testing.T) {
	pages := PagesFromTexts([]string{"GİRİŞ", "prose"})
	sections := DetectSections(pages)

	refs := ExtractReferences(pages, sections)
	if refs.Found() {
		t.Error("expected absent references block")
	}
	if len(refs.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(refs.Entries))
	}
	if refs.PageStart != 0 || refs.PageEnd != 0 {
		t.Errorf("expected zero page span, got %d-%d", refs.PageStart, refs.PageEnd)
	}
}

func TestExtractReferencesEntries(t *testing.T) {
	pages := PagesFromTexts([]string{
		"GİRİŞ\nprose",
		"KAYNAKÇA\nSmith, J. (2020). Title.\nNot a reference line\nYılmaz A. Çalışma. [12]",
		"Doe, B. (1999). Older work.",
	})
	sections := DetectSections(pages)

	refs := ExtractReferences(pages, sections)
	if !refs.Found() {
		t.Fatal("expected references block to be found")
	}
	if refs.PageStart != 2 {
		t.Errorf("expected pageStart 2, got %d", refs.PageStart)
	}
	if refs.PageEnd != 3 {
		t.Errorf("expected pageEnd 3, got %d", refs.PageEnd)
	}

	wantEntries := []string{
		"Smith, J. (2020). Title.",
		"Yılmaz A. Çalışma. [12]",
		"Doe, B. (1999). Older work.",
	}
	if !reflect.DeepEqual(refs.Entries, wantEntries) {
		t.Errorf("entries = %+v, want %+v", refs.Entries, wantEntries)
	}
}

func TestReferenceEntryPattern(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Smith, J. (2020). Title.", true},
		{"Doe, B. (1899). Too old.", false},
		{"Anon. Untitled. [7]", true},
		{"KAYNAKÇA", false},
		{"A sentence mentioning 2021 mid-line counts.", true},
		{"[1234]", false},
	}

	for _, tt := range tests {
		if got := referenceEntryPattern.MatchString(tt.line); got != tt.want {
			t.Errorf("referenceEntryPattern.MatchString(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestBuildDocumentEmpty(t *testing.T) {
	doc := BuildDocument(nil)

	if doc.PageCount != 0 {
		t.Errorf("expected pageCount 0, got %d", doc.PageCount)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected no sections, got %+v", doc.Sections)
	}
	if doc.References.Found() {
		t.Error("expected absent references block")
	}
	if doc.Meta.NumPages != 0 {
		t.Errorf("expected numPages 0, got %d", doc.Meta.NumPages)
	}
}

func TestBuildDocument(t *testing.T) {
	pages := PagesFromTexts([]string{"ÖZET", "GİRİŞ", "KAYNAKÇA\nSmith, J. (2020). Title."})

	doc := BuildDocument(pages)
	if doc.PageCount != 3 {
		t.Errorf("expected pageCount 3, got %d", doc.PageCount)
	}
	if len(doc.Sections) != 3 {
		t.Errorf("expected 3 sections, got %+v", doc.Sections)
	}
	if !doc.References.Found() {
		t.Error("expected references block to be found")
	}
	if len(doc.References.Entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(doc.References.Entries))
	}
}

func TestFullText(t *testing.T) {
	doc := BuildDocument(PagesFromTexts([]string{"one", "two"}))

	if got := doc.FullText(); got != "one\ntwo" {
		t.Errorf("FullText() = %q", got)
	}
}
