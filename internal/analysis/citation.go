package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// surnamePattern captures the leading author field of a bibliography line,
// up to the first comma.
var surnamePattern = regexp.MustCompile(`^([A-ZÇĞİÖŞÜ][^,]+)`)

// evaluateCitationRule dispatches the three fixed citation rule identities.
func evaluateCitationRule(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	switch rule.ID {
	case "citations-intext-author-year":
		return evaluateAuthorYearCitations(rule, doc)
	case "citations-intext-numeric":
		return evaluateNumericCitations(rule, doc)
	case "citations-ref-section-matching":
		return evaluateReferenceMatching(rule, doc)
	default:
		return StatusWarning, "Bu kaynakça/atıf kuralı için özel bir değerlendirme tanımlanmadı."
	}
}

// countPatternMatches sums non-overlapping matches of every configured
// pattern across the full document text. Invalid patterns are skipped, as
// they are catalog data, not user input.
func countPatternMatches(patterns []string, fullText string) int {
	total := 0
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		total += len(re.FindAllStringIndex(fullText, -1))
	}
	return total
}

func evaluateAuthorYearCitations(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	minMatches := rule.Criteria.MinMatches
	if minMatches < 1 {
		minMatches = 1
	}

	total := countPatternMatches(rule.Criteria.Patterns, doc.FullText())
	if total >= minMatches {
		return StatusPassed, fmt.Sprintf(
			"Metin içinde yaklaşık %d adet yazar-yıl biçimli atıf bulundu.", total)
	}

	return StatusWarning,
		"Metin içinde çok az veya hiç yazar-yıl biçimli atıf bulunamadı. Atıf biçimi kılavuza tam uymayabilir."
}

// evaluateNumericCitations only reports presence or absence: numbered
// citations are one of several acceptable styles, so the verdict is always
// informational.
func evaluateNumericCitations(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	minMatches := rule.Criteria.MinMatches
	if minMatches < 1 {
		minMatches = 1
	}

	total := countPatternMatches(rule.Criteria.Patterns, doc.FullText())
	if total >= minMatches {
		return StatusInfo, fmt.Sprintf(
			"Metin içinde yaklaşık %d adet numaralı atıf deseni bulundu.", total)
	}

	return StatusInfo, "Numaralı atıf desenine çok az rastlandı veya hiç rastlanmadı."
}

func evaluateReferenceMatching(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	minCount := rule.Criteria.MinReferenceCount
	if minCount < 1 {
		minCount = 5
	}

	entries := doc.References.Entries
	if len(entries) < minCount {
		return StatusWarning,
			"Kaynakça bölümünden yeterli sayıda referans tespit edilemedi; eşleşme kontrolü sınırlı yapılabildi."
	}

	surnames := extractSurnames(entries)
	if len(surnames) == 0 {
		return StatusWarning,
			"Kaynakça satırlarından yazar soyadı çıkarılamadı; eşleşme kontrolü yapılamadı."
	}

	lowerText := strings.ToLower(doc.FullText())
	matched := 0
	for _, surname := range surnames {
		if strings.Contains(lowerText, strings.ToLower(surname)) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(surnames))

	minRatio := rule.Criteria.MinMatchRatio
	if minRatio <= 0 {
		minRatio = 0.4
	}

	if ratio >= minRatio {
		return StatusPassed, fmt.Sprintf(
			"Kaynakçada yer alan yazar soyadlarının yaklaşık %%%.0f kadarı metin içinde de geçiyor. Metin içi atıflar ile kaynakça arasında temel bir tutarlılık var gibi görünüyor.",
			ratio*100)
	}

	return StatusWarning, fmt.Sprintf(
		"Kaynakçada yer alan yazar soyadlarının yalnızca yaklaşık %%%.0f kadarı metin içinde tespit edildi. Metin içi atıflar ile kaynakça arasında uyumsuzluklar olabilir.",
		ratio*100)
}

// extractSurnames derives deduplicated surname candidates from entry lines:
// the author field before the first comma, reduced to its last word.
func extractSurnames(entries []string) []string {
	seen := make(map[string]struct{})
	var surnames []string

	for _, entry := range entries {
		m := surnamePattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		words := strings.Fields(m[1])
		if len(words) == 0 {
			continue
		}
		surname := words[len(words)-1]
		if _, ok := seen[surname]; ok {
			continue
		}
		seen[surname] = struct{}{}
		surnames = append(surnames, surname)
	}

	return surnames
}
