package analysis

import (
	"fmt"
	"strings"
)

// evaluateStructuralRule checks section presence/placement or keyword
// presence inside a page window, depending on which criteria variant the
// rule carries.
func evaluateStructuralRule(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	if len(rule.Criteria.SectionTitles) > 0 {
		return evaluateSectionPresence(rule, doc)
	}
	if rule.Criteria.SearchWindow != nil {
		return evaluateSearchWindow(rule, doc)
	}
	return StatusWarning, "Bu yapısal kural için özel bir ölçüt tanımı yapılmamış."
}

func evaluateSectionPresence(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	expected := make([]string, len(rule.Criteria.SectionTitles))
	for i, t := range rule.Criteria.SectionTitles {
		expected[i] = strings.ToUpper(t)
	}

	var found []Section
	for _, s := range doc.Sections {
		title := strings.ToUpper(s.Title)
		for _, want := range expected {
			if title == want {
				found = append(found, s)
				break
			}
		}
	}

	if len(found) == 0 {
		status := StatusWarning
		if rule.Level == LevelRequired {
			status = StatusFailed
		}
		return status, fmt.Sprintf("Beklenen bölüm başlıklarından hiçbiri bulunamadı: %s.",
			strings.Join(expected, ", "))
	}

	first := found[0]
	pageInfo := fmt.Sprintf("İlk bulunan sayfa: %d.", first.PageNumber)

	if max := rule.Criteria.MaxStartPage; max > 0 {
		if first.PageNumber > max {
			return StatusWarning, fmt.Sprintf(
				"Bölüm bulundu ancak beklenenden geç bir sayfada başlıyor (sayfa %d, beklenen en geç sayfa %d).",
				first.PageNumber, max)
		}
		pageInfo += fmt.Sprintf(" Beklenen aralık içinde (<= %d).", max)
	}

	if last := rule.Criteria.MustBeAmongLastPages; last > 0 {
		threshold := len(doc.Pages) - last
		if first.PageNumber < threshold {
			return StatusWarning, fmt.Sprintf(
				"Bölüm bulundu ancak tez sonunda olması bekleniyordu (bulunduğu sayfa: %d, son %d sayfa içinde olmalı).",
				first.PageNumber, last)
		}
		pageInfo += fmt.Sprintf(" Tezin son %d sayfası içinde.", last)
	}

	return StatusPassed, "Bölüm(ler) bulundu. " + pageInfo
}

func evaluateSearchWindow(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	window := rule.Criteria.SearchWindow

	from := window.FromPage
	if from < 1 {
		from = 1
	}
	to := window.ToPage
	if to < 1 {
		to = min(5, len(doc.Pages))
	}
	if to > len(doc.Pages) {
		to = len(doc.Pages)
	}

	var joined strings.Builder
	for i := from - 1; i < to; i++ {
		joined.WriteString(doc.Pages[i].Text)
		joined.WriteString("\n")
	}
	haystack := strings.ToUpper(joined.String())

	foundAny := false
	for _, phrase := range rule.Criteria.MustContainAny {
		if strings.Contains(haystack, strings.ToUpper(phrase)) {
			foundAny = true
			break
		}
	}

	if !foundAny {
		status := StatusWarning
		if rule.Level == LevelRequired {
			status = StatusFailed
		}
		return status, fmt.Sprintf(
			"Belirtilen sayfa aralığında (sayfa %d-%d) beklenen anahtar ifadeler bulunamadı: %s.",
			from, to, strings.Join(rule.Criteria.MustContainAny, ", "))
	}

	return StatusPassed, fmt.Sprintf(
		"Belirtilen sayfa aralığında (sayfa %d-%d) en az bir anahtar ifade bulundu.", from, to)
}
