package analysis

import (
	"fmt"
	"strings"
)

// Formatting estimates are intentionally coarse: character and line density
// stand in for font size, line spacing and margins, which cannot be read
// from plain extracted text.
const (
	// marginSamplePages caps how many leading pages the margin estimate reads.
	marginSamplePages = 10
	// denseLinesPerPage is the line count treated as full text coverage.
	denseLinesPerPage = 50.0
)

// evaluateFormattingRule dispatches the two fixed formatting rule
// identities. Each carries bespoke logic; unknown ids degrade to a warning.
func evaluateFormattingRule(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	switch rule.ID {
	case "fmt-font-size-estimate":
		return evaluateFontSizeEstimate(rule, doc)
	case "fmt-margins-estimate":
		return evaluateMarginsEstimate(rule, doc)
	default:
		return StatusWarning, "Bu biçim kuralı için henüz özel bir değerlendirme uygulanmıyor."
	}
}

func evaluateFontSizeEstimate(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	charRange := rule.Criteria.ExpectedCharsPerLine
	lineRange := rule.Criteria.ExpectedLinesPerPage
	if charRange == nil || lineRange == nil {
		return StatusWarning, "Bu biçim kuralı için beklenen aralıklar tanımlanmamış."
	}

	from, to := 5, 30
	if sample := rule.Criteria.SamplePages; sample != nil {
		if sample.FromPage > 0 {
			from = sample.FromPage
		}
		if sample.ToPage > 0 {
			to = sample.ToPage
		}
	}
	if to > len(doc.Pages) {
		to = len(doc.Pages)
	}

	if len(doc.Pages) == 0 || from > to {
		return StatusWarning, "Biçim analizi için yeterli sayfa bulunamadı."
	}

	totalLines := 0
	totalChars := 0
	countedLines := 0
	for i := from - 1; i < to; i++ {
		lines := nonBlankLines(doc.Pages[i].Text)
		totalLines += len(lines)
		for _, line := range lines {
			totalChars += len([]rune(line))
			countedLines++
		}
	}

	if countedLines == 0 {
		return StatusWarning, "Satır bazlı analiz için yeterli veri yok."
	}

	avgCharsPerLine := float64(totalChars) / float64(countedLines)
	avgLinesPerPage := float64(totalLines) / float64(to-from+1)

	if charRange.Contains(avgCharsPerLine) && lineRange.Contains(avgLinesPerPage) {
		return StatusPassed, fmt.Sprintf(
			"Ortalama satır uzunluğu yaklaşık %.1f karakter, sayfa başına satır sayısı yaklaşık %.1f. Beklenen aralıklara yakın görünüyor.",
			avgCharsPerLine, avgLinesPerPage)
	}

	return StatusWarning, fmt.Sprintf(
		"Ortalama satır uzunluğu ~%.1f karakter, sayfa başına satır sayısı ~%.1f. Beklenen aralıklardan sapma olabilir; punto/satır aralığı kılavuza tam uymayabilir.",
		avgCharsPerLine, avgLinesPerPage)
}

func evaluateMarginsEstimate(rule RuleDefinition, doc *ParsedDocument) (RuleStatus, string) {
	if doc.PageCount == 0 {
		return StatusWarning, "Sayfa sayısı bilgisi bulunamadı."
	}

	sampleCount := min(marginSamplePages, len(doc.Pages))
	if sampleCount == 0 {
		return StatusWarning, "Biçim analizi için yeterli sayfa bulunamadı."
	}

	totalLines := 0
	for i := 0; i < sampleCount; i++ {
		totalLines += len(nonBlankLines(doc.Pages[i].Text))
	}

	avgLinesPerPage := float64(totalLines) / float64(sampleCount)

	// A very dense page suggests narrow margins or cramped line spacing.
	estimatedCoverage := avgLinesPerPage / denseLinesPerPage
	if estimatedCoverage > 1 {
		estimatedCoverage = 1
	}

	if estimatedCoverage <= rule.Criteria.MaxTextCoverageRatio {
		return StatusPassed, fmt.Sprintf(
			"Sayfa başına ortalama satır sayısı yaklaşık %.1f. Kenar boşlukları kabaca makul görünüyor.",
			avgLinesPerPage)
	}

	return StatusWarning, fmt.Sprintf(
		"Sayfa başına ortalama satır sayısı ~%.1f. Metin alanı sayfanın çok büyük bir kısmını kaplıyor olabilir; kenar boşlukları kılavuza göre dar olabilir.",
		avgLinesPerPage)
}

// nonBlankLines splits page text into trimmed, non-empty lines.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
