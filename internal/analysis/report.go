package analysis

import "fmt"

// Evaluate runs the default catalog against a parsed document.
func Evaluate(doc *ParsedDocument) *AnalysisReport {
	return EvaluateWithCatalog(DefaultCatalog(), doc)
}

// EvaluateWithCatalog evaluates every rule of the catalog, group by group,
// producing exactly one RuleResult per rule in catalog order. Individual
// rule failures are encoded in the result status; this function itself has
// no failure mode.
func EvaluateWithCatalog(catalog *RuleCatalog, doc *ParsedDocument) *AnalysisReport {
	results := make([]RuleResult, 0, catalog.RuleCount())

	for _, group := range catalog.Groups {
		for _, rule := range group.Rules {
			status, details := evaluateRule(rule, doc)
			results = append(results, RuleResult{
				ID:          rule.ID,
				Category:    group.Title,
				Title:       rule.Description,
				Description: rule.Description,
				Status:      status,
				Details:     details,
			})
		}
	}

	var passed, failed, warnings int
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		case StatusWarning:
			warnings++
		}
	}

	total := len(results)
	if total == 0 {
		total = 1
	}

	return &AnalysisReport{
		OverallScore: float64(passed) / float64(total) * 100,
		Summary: fmt.Sprintf("Toplam %d kural değerlendirildi. %d geçti, %d başarısız, %d uyarı.",
			total, passed, failed, warnings),
		Items: results,
	}
}

// evaluateRule dispatches a single rule to the evaluator matching its type.
// A panic inside an evaluator is converted into a warning verdict so one
// bad rule never aborts the batch.
func evaluateRule(rule RuleDefinition, doc *ParsedDocument) (status RuleStatus, details string) {
	defer func() {
		if r := recover(); r != nil {
			status = StatusWarning
			details = fmt.Sprintf("Kural değerlendirilirken hata oluştu: %v", r)
		}
	}()

	switch rule.Type {
	case RuleTypeStructure:
		return evaluateStructuralRule(rule, doc)
	case RuleTypeFormatting:
		return evaluateFormattingRule(rule, doc)
	case RuleTypeCitation:
		return evaluateCitationRule(rule, doc)
	default:
		return StatusWarning, "Bu kural için özel bir değerlendirme uygulanmadı."
	}
}
