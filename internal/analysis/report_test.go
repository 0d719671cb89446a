package analysis

import (
	"math"
	"strings"
	"testing"
)

func TestEvaluateOneResultPerRule(t *testing.T) {
	catalog := DefaultCatalog()
	report := Evaluate(BuildDocument(nil))

	if len(report.Items) != catalog.RuleCount() {
		t.Fatalf("expected %d results, got %d", catalog.RuleCount(), len(report.Items))
	}

	i := 0
	for _, group := range catalog.Groups {
		for _, rule := range group.Rules {
			item := report.Items[i]
			if item.ID != rule.ID {
				t.Errorf("item[%d].ID = %q, want %q (catalog order)", i, item.ID, rule.ID)
			}
			if item.Category != group.Title {
				t.Errorf("item[%d].Category = %q, want %q", i, item.Category, group.Title)
			}
			if item.Details == "" {
				t.Errorf("item[%d] (%s) has empty details", i, item.ID)
			}
			i++
		}
	}
}

func TestEvaluateEmptyDocument(t *testing.T) {
	report := Evaluate(BuildDocument(nil))

	byID := make(map[string]RuleResult)
	for _, item := range report.Items {
		byID[item.ID] = item
	}

	// Required structural rules fail outright on an empty document.
	for _, id := range []string{"struct-cover-page", "struct-abstract-tr", "struct-introduction", "struct-references"} {
		if byID[id].Status != StatusFailed {
			t.Errorf("%s: status = %s, want failed", id, byID[id].Status)
		}
	}
	// Recommended ones degrade to warnings.
	for _, id := range []string{"struct-abstract-en", "struct-discussion"} {
		if byID[id].Status != StatusWarning {
			t.Errorf("%s: status = %s, want warning", id, byID[id].Status)
		}
	}
	if byID["citations-intext-numeric"].Status != StatusInfo {
		t.Errorf("citations-intext-numeric: status = %s, want info", byID["citations-intext-numeric"].Status)
	}

	if report.OverallScore != 0 {
		t.Errorf("OverallScore = %.1f, want 0 when nothing passes", report.OverallScore)
	}
	if !strings.Contains(report.Summary, "Toplam") {
		t.Errorf("unexpected summary %q", report.Summary)
	}
}

func TestEvaluateShortThesis(t *testing.T) {
	doc := BuildDocument(PagesFromTexts([]string{
		"T.C.\nEXAMPLE ÜNİVERSİTESİ\nSAĞLIK BİLİMLERİ ENSTİTÜSÜ\nYÜKSEK LİSANS TEZİ",
		"GİRİŞ\nBu çalışmada önceki bulgular (Smith, 2020) özetlenmiştir.",
		"KAYNAKÇA\nSmith, J. (2020). A study.\nDoe, B. (2019). Another study.",
	}))

	report := Evaluate(doc)

	byID := make(map[string]RuleResult)
	for _, item := range report.Items {
		byID[item.ID] = item
	}

	if byID["struct-cover-page"].Status != StatusPassed {
		t.Errorf("cover page: status = %s, want passed", byID["struct-cover-page"].Status)
	}
	if byID["struct-introduction"].Status != StatusPassed {
		t.Errorf("introduction: status = %s, want passed", byID["struct-introduction"].Status)
	}
	// References on the last page of a 3-page document sit inside the
	// last-pages window.
	if byID["struct-references"].Status != StatusPassed {
		t.Errorf("references: status = %s, want passed", byID["struct-references"].Status)
	}
	// Only two bibliography entries, below the cross-check minimum.
	if byID["citations-ref-section-matching"].Status != StatusWarning {
		t.Errorf("ref matching: status = %s, want warning", byID["citations-ref-section-matching"].Status)
	}
	if byID["struct-method"].Status != StatusFailed {
		t.Errorf("method: status = %s, want failed", byID["struct-method"].Status)
	}
}

func TestEvaluateScoreFormula(t *testing.T) {
	report := Evaluate(BuildDocument(PagesFromTexts([]string{
		"T.C.\nEXAMPLE ÜNİVERSİTESİ",
	})))

	passed := 0
	for _, item := range report.Items {
		if item.Status == StatusPassed {
			passed++
		}
	}

	want := float64(passed) / float64(len(report.Items)) * 100
	if math.Abs(report.OverallScore-want) > 1e-9 {
		t.Errorf("OverallScore = %f, want %f", report.OverallScore, want)
	}
}

func TestEvaluateWithCatalogEmpty(t *testing.T) {
	report := EvaluateWithCatalog(&RuleCatalog{}, BuildDocument(nil))

	if len(report.Items) != 0 {
		t.Errorf("expected no items, got %d", len(report.Items))
	}
	if report.OverallScore != 0 {
		t.Errorf("OverallScore = %f, want 0", report.OverallScore)
	}
}

func TestEvaluateUnknownRuleType(t *testing.T) {
	catalog := &RuleCatalog{
		Groups: []RuleGroup{{
			ID:    "custom",
			Title: "Custom",
			Rules: []RuleDefinition{{
				ID:          "custom-rule",
				Type:        RuleType("mystery"),
				Level:       LevelInfo,
				Description: "unknown type",
			}},
		}},
	}

	report := EvaluateWithCatalog(catalog, BuildDocument(nil))
	if len(report.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(report.Items))
	}
	if report.Items[0].Status != StatusWarning {
		t.Errorf("status = %s, want warning for unknown rule type", report.Items[0].Status)
	}
}

func TestCatalogRuleCount(t *testing.T) {
	if got := DefaultCatalog().RuleCount(); got != 14 {
		t.Errorf("RuleCount() = %d, want 14", got)
	}
}

func TestCatalogRuleIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, group := range DefaultCatalog().Groups {
		for _, rule := range group.Rules {
			if seen[rule.ID] {
				t.Errorf("duplicate rule id %q", rule.ID)
			}
			seen[rule.ID] = true
		}
	}
}
