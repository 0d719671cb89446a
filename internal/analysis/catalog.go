package analysis

// defaultCatalog is built once at package initialization and shared
// read-only across all evaluations.
var defaultCatalog = buildDefaultCatalog()

// DefaultCatalog returns the embedded thesis rule catalog. Callers must not
// mutate it.
func DefaultCatalog() *RuleCatalog {
	return defaultCatalog
}

// buildDefaultCatalog assembles the thesis writing guideline rules. The
// catalog is code-resident: no file I/O, no external configuration.
// Thresholds follow the Van YYÜ health sciences institute writing guide.
func buildDefaultCatalog() *RuleCatalog {
	return &RuleCatalog{
		Meta: CatalogMeta{
			Version:     1,
			Language:    "tr",
			Description: "Tez yazım kılavuzuna göre otomatik kontrol edilebilir yapısal, biçimsel ve kaynakça kuralları.",
		},
		Groups: []RuleGroup{
			{
				ID:    "structural",
				Title: "Yapısal Kurallar",
				Rules: []RuleDefinition{
					{
						ID:          "struct-cover-page",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "Tezde kapak sayfası bulunmalıdır (ilk sayfalarda 'T.C.', üniversite ve enstitü adı, yazar adı vb. anahtar ifadeler).",
						Criteria: Criteria{
							SearchWindow:   &PageWindow{FromPage: 1, ToPage: 2},
							MustContainAny: []string{"T.C.", "ÜNİVERSİTESİ", "ENSTİTÜSÜ", "TEZİ"},
						},
					},
					{
						ID:          "struct-abstract-tr",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "Türkçe özet bölümü bulunmalı ve ilk sayfalar içinde yer almalıdır.",
						Criteria: Criteria{
							SectionTitles: []string{"ÖZET", "TÜRKÇE ÖZET"},
							MaxStartPage:  5,
						},
					},
					{
						ID:          "struct-abstract-en",
						Type:        RuleTypeStructure,
						Level:       LevelRecommended,
						Description: "İngilizce özet (ABSTRACT) bölümü bulunması önerilir.",
						Criteria: Criteria{
							SectionTitles: []string{"ABSTRACT", "SUMMARY"},
							MaxStartPage:  7,
						},
					},
					{
						ID:          "struct-introduction",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "GİRİŞ bölümü bulunmalıdır.",
						Criteria: Criteria{
							SectionTitles: []string{"GİRİŞ"},
							MinPage:       3,
						},
					},
					{
						ID:          "struct-method",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "YÖNTEM veya GEREÇ VE YÖNTEM bölümü bulunmalıdır.",
						Criteria: Criteria{
							SectionTitles: []string{"YÖNTEM", "GEREÇ VE YÖNTEM", "GEREÇ VE YÖNTEMLER"},
						},
					},
					{
						ID:          "struct-results",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "BULGULAR veya SONUÇLAR bölümü bulunmalıdır.",
						Criteria: Criteria{
							SectionTitles: []string{"BULGULAR", "SONUÇLAR"},
						},
					},
					{
						ID:          "struct-discussion",
						Type:        RuleTypeStructure,
						Level:       LevelRecommended,
						Description: "TARTIŞMA veya TARTIŞMA VE SONUÇ bölümü bulunması önerilir.",
						Criteria: Criteria{
							SectionTitles: []string{"TARTIŞMA", "TARTIŞMA VE SONUÇ"},
						},
					},
					{
						ID:          "struct-conclusion",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "SONUÇ veya GENEL SONUÇLAR bölümü bulunmalıdır.",
						Criteria: Criteria{
							SectionTitles: []string{"SONUÇ", "GENEL SONUÇLAR"},
						},
					},
					{
						ID:          "struct-references",
						Type:        RuleTypeStructure,
						Level:       LevelRequired,
						Description: "Tezin sonunda KAYNAKÇA / REFERENCES bölümü bulunmalıdır.",
						Criteria: Criteria{
							SectionTitles:        []string{"KAYNAKÇA", "REFERENCES"},
							MustBeAmongLastPages: 10,
						},
					},
				},
			},
			{
				ID:    "formatting",
				Title: "Biçim Kuralları (Yaklaşık Kontrol)",
				Rules: []RuleDefinition{
					{
						ID:          "fmt-font-size-estimate",
						Type:        RuleTypeFormatting,
						Level:       LevelRecommended,
						Description: "Ana metnin yaklaşık 12 punto ve 1.5 satır aralığına uygunluğu (satır ve sayfa başına karakter sayısından tahmini kontrol).",
						Criteria: Criteria{
							ExpectedCharsPerLine: &FloatRange{Min: 60, Max: 95},
							ExpectedLinesPerPage: &FloatRange{Min: 25, Max: 40},
							SamplePages:          &PageWindow{FromPage: 5, ToPage: 30},
						},
					},
					{
						ID:          "fmt-margins-estimate",
						Type:        RuleTypeFormatting,
						Level:       LevelInfo,
						Description: "Sayfa kenar boşluklarının metin yoğunluğuna göre kabaca kontrolü (tam isabetli olmayan uyarı amaçlı heuristik).",
						Criteria: Criteria{
							MaxTextCoverageRatio: 0.8,
						},
					},
				},
			},
			{
				ID:    "citations",
				Title: "Kaynakça ve Atıf Kuralları",
				Rules: []RuleDefinition{
					{
						ID:          "citations-intext-author-year",
						Type:        RuleTypeCitation,
						Level:       LevelRecommended,
						Description: "Metin içinde yazar-yıl biçiminde (APA benzeri) atıfların varlığı.",
						Criteria: Criteria{
							Patterns: []string{
								`\([A-ZÇĞİÖŞÜ][a-zçğıöşü]+,\s*20[0-9]{2}[a-z]?\)`,
								`\([A-ZÇĞİÖŞÜ][a-zçğıöşü]+ ve [A-ZÇĞİÖŞÜ][a-zçğıöşü]+,\s*20[0-9]{2}\)`,
							},
							MinMatches: 3,
						},
					},
					{
						ID:          "citations-intext-numeric",
						Type:        RuleTypeCitation,
						Level:       LevelInfo,
						Description: "Numaralı atıf (köşeli parantez içinde sayı) desenlerinin varlığı.",
						Criteria: Criteria{
							Patterns:   []string{`\[[0-9]{1,3}\]`},
							MinMatches: 3,
						},
					},
					{
						ID:          "citations-ref-section-matching",
						Type:        RuleTypeCitation,
						Level:       LevelRecommended,
						Description: "KAYNAKÇA bölümünde listelenen bazı yazar soyadlarının metin içinde geçip geçmediğinin basit kontrolü.",
						Criteria: Criteria{
							MinReferenceCount: 5,
							MinMatchRatio:     0.4,
						},
					},
				},
			},
		},
	}
}
