package analysis

// RuleType identifies which evaluator a rule is dispatched to.
type RuleType string

const (
	RuleTypeStructure  RuleType = "structure"
	RuleTypeFormatting RuleType = "formatting"
	RuleTypeCitation   RuleType = "citation"
)

// IsValid checks if the rule type belongs to the closed evaluator set.
func (rt RuleType) IsValid() bool {
	switch rt {
	case RuleTypeStructure, RuleTypeFormatting, RuleTypeCitation:
		return true
	default:
		return false
	}
}

// RuleLevel represents how binding a rule is.
type RuleLevel string

const (
	LevelRequired    RuleLevel = "required"
	LevelRecommended RuleLevel = "recommended"
	LevelInfo        RuleLevel = "info"
)

// RuleStatus is the verdict of evaluating a single rule.
type RuleStatus string

const (
	StatusPassed  RuleStatus = "passed"
	StatusFailed  RuleStatus = "failed"
	StatusWarning RuleStatus = "warning"
	StatusInfo    RuleStatus = "info"
)

// PageWindow is a 1-based inclusive page range.
type PageWindow struct {
	FromPage int `json:"fromPage"`
	ToPage   int `json:"toPage"`
}

// FloatRange is an inclusive [Min,Max] interval for formatting estimates.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the range, bounds included.
func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria is a variant record: which fields are meaningful depends on the
// rule type (and for formatting/citation rules, on the rule id). Zero values
// mean "constraint not set".
type Criteria struct {
	// Structural: section presence/placement.
	SectionTitles        []string `json:"sectionTitles,omitempty"`
	MaxStartPage         int      `json:"maxStartPage,omitempty"`
	MinPage              int      `json:"minPage,omitempty"`
	MustBeAmongLastPages int      `json:"mustBeAmongLastPages,omitempty"`

	// Structural: keyword presence in a page window.
	SearchWindow   *PageWindow `json:"searchWindow,omitempty"`
	MustContainAny []string    `json:"mustContainAny,omitempty"`

	// Formatting: font/spacing estimate.
	ExpectedCharsPerLine *FloatRange `json:"expectedCharsPerLineRange,omitempty"`
	ExpectedLinesPerPage *FloatRange `json:"expectedLinesPerPageRange,omitempty"`
	SamplePages          *PageWindow `json:"samplePageRange,omitempty"`

	// Formatting: margin estimate.
	MaxTextCoverageRatio float64 `json:"maxTextCoverageRatio,omitempty"`

	// Citation: pattern counting and reference cross-checking.
	Patterns          []string `json:"patterns,omitempty"`
	MinMatches        int      `json:"minMatches,omitempty"`
	MinReferenceCount int      `json:"minReferenceCountForCheck,omitempty"`
	MinMatchRatio     float64  `json:"minMatchRatio,omitempty"`
}

// RuleDefinition is one entry of the static rule catalog.
type RuleDefinition struct {
	ID          string    `json:"id"`
	Type        RuleType  `json:"type"`
	Level       RuleLevel `json:"level"`
	Description string    `json:"description"`
	Criteria    Criteria  `json:"criteria"`
}

// RuleGroup is an ordered set of rules sharing a display title. Group order
// and rule order within a group determine report item order.
type RuleGroup struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Rules []RuleDefinition `json:"rules"`
}

// CatalogMeta describes the catalog revision.
type CatalogMeta struct {
	Version     int    `json:"version"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// RuleCatalog is the embedded, versioned rule table. It is built once at
// process start and never mutated, so concurrent reads need no locking.
type RuleCatalog struct {
	Meta   CatalogMeta `json:"meta"`
	Groups []RuleGroup `json:"sections"`
}

// RuleCount returns the total number of rules across all groups.
func (c *RuleCatalog) RuleCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Rules)
	}
	return n
}

// RuleResult is the verdict for one rule against one document.
type RuleResult struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      RuleStatus `json:"status"`
	Details     string     `json:"details"`
}

// AnalysisReport is the aggregate outcome of evaluating the full catalog.
type AnalysisReport struct {
	OverallScore float64      `json:"overallScore"`
	Summary      string       `json:"summary"`
	Items        []RuleResult `json:"items"`
}
