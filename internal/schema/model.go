package schema

import "exclusion-diagnostic/internal/answers"

// IndicatorType enumerates the input widget an indicator renders as.
type IndicatorType string

const (
	TypeSelect     IndicatorType = "select"      // single-select dropdown
	TypeChips      IndicatorType = "chips"       // single-choice chips
	TypeMultiChips IndicatorType = "multi_chips" // multi-choice chips
	TypeBoolean    IndicatorType = "boolean"     // yes/no
	TypeNumber     IndicatorType = "number"
	TypeText       IndicatorType = "text"
	TypeDate       IndicatorType = "date"
	TypeScale      IndicatorType = "scale" // 1-5 rating
	TypeRange      IndicatorType = "range" // numeric slider
)

// Condition is the kind of dependency test a rule applies.
type Condition string

const (
	CondEquals    Condition = "equals"
	CondNotEquals Condition = "notEquals"
	CondIncludes  Condition = "includes"
)

// DependencyRule makes an indicator's visibility conditional on the
// answer of another indicator in the same dimension. Cross-dimension
// references are invalid and rejected by BuildIndex.
type DependencyRule struct {
	IndicatorID string        `json:"indicatorId"`
	Condition   Condition     `json:"condition"`
	Value       answers.Value `json:"value"`
}

// Indicator is a single question. Its visibility is a pure function of
// the current answers and its own DependsOn rule; it carries no state.
type Indicator struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Type      IndicatorType   `json:"type"`
	Options   []string        `json:"options,omitempty"`
	Min       *float64        `json:"min,omitempty"`
	Max       *float64        `json:"max,omitempty"`
	Help      string          `json:"help,omitempty"`
	DependsOn *DependencyRule `json:"dependsOn,omitempty"`

	// Severity maps an answer value (option string, or "yes"/"no" for
	// booleans) to an exclusion severity in [0,4]. Indicators without a
	// mapping do not contribute to the objective score; scale answers
	// contribute raw-1 regardless.
	Severity map[string]float64 `json:"severity,omitempty"`
}

// RiskFlag is a dimension-scoped boolean alarm signal.
type RiskFlag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PotentialityFlag marks a protective factor or personal strength.
type PotentialityFlag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Subdimension groups indicators inside a dimension. It belongs to
// exactly one dimension.
type Subdimension struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Indicators  []Indicator `json:"indicators"`
}

// Dimension is one of the eight life areas of the diagnostic.
type Dimension struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Subdimensions  []Subdimension     `json:"subdimensions"`
	Risks          []RiskFlag         `json:"risks,omitempty"`
	Potentialities []PotentialityFlag `json:"potentialities,omitempty"`
}

// Schema is the full diagnostic tree. Treated as immutable reference
// data everywhere outside the admin override workflow.
type Schema struct {
	Dimensions []Dimension `json:"dimensions"`
}
