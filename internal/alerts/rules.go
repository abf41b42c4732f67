package alerts

import "exclusion-diagnostic/internal/answers"

// Severity orders alerts by urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Alert is a fired compound-risk pattern with its recommended response.
type Alert struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Severity          Severity `json:"severity"`
	Description       string   `json:"description"`
	RecommendedAction string   `json:"recommendedAction"`
}

// rule pairs a predicate over risk-flag lookups with the alert payload
// it emits. Predicates read booleans only, never raw indicator answers,
// and never mutate the answer map.
type rule struct {
	alert Alert
	match func(m answers.Map) bool
}

var rules = []rule{
	{
		alert: Alert{
			ID:                "vital_emergency",
			Title:             "Vital emergency",
			Severity:          SeverityCritical,
			Description:       "Active suicidal ideation combined with complete social isolation.",
			RecommendedAction: "Immediate referral to emergency mental health services and assignment of a reference professional within 24 hours.",
		},
		match: func(m answers.Map) bool {
			return m.RiskChecked("dim4", "risk_d4_1") && m.RiskChecked("dim6", "risk_d6_1")
		},
	},
	{
		alert: Alert{
			ID:                "severe_exclusion",
			Title:             "Severe exclusion process",
			Severity:          SeverityHigh,
			Description:       "Long-term unemployment combined with precarious housing or homelessness.",
			RecommendedAction: "Coordinate employment and housing itineraries in a single intervention plan; prioritise housing stabilisation.",
		},
		match: func(m answers.Map) bool {
			return m.RiskChecked("dim1", "risk_d1_1") &&
				(m.RiskChecked("dim2", "risk_d2_1") || m.RiskChecked("dim2", "risk_d2_2"))
		},
	},
	{
		alert: Alert{
			ID:                "child_protection",
			Title:             "Child protection concern",
			Severity:          SeverityHigh,
			Description:       "School absenteeism or dropout together with family violence or breakdown.",
			RecommendedAction: "Notify the child protection service and open coordinated follow-up with the school.",
		},
		match: func(m answers.Map) bool {
			return (m.RiskChecked("dim5", "risk_d5_1") || m.RiskChecked("dim5", "risk_d5_2")) &&
				(m.RiskChecked("dim6", "risk_d6_2") || m.RiskChecked("dim6", "risk_d6_3"))
		},
	},
	{
		alert: Alert{
			ID:                "financial_collapse",
			Title:             "Financial collapse risk",
			Severity:          SeverityMedium,
			Description:       "Severe over-indebtedness combined with excessive housing cost burden.",
			RecommendedAction: "Refer to debt counselling and review eligibility for housing cost support.",
		},
		match: func(m answers.Map) bool {
			return m.RiskChecked("dim1", "risk_d1_2") && m.RiskChecked("dim2", "risk_d2_3")
		},
	},
}

// Detect evaluates every rule against the answer map and returns the
// alerts that fire, in rule-definition order. All matching rules fire;
// there is no first-match cutoff.
func Detect(m answers.Map) []Alert {
	var fired []Alert
	for _, r := range rules {
		if r.match(m) {
			fired = append(fired, r.alert)
		}
	}
	return fired
}
