package answers

// DimensionAnswers holds everything a caseworker has recorded for one
// dimension: the manual professional valuation (0 worst-case free, 4 most
// severe), the person's self-perception on the 1-5 picker, per-indicator
// answers, checked risk and potentiality flags, and free-text notes.
type DimensionAnswers struct {
	// Valuation is the manual severity score, 0-4. Zero value means
	// "not scored yet" and contributes 0 to the composite index.
	Valuation int `json:"valuation,omitempty"`

	// SelfPerception is the raw 1-5 picker value ("Very Bad"=1 ..
	// "Very Good"=5). Nil means unanswered.
	SelfPerception *int `json:"selfPerception,omitempty"`

	// Indicators maps indicator id to its answer value.
	Indicators map[string]Value `json:"indicators,omitempty"`

	// Risks maps risk flag id to checked state.
	Risks map[string]bool `json:"risks,omitempty"`

	PotentialitiesChecked map[string]bool `json:"potentialitiesChecked,omitempty"`
	PotentialitiesNotes   string          `json:"potentialitiesNotes,omitempty"`
}

// Indicator returns the answer for an indicator id, or the empty Value
// when unanswered. A nil receiver map behaves as fully unanswered.
func (d DimensionAnswers) Indicator(id string) Value {
	if d.Indicators == nil {
		return Value{}
	}
	return d.Indicators[id]
}

// Map is the full answer state of a case, keyed by dimension id. It is
// owned by the case record; every derived computation receives it as an
// explicit argument and never mutates it.
type Map map[string]DimensionAnswers

// Dimension returns the answers for a dimension id, or the zero value
// when the dimension has no answers yet.
func (m Map) Dimension(id string) DimensionAnswers {
	if m == nil {
		return DimensionAnswers{}
	}
	return m[id]
}

// RiskChecked reports whether a given risk flag is checked in a dimension.
// Missing dimensions or flags read as unchecked.
func (m Map) RiskChecked(dimensionID, riskID string) bool {
	return m.Dimension(dimensionID).Risks[riskID]
}
