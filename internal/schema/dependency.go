package schema

import "exclusion-diagnostic/internal/answers"

// Evaluate decides whether an indicator carrying the given rule is
// currently visible, given the answers of its own dimension.
//
// Resolution is single-hop: the rule reads the referenced indicator's
// answer as-is and never chases that indicator's own visibility. A hidden
// or unanswered parent simply reads as empty, which cascades correctly
// for all three conditions.
//
// A reference to an indicator id that does not exist reads as empty too:
// the dependent stays hidden under equals/includes rather than erroring.
// Silently hiding an input is safer here than crashing the form.
func Evaluate(rule *DependencyRule, dim answers.DimensionAnswers) bool {
	if rule == nil {
		return true
	}

	got := dim.Indicator(rule.IndicatorID)

	switch rule.Condition {
	case CondEquals:
		return got.Equal(rule.Value)

	case CondNotEquals:
		// An unanswered parent keeps the dependent hidden: do not
		// reveal a follow-up before the parent question is answered.
		s, ok := got.Str()
		if !ok || s == "" {
			return false
		}
		want, _ := rule.Value.Str()
		return s != want

	case CondIncludes:
		set, ok := rule.Value.Items()
		if !ok {
			return false
		}
		s, isStr := got.Str()
		if !isStr {
			return false
		}
		for _, item := range set {
			if item == s {
				return true
			}
		}
		return false
	}

	// Unknown condition kinds are visible: fail open so schema data can
	// evolve ahead of this code.
	return true
}
