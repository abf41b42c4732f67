package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exclusion-diagnostic/internal/answers"
)

func dimAnswers(vals map[string]answers.Value) answers.DimensionAnswers {
	return answers.DimensionAnswers{Indicators: vals}
}

func TestEvaluate_NoRuleIsVisible(t *testing.T) {
	assert.True(t, Evaluate(nil, answers.DimensionAnswers{}))
}

func TestEvaluate_Equals(t *testing.T) {
	rule := dep("indA", CondEquals, answers.String("x"))

	tests := []struct {
		name    string
		answers answers.DimensionAnswers
		want    bool
	}{
		{"matching answer", dimAnswers(map[string]answers.Value{"indA": answers.String("x")}), true},
		{"different answer", dimAnswers(map[string]answers.Value{"indA": answers.String("y")}), false},
		{"unanswered", answers.DimensionAnswers{}, false},
		{"empty string", dimAnswers(map[string]answers.Value{"indA": answers.String("")}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(rule, tt.answers))
		})
	}
}

func TestEvaluate_EqualsIsStrict(t *testing.T) {
	// "1" (string) must not match 1 (number), and true must not match "true".
	strRule := dep("indA", CondEquals, answers.String("1"))
	assert.False(t, Evaluate(strRule, dimAnswers(map[string]answers.Value{"indA": answers.Number(1)})))

	boolRule := dep("indA", CondEquals, answers.Bool(true))
	assert.False(t, Evaluate(boolRule, dimAnswers(map[string]answers.Value{"indA": answers.String("true")})))
	assert.True(t, Evaluate(boolRule, dimAnswers(map[string]answers.Value{"indA": answers.Bool(true)})))
}

func TestEvaluate_NotEquals(t *testing.T) {
	rule := dep("indA", CondNotEquals, answers.String("x"))

	tests := []struct {
		name    string
		answers answers.DimensionAnswers
		want    bool
	}{
		{"different answer is visible", dimAnswers(map[string]answers.Value{"indA": answers.String("y")}), true},
		{"matching answer is hidden", dimAnswers(map[string]answers.Value{"indA": answers.String("x")}), false},
		// An unanswered parent hides the dependent even though
		// "unanswered" technically differs from "x".
		{"unanswered parent is hidden", answers.DimensionAnswers{}, false},
		{"empty string parent is hidden", dimAnswers(map[string]answers.Value{"indA": answers.String("")}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(rule, tt.answers))
		})
	}
}

func TestEvaluate_Includes(t *testing.T) {
	rule := dep("indA", CondIncludes, answers.List("a", "b"))

	tests := []struct {
		name    string
		answers answers.DimensionAnswers
		want    bool
	}{
		{"first member", dimAnswers(map[string]answers.Value{"indA": answers.String("a")}), true},
		{"second member", dimAnswers(map[string]answers.Value{"indA": answers.String("b")}), true},
		{"non-member", dimAnswers(map[string]answers.Value{"indA": answers.String("c")}), false},
		{"unanswered", answers.DimensionAnswers{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(rule, tt.answers))
		})
	}
}

func TestEvaluate_IncludesWithScalarRuleValueHides(t *testing.T) {
	// A malformed includes rule whose value is not a list never matches.
	rule := dep("indA", CondIncludes, answers.String("a"))
	assert.False(t, Evaluate(rule, dimAnswers(map[string]answers.Value{"indA": answers.String("a")})))
}

func TestEvaluate_UnknownConditionFailsOpen(t *testing.T) {
	rule := dep("indA", Condition("matchesRegex"), answers.String("x"))
	assert.True(t, Evaluate(rule, answers.DimensionAnswers{}))
}

func TestEvaluate_DanglingReferenceStaysHidden(t *testing.T) {
	// References to indicator ids that do not exist read as unanswered.
	rule := dep("ind_gone", CondEquals, answers.String("x"))
	assert.False(t, Evaluate(rule, dimAnswers(map[string]answers.Value{"indA": answers.String("x")})))
}
