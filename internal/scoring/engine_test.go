package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exclusion-diagnostic/internal/answers"
	"exclusion-diagnostic/internal/schema"
)

func flatSchema(dimIDs ...string) *schema.Schema {
	s := &schema.Schema{}
	for _, id := range dimIDs {
		s.Dimensions = append(s.Dimensions, schema.Dimension{ID: id})
	}
	return s
}

func TestComputeComposite(t *testing.T) {
	tests := []struct {
		name string
		m    answers.Map
		s    *schema.Schema
		want float64
	}{
		{
			name: "boundary mean",
			m: answers.Map{
				"d1": {Valuation: 0},
				"d2": {Valuation: 4},
			},
			s:    flatSchema("d1", "d2"),
			want: 2.00,
		},
		{
			name: "unscored dimensions default to zero",
			m:    answers.Map{"d1": {Valuation: 3}},
			s:    flatSchema("d1", "d2", "d3"),
			want: 1.00,
		},
		{
			name: "rounded to two decimals",
			m: answers.Map{
				"d1": {Valuation: 1},
				"d2": {Valuation: 1},
				"d3": {Valuation: 2},
			},
			s:    flatSchema("d1", "d2", "d3"),
			want: 1.33,
		},
		{
			name: "empty schema scores zero",
			m:    answers.Map{"d1": {Valuation: 4}},
			s:    flatSchema(),
			want: 0,
		},
		{
			name: "nil schema scores zero",
			m:    answers.Map{},
			s:    nil,
			want: 0,
		},
		{
			name: "answers outside the schema are ignored",
			m:    answers.Map{"ghost": {Valuation: 4}},
			s:    flatSchema("d1"),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeComposite(tt.m, tt.s))
		})
	}
}

func TestComputeWeightedComposite(t *testing.T) {
	m := answers.Map{
		"d1": {Valuation: 0},
		"d2": {Valuation: 4},
	}
	s := flatSchema("d1", "d2")

	// No weights: equals the unweighted mean.
	assert.Equal(t, 2.00, ComputeWeightedComposite(m, s, nil))

	// d2 weighted three times as heavy.
	assert.Equal(t, 3.00, ComputeWeightedComposite(m, s, map[string]float64{"d1": 1, "d2": 3}))

	// Missing entries default to weight 1.
	assert.Equal(t, 2.67, ComputeWeightedComposite(m, s, map[string]float64{"d2": 2}))
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		score float64
		label string
	}{
		{0, "Full Integration"},
		{0.5, "Full Integration"},
		{0.51, "Mild Vulnerability"},
		{1.5, "Mild Vulnerability"},
		{2.0, "Moderate Exclusion"},
		{2.5, "Moderate Exclusion"},
		{3.5, "Severe Exclusion"},
		{3.51, "Critical Exclusion"},
		{4.0, "Critical Exclusion"},
		{99, "Critical Exclusion"}, // out of domain, most severe wins
	}
	for _, tt := range tests {
		band := ClassifySeverity(tt.score)
		assert.Equal(t, tt.label, band.Label, "score %v", tt.score)
		assert.NotEmpty(t, band.Color)
	}
}

func TestCompositeBoundaryBanding(t *testing.T) {
	m := answers.Map{
		"d1": {Valuation: 0},
		"d2": {Valuation: 4},
	}
	score := ComputeComposite(m, flatSchema("d1", "d2"))
	assert.Equal(t, 2.00, score)
	assert.Equal(t, "Moderate Exclusion", ClassifySeverity(score).Label)
}

func objectiveSchema() *schema.Schema {
	return &schema.Schema{Dimensions: []schema.Dimension{{
		ID: "d1",
		Subdimensions: []schema.Subdimension{{
			ID: "s1",
			Indicators: []schema.Indicator{
				{
					ID:       "i1",
					Type:     schema.TypeSelect,
					Options:  []string{"good", "bad"},
					Severity: map[string]float64{"good": 0, "bad": 4},
				},
				{
					ID:       "i2",
					Type:     schema.TypeBoolean,
					Severity: map[string]float64{"yes": 2, "no": 0},
				},
				{ID: "i3", Type: schema.TypeScale},
				{ID: "i4", Type: schema.TypeText}, // no severity mapping
			},
		}},
		Risks: []schema.RiskFlag{{ID: "r1"}, {ID: "r2"}},
	}}}
}

func TestComputeObjective(t *testing.T) {
	s := objectiveSchema()

	tests := []struct {
		name string
		da   answers.DimensionAnswers
		want float64
	}{
		// i1, i2 and i3 are severity-capable, so the denominator is 3
		// plus one per checked risk regardless of what is answered.
		{"nothing answered", answers.DimensionAnswers{}, 0},
		{
			"single bad answer",
			answers.DimensionAnswers{Indicators: map[string]answers.Value{"i1": answers.String("bad")}},
			1.33, // 4/3
		},
		{
			"mixed answers average",
			answers.DimensionAnswers{Indicators: map[string]answers.Value{
				"i1": answers.String("bad"),
				"i2": answers.Bool(true),
			}},
			2, // (4+2+0)/3
		},
		{
			"scale contributes raw minus one",
			answers.DimensionAnswers{Indicators: map[string]answers.Value{"i3": answers.Number(5)}},
			1.33, // 4/3
		},
		{
			"unmapped indicator contributes nothing",
			answers.DimensionAnswers{Indicators: map[string]answers.Value{"i4": answers.String("notes")}},
			0,
		},
		{
			"checked risk contributes four",
			answers.DimensionAnswers{
				Indicators: map[string]answers.Value{"i1": answers.String("good")},
				Risks:      map[string]bool{"r1": true, "r2": false},
			},
			1, // (0+0+0+4)/4
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeObjective(answers.Map{"d1": tt.da}, "d1", s))
		})
	}
}

func TestComputeObjective_MonotoneInRisks(t *testing.T) {
	s := objectiveSchema()
	da := answers.DimensionAnswers{
		Indicators: map[string]answers.Value{"i2": answers.Bool(true)},
		Risks:      map[string]bool{},
	}

	prev := ComputeObjective(answers.Map{"d1": da}, "d1", s)
	for _, risk := range []string{"r1", "r2"} {
		da.Risks[risk] = true
		next := ComputeObjective(answers.Map{"d1": da}, "d1", s)
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestComputeObjective_MonotoneInAnswers(t *testing.T) {
	s := objectiveSchema()
	da := answers.DimensionAnswers{
		Indicators: map[string]answers.Value{},
		Risks:      map[string]bool{"r1": true},
	}

	// Answering an extra negative indicator, even one milder than the
	// current mean, must never pull the score down.
	prev := ComputeObjective(answers.Map{"d1": da}, "d1", s)
	assert.Equal(t, 1.0, prev) // 4/(3+1)

	da.Indicators["i2"] = answers.Bool(true)
	next := ComputeObjective(answers.Map{"d1": da}, "d1", s)
	assert.GreaterOrEqual(t, next, prev)
	assert.Equal(t, 1.5, next) // (2+4)/4

	da.Indicators["i1"] = answers.String("bad")
	final := ComputeObjective(answers.Map{"d1": da}, "d1", s)
	assert.GreaterOrEqual(t, final, next)
	assert.Equal(t, 2.5, final) // (4+2+4)/4
}

func TestComputeObjective_SkipsHiddenIndicators(t *testing.T) {
	s := &schema.Schema{Dimensions: []schema.Dimension{{
		ID: "d1",
		Subdimensions: []schema.Subdimension{{
			ID: "s1",
			Indicators: []schema.Indicator{
				{ID: "parent", Type: schema.TypeSelect, Options: []string{"a", "b"}},
				{
					ID:   "child",
					Type: schema.TypeBoolean,
					DependsOn: &schema.DependencyRule{
						IndicatorID: "parent",
						Condition:   schema.CondEquals,
						Value:       answers.String("a"),
					},
					Severity: map[string]float64{"yes": 4, "no": 0},
				},
			},
		}},
	}}}

	// A stale "yes" on the hidden child must not leak into the score.
	da := answers.DimensionAnswers{Indicators: map[string]answers.Value{
		"parent": answers.String("b"),
		"child":  answers.Bool(true),
	}}
	assert.Equal(t, 0.0, ComputeObjective(answers.Map{"d1": da}, "d1", s))
}

func TestComputeObjective_UnknownDimension(t *testing.T) {
	assert.Equal(t, 0.0, ComputeObjective(answers.Map{}, "ghost", objectiveSchema()))
}

func TestSelfPerceptionScore(t *testing.T) {
	intp := func(n int) *int { return &n }

	tests := []struct {
		name string
		raw  *int
		want float64
	}{
		{"unset contributes zero", nil, 0},
		{"very bad inverts to four", intp(1), 4},
		{"neutral", intp(3), 2},
		{"very good inverts to zero", intp(5), 0},
		{"out of range treated as unset", intp(0), 0},
		{"above range treated as unset", intp(6), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelfPerceptionScore(answers.DimensionAnswers{SelfPerception: tt.raw})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountRisks(t *testing.T) {
	m := answers.Map{
		"dim1": {Risks: map[string]bool{"r1": true, "r2": false}},
		"dim4": {Risks: map[string]bool{"r3": true}},
		"dim6": {},
	}
	assert.Equal(t, 2, CountRisks(m))
	assert.Equal(t, 0, CountRisks(nil))
}
