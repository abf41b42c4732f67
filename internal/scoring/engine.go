package scoring

import (
	"math"

	"exclusion-diagnostic/internal/answers"
	"exclusion-diagnostic/internal/schema"
)

// ComputeComposite is the synthetic exclusion index (ISES): the
// unweighted mean of the manual per-dimension valuations over every
// dimension present in the (already filtered) schema, rounded to two
// decimals. Unscored dimensions contribute 0. An empty schema scores 0.
//
// Per-tool dimension weights are deliberately not consulted here; see
// ComputeWeightedComposite for the weighted variant.
func ComputeComposite(m answers.Map, s *schema.Schema) float64 {
	if s == nil || len(s.Dimensions) == 0 {
		return 0
	}
	var sum float64
	for _, dim := range s.Dimensions {
		sum += float64(m.Dimension(dim.ID).Valuation)
	}
	return round2(sum / float64(len(s.Dimensions)))
}

// ComputeWeightedComposite aggregates the same valuations with
// per-dimension weights, normalising by the total weight of the
// dimensions present. Dimensions without a weight entry get weight 1.
// With an empty weight map this equals ComputeComposite.
func ComputeWeightedComposite(m answers.Map, s *schema.Schema, weights map[string]float64) float64 {
	if s == nil || len(s.Dimensions) == 0 {
		return 0
	}
	var sum, total float64
	for _, dim := range s.Dimensions {
		w, ok := weights[dim.ID]
		if !ok {
			w = 1
		}
		sum += w * float64(m.Dimension(dim.ID).Valuation)
		total += w
	}
	if total == 0 {
		return 0
	}
	return round2(sum / total)
}

// SeverityBand is the classification of a composite score.
type SeverityBand struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var severityBands = []struct {
	upper float64
	band  SeverityBand
}{
	{0.5, SeverityBand{Label: "Full Integration", Color: "#16a34a"}},
	{1.5, SeverityBand{Label: "Mild Vulnerability", Color: "#84cc16"}},
	{2.5, SeverityBand{Label: "Moderate Exclusion", Color: "#eab308"}},
	{3.5, SeverityBand{Label: "Severe Exclusion", Color: "#ea580c"}},
	{4.0, SeverityBand{Label: "Critical Exclusion", Color: "#dc2626"}},
}

// ClassifySeverity maps a composite score onto its band. Bounds are
// inclusive at the upper edge; anything beyond the domain falls into
// the most severe band.
func ClassifySeverity(score float64) SeverityBand {
	for _, b := range severityBands {
		if score <= b.upper {
			return b.band
		}
	}
	return severityBands[len(severityBands)-1].band
}

// ComputeObjective derives a dimension's objective score, in [0,4], from
// its indicator answers and risk flags alone, independent of the manual
// valuation. The score is the mean over signals, where every visible
// severity-capable indicator (one carrying a severity mapping, or a 1-5
// scale) is a signal whether answered or not:
//
//   - an answered indicator with a severity mapping contributes the
//     mapped severity of its answer (booleans map through "yes"/"no");
//   - an answered 1-5 scale indicator contributes raw-1;
//   - an unanswered severity-capable indicator contributes 0;
//   - each checked risk flag is one extra signal contributing 4.
//
// Counting unanswered indicators in the denominator keeps the score
// monotone: recording another negative answer or checking another risk
// can only raise it, never lower it. Indicators hidden by their
// dependency rule are skipped entirely. No signals at all scores 0.
func ComputeObjective(m answers.Map, dimensionID string, s *schema.Schema) float64 {
	if s == nil {
		return 0
	}
	var dim *schema.Dimension
	for i := range s.Dimensions {
		if s.Dimensions[i].ID == dimensionID {
			dim = &s.Dimensions[i]
			break
		}
	}
	if dim == nil {
		return 0
	}

	da := m.Dimension(dimensionID)

	var sum float64
	var n int
	for _, sub := range dim.Subdimensions {
		for _, ind := range sub.Indicators {
			if !schema.Evaluate(ind.DependsOn, da) {
				continue
			}
			if ind.Type != schema.TypeScale && ind.Severity == nil {
				continue
			}
			n++
			if sev, ok := indicatorSeverity(ind, da.Indicator(ind.ID)); ok {
				sum += sev
			}
		}
	}
	for _, risk := range dim.Risks {
		if da.Risks[risk.ID] {
			sum += 4
			n++
		}
	}

	if n == 0 {
		return 0
	}
	return round2(clamp(sum/float64(n), 0, 4))
}

func indicatorSeverity(ind schema.Indicator, v answers.Value) (float64, bool) {
	if v.IsEmpty() {
		return 0, false
	}
	if ind.Type == schema.TypeScale {
		raw, ok := v.Num()
		if !ok {
			return 0, false
		}
		return clamp(raw-1, 0, 4), true
	}
	if ind.Severity == nil {
		return 0, false
	}
	key, ok := severityKey(v)
	if !ok {
		return 0, false
	}
	sev, mapped := ind.Severity[key]
	return sev, mapped
}

func severityKey(v answers.Value) (string, bool) {
	if s, ok := v.Str(); ok {
		return s, true
	}
	if b, ok := v.Flag(); ok {
		if b {
			return "yes", true
		}
		return "no", true
	}
	return "", false
}

// SelfPerceptionScore converts the stored self-perception to the
// exclusion-oriented scale used by the report. The raw value is the 1-5
// picker ("Very Bad"=1 .. "Very Good"=5); the displayed value is 5-raw,
// so 0 is best and 4 worst. Unset or out-of-range raw values count as
// unanswered and contribute 0, not "best".
func SelfPerceptionScore(d answers.DimensionAnswers) float64 {
	if d.SelfPerception == nil {
		return 0
	}
	raw := *d.SelfPerception
	if raw < 1 || raw > 5 {
		return 0
	}
	return float64(5 - raw)
}

// CountRisks tallies the checked risk flags across every dimension.
// Risk ids are dimension-scoped, so no deduplication is needed.
func CountRisks(m answers.Map) int {
	var n int
	for _, da := range m {
		for _, checked := range da.Risks {
			if checked {
				n++
			}
		}
	}
	return n
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
