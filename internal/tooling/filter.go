package tooling

import "exclusion-diagnostic/internal/schema"

// FilterSchema derives the effective schema subset for a tool. It is
// pure: neither the schema nor the tool is mutated, and the output
// preserves the input ordering of dimensions, subdimensions and
// indicators.
//
// Exclusion dominates inclusion: a disabled dimension or subdimension
// excludes every indicator it contains, whatever DisabledIndicators
// says. Subdimensions left with zero indicators are dropped, and so are
// dimensions left with zero subdimensions. Unknown ids in the tool
// configuration are simply ignored, since every check is a membership
// test.
func FilterSchema(s *schema.Schema, tool *Tool) *schema.Schema {
	if s == nil || tool.IsComplete() {
		return s
	}

	enabled := make(map[string]bool, len(tool.EnabledDimensions))
	for _, id := range tool.EnabledDimensions {
		enabled[id] = true
	}

	out := &schema.Schema{Dimensions: make([]schema.Dimension, 0, len(s.Dimensions))}

	for _, dim := range s.Dimensions {
		if !enabled[dim.ID] {
			continue
		}

		subsEnabled, restricted := tool.EnabledSubdimensions[dim.ID]
		subSet := make(map[string]bool, len(subsEnabled))
		for _, id := range subsEnabled {
			subSet[id] = true
		}

		kept := dim
		kept.Subdimensions = make([]schema.Subdimension, 0, len(dim.Subdimensions))
		for _, sub := range dim.Subdimensions {
			if restricted && !subSet[sub.ID] {
				continue
			}
			keptSub := sub
			keptSub.Indicators = make([]schema.Indicator, 0, len(sub.Indicators))
			for _, ind := range sub.Indicators {
				if tool.DisabledIndicators[ind.ID] {
					continue
				}
				keptSub.Indicators = append(keptSub.Indicators, ind)
			}
			if len(keptSub.Indicators) == 0 {
				continue
			}
			kept.Subdimensions = append(kept.Subdimensions, keptSub)
		}
		if len(kept.Subdimensions) == 0 {
			continue
		}
		out.Dimensions = append(out.Dimensions, kept)
	}

	return out
}

// ItemCounts is the post-filter tally used for tool statistics.
type ItemCounts struct {
	Dimensions    int `json:"dimensionCount"`
	Subdimensions int `json:"subdimensionCount"`
	Indicators    int `json:"indicatorCount"`
}

// CountItems filters the schema with the tool and tallies what remains.
func CountItems(s *schema.Schema, tool *Tool) ItemCounts {
	filtered := FilterSchema(s, tool)
	var c ItemCounts
	if filtered == nil {
		return c
	}
	for _, dim := range filtered.Dimensions {
		c.Dimensions++
		for _, sub := range dim.Subdimensions {
			c.Subdimensions++
			c.Indicators += len(sub.Indicators)
		}
	}
	return c
}
