package tooling

// CompleteTool returns the identity tool: every dimension, subdimension
// and indicator of the schema is included.
func CompleteTool() *Tool {
	return &Tool{
		ID:     CompleteToolID,
		Name:   "Complete diagnostic",
		Color:  "#2563eb",
		Icon:   "clipboard",
		Active: true,
	}
}

// Presets returns the fixed built-in templates. Their ids and enabled
// lists are stable; only the active-tool list decides whether they are
// selectable.
func Presets() []*Tool {
	return []*Tool{
		{
			ID:                "express_triage",
			Name:              "Express triage",
			Color:             "#dc2626",
			Icon:              "zap",
			Active:            true,
			EnabledDimensions: []string{"dim1", "dim2", "dim4", "dim6"},
			EnabledSubdimensions: map[string][]string{
				"dim1": {"sub1_1"},
				"dim2": {"sub2_1"},
			},
		},
		{
			ID:                "housing_intake",
			Name:              "Housing intake",
			Color:             "#ea580c",
			Icon:              "home",
			Active:            true,
			EnabledDimensions: []string{"dim1", "dim2", "dim8"},
			DisabledIndicators: map[string]bool{
				"ind1_2_3": true,
			},
		},
		{
			ID:                "family_minors",
			Name:              "Family and minors",
			Color:             "#16a34a",
			Icon:              "users",
			Active:            true,
			EnabledDimensions: []string{"dim3", "dim4", "dim5", "dim6"},
		},
	}
}
