package tooling

// Tool is a diagnostic template: it selects which parts of the full
// schema a case created with it works against. The zero-configuration
// identity tool (id "complete") includes everything.
type Tool struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon,omitempty"`
	Active bool   `json:"active"`

	// EnabledDimensions lists dimension ids included by this tool. A
	// dimension not listed is fully excluded. Ignored for the identity
	// tool.
	EnabledDimensions []string `json:"enabledDimensions,omitempty"`

	// EnabledSubdimensions maps dimension id to the subdimension ids
	// kept within it. A dimension with no entry keeps all its
	// subdimensions.
	EnabledSubdimensions map[string][]string `json:"enabledSubdimensions,omitempty"`

	// DisabledIndicators excludes individual indicators regardless of
	// dimension or subdimension state.
	DisabledIndicators map[string]bool `json:"disabledIndicators,omitempty"`

	// Weights carries optional per-dimension weights for weighted
	// aggregation. The default composite index ignores them; see
	// scoring.ComputeWeightedComposite.
	Weights map[string]float64 `json:"weights,omitempty"`
}

// CompleteToolID is the id of the identity tool.
const CompleteToolID = "complete"

// IsComplete reports whether the tool is the identity filter. A nil tool
// behaves as the identity too.
func (t *Tool) IsComplete() bool {
	return t == nil || t.ID == CompleteToolID
}
