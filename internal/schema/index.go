package schema

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Index is a lookup table over a schema, built once at load time. It is
// the place where structural invariants are enforced: indicator ids must
// be globally unique, and every dependsOn must reference an indicator in
// the same dimension.
type Index struct {
	Indicators map[string]*Indicator
	// DimensionOf maps indicator id to its owning dimension id.
	DimensionOf map[string]string
}

// BuildIndex walks the schema and returns its index, or the accumulated
// list of every structural violation found.
func BuildIndex(s *Schema) (*Index, error) {
	idx := &Index{
		Indicators:  make(map[string]*Indicator),
		DimensionOf: make(map[string]string),
	}

	var result *multierror.Error

	for di := range s.Dimensions {
		dim := &s.Dimensions[di]
		for si := range dim.Subdimensions {
			sub := &dim.Subdimensions[si]
			for ii := range sub.Indicators {
				ind := &sub.Indicators[ii]
				if ind.ID == "" {
					result = multierror.Append(result, errors.Errorf(
						"dimension %s subdimension %s: indicator with empty id", dim.ID, sub.ID))
					continue
				}
				if _, dup := idx.Indicators[ind.ID]; dup {
					result = multierror.Append(result, errors.Errorf(
						"duplicate indicator id %q", ind.ID))
					continue
				}
				idx.Indicators[ind.ID] = ind
				idx.DimensionOf[ind.ID] = dim.ID
			}
		}
	}

	// Dependency references are checked after the full id map exists so
	// forward references within a dimension are legal.
	for di := range s.Dimensions {
		dim := &s.Dimensions[di]
		for si := range dim.Subdimensions {
			sub := &dim.Subdimensions[si]
			for ii := range sub.Indicators {
				ind := &sub.Indicators[ii]
				if ind.DependsOn == nil {
					continue
				}
				ref := ind.DependsOn.IndicatorID
				owner, known := idx.DimensionOf[ref]
				if !known {
					result = multierror.Append(result, errors.Errorf(
						"indicator %q depends on unknown indicator %q", ind.ID, ref))
					continue
				}
				if owner != dim.ID {
					result = multierror.Append(result, errors.Errorf(
						"indicator %q (dimension %s) depends on %q in dimension %s: cross-dimension dependencies are not supported",
						ind.ID, dim.ID, ref, owner))
				}
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return idx, nil
}
