package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"exclusion-diagnostic/internal/alerts"
	"exclusion-diagnostic/internal/casefile"
	"exclusion-diagnostic/internal/schema"
	"exclusion-diagnostic/internal/scoring"
	"exclusion-diagnostic/internal/tooling"
)

// CaseSource loads case records for reporting.
type CaseSource interface {
	GetCase(ctx context.Context, id uuid.UUID) (*casefile.Case, error)
}

// ConfigSource resolves the schema and tool the case was created with.
type ConfigSource interface {
	EffectiveSchema(ctx context.Context) (*schema.Schema, error)
	ToolByID(ctx context.Context, id string) (*tooling.Tool, error)
}

// DimensionReport is the three-way severity view for one dimension:
// the professional's manual valuation, the objective score derived from
// indicator answers and risks, and the inverted self-perception.
type DimensionReport struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Valuation      int     `json:"valuation"`
	Objective      float64 `json:"objective"`
	SelfPerception float64 `json:"selfPerception"`
	RisksChecked   int     `json:"risksChecked"`
}

// Report is the full diagnostic summary rendered for a case.
type Report struct {
	CaseID      uuid.UUID            `json:"caseId"`
	Title       string               `json:"title"`
	ToolName    string               `json:"toolName"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Composite   float64              `json:"composite"`
	Band        scoring.SeverityBand `json:"band"`
	Dimensions  []DimensionReport    `json:"dimensions"`
	Alerts      []alerts.Alert       `json:"alerts"`
	TotalRisks  int                  `json:"totalRisks"`

	// Progress is the share of currently visible indicators that have
	// an answer, in [0,1].
	Progress float64 `json:"progress"`
}

type Service struct {
	cases  CaseSource
	config ConfigSource
}

func NewService(cases CaseSource, config ConfigSource) *Service {
	return &Service{cases: cases, config: config}
}

// Build assembles the report for a case against its tool-filtered schema.
func (s *Service) Build(ctx context.Context, caseID uuid.UUID) (*Report, error) {
	c, err := s.cases.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	full, err := s.config.EffectiveSchema(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load schema")
	}
	tool, err := s.config.ToolByID(ctx, c.ToolID)
	if err != nil {
		tool = tooling.CompleteTool()
	}
	filtered := tooling.FilterSchema(full, tool)

	rep := &Report{
		CaseID:      c.ID,
		Title:       c.Title,
		ToolName:    c.ToolName,
		GeneratedAt: time.Now(),
		Composite:   scoring.ComputeComposite(c.Answers, filtered),
		TotalRisks:  scoring.CountRisks(c.Answers),
		Alerts:      alerts.Detect(c.Answers),
	}
	rep.Band = scoring.ClassifySeverity(rep.Composite)
	if rep.Alerts == nil {
		rep.Alerts = []alerts.Alert{}
	}

	var visible, answered int
	for _, dim := range filtered.Dimensions {
		da := c.Answers.Dimension(dim.ID)

		checked := 0
		for _, on := range da.Risks {
			if on {
				checked++
			}
		}
		rep.Dimensions = append(rep.Dimensions, DimensionReport{
			ID:             dim.ID,
			Title:          dim.Title,
			Valuation:      da.Valuation,
			Objective:      scoring.ComputeObjective(c.Answers, dim.ID, filtered),
			SelfPerception: scoring.SelfPerceptionScore(da),
			RisksChecked:   checked,
		})

		for _, sub := range dim.Subdimensions {
			for _, ind := range sub.Indicators {
				if !schema.Evaluate(ind.DependsOn, da) {
					continue
				}
				visible++
				if !da.Indicator(ind.ID).IsEmpty() {
					answered++
				}
			}
		}
	}
	if visible > 0 {
		rep.Progress = float64(answered) / float64(visible)
	}

	return rep, nil
}
