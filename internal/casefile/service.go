package casefile

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"exclusion-diagnostic/internal/alerts"
	"exclusion-diagnostic/internal/answers"
	"exclusion-diagnostic/internal/schema"
	"exclusion-diagnostic/internal/tooling"
)

// ToolProvider resolves the effective schema and the tool catalog. We
// define it here to decouple from the settings implementation.
type ToolProvider interface {
	EffectiveSchema(ctx context.Context) (*schema.Schema, error)
	ToolByID(ctx context.Context, id string) (*tooling.Tool, error)
}

// Notifier pushes urgent alerts to the supervision channel.
type Notifier interface {
	NotifyAlert(ctx context.Context, c Case, a alerts.Alert) error
}

type Service interface {
	CreateCase(ctx context.Context, title, toolID string) (*Case, error)
	GetCase(ctx context.Context, id uuid.UUID) (*Case, error)
	ListCases(ctx context.Context) ([]Case, error)
	RenameCase(ctx context.Context, id uuid.UUID, title string) (*Case, error)
	UpdateDimensionAnswers(ctx context.Context, id uuid.UUID, dimensionID string, da answers.DimensionAnswers) (*Case, []alerts.Alert, error)
	DeleteCase(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	tools    ToolProvider
	notifier Notifier
	log      *zap.Logger
}

func NewService(repo Repository, tools ToolProvider, notifier Notifier, log *zap.Logger) Service {
	return &service{
		repo:     repo,
		tools:    tools,
		notifier: notifier,
		log:      log,
	}
}

func (s *service) CreateCase(ctx context.Context, title, toolID string) (*Case, error) {
	tool, err := s.tools.ToolByID(ctx, toolID)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve tool %q", toolID)
	}

	if title == "" {
		title = "Untitled diagnostic"
	}

	c := &Case{
		ID:        uuid.New(),
		Title:     title,
		ToolID:    tool.ID,
		ToolName:  tool.Name,
		ToolColor: tool.Color,
		Answers:   answers.Map{},
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCase(ctx context.Context, id uuid.UUID) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListCases(ctx context.Context) ([]Case, error) {
	return s.repo.List(ctx)
}

func (s *service) RenameCase(ctx context.Context, id uuid.UUID, title string) (*Case, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Title = title
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateDimensionAnswers replaces one dimension's answers and re-runs
// alert detection. It returns the saved case together with the full set
// of alerts currently firing; alerts that started firing with this
// update are pushed to the notifier in the background.
func (s *service) UpdateDimensionAnswers(ctx context.Context, id uuid.UUID, dimensionID string, da answers.DimensionAnswers) (*Case, []alerts.Alert, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.validateDimension(ctx, c, dimensionID, da); err != nil {
		return nil, nil, err
	}

	before := alerts.Detect(c.Answers)

	c.Answers[dimensionID] = da
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, nil, err
	}

	after := alerts.Detect(c.Answers)

	for _, a := range newlyFired(before, after) {
		if a.Severity != alerts.SeverityCritical {
			continue
		}
		s.log.Warn("critical compound-risk alert fired",
			zap.String("case_id", c.ID.String()),
			zap.String("alert_id", a.ID))
		if s.notifier == nil {
			continue
		}
		// Notification must not block or fail the answer update.
		go func(c Case, a alerts.Alert) {
			if err := s.notifier.NotifyAlert(context.Background(), c, a); err != nil {
				s.log.Error("alert notification failed",
					zap.String("case_id", c.ID.String()),
					zap.String("alert_id", a.ID),
					zap.Error(err))
			}
		}(*c, a)
	}

	return c, after, nil
}

func (s *service) DeleteCase(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateDimension is the typed boundary for incoming answers: the
// dimension must exist in the case's filtered schema and the numeric
// scores must be in range. Unknown indicator or risk ids are accepted
// and simply never read, matching the fail-hidden policy of the engine.
func (s *service) validateDimension(ctx context.Context, c *Case, dimensionID string, da answers.DimensionAnswers) error {
	full, err := s.tools.EffectiveSchema(ctx)
	if err != nil {
		return errors.Wrap(err, "load schema")
	}
	tool, err := s.tools.ToolByID(ctx, c.ToolID)
	if err != nil {
		// Tool deleted after case creation: fall back to the identity
		// view so the case stays editable.
		tool = tooling.CompleteTool()
	}
	filtered := tooling.FilterSchema(full, tool)

	found := false
	for _, dim := range filtered.Dimensions {
		if dim.ID == dimensionID {
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("dimension %q is not part of this case's diagnostic", dimensionID)
	}

	if da.Valuation < 0 || da.Valuation > 4 {
		return errors.Errorf("valuation %d out of range [0,4]", da.Valuation)
	}
	if da.SelfPerception != nil && (*da.SelfPerception < 1 || *da.SelfPerception > 5) {
		return errors.Errorf("selfPerception %d out of range [1,5]", *da.SelfPerception)
	}
	return nil
}

func newlyFired(before, after []alerts.Alert) []alerts.Alert {
	seen := make(map[string]bool, len(before))
	for _, a := range before {
		seen[a.ID] = true
	}
	var fresh []alerts.Alert
	for _, a := range after {
		if !seen[a.ID] {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
