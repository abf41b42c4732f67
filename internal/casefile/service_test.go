package casefile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exclusion-diagnostic/internal/alerts"
	"exclusion-diagnostic/internal/answers"
	"exclusion-diagnostic/internal/schema"
	"exclusion-diagnostic/internal/tooling"
)

type memoryRepo struct {
	cases map[uuid.UUID]*Case
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{cases: map[uuid.UUID]*Case{}}
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memoryRepo) List(_ context.Context) ([]Case, error) {
	var out []Case
	for _, c := range r.cases {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memoryRepo) Save(_ context.Context, c *Case) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()
	copied := *c
	r.cases[c.ID] = &copied
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.cases[id]; !ok {
		return ErrNotFound
	}
	delete(r.cases, id)
	return nil
}

type fakeTools struct{}

func (fakeTools) EffectiveSchema(context.Context) (*schema.Schema, error) {
	return schema.Default(), nil
}

func (fakeTools) ToolByID(_ context.Context, id string) (*tooling.Tool, error) {
	if id == tooling.CompleteToolID {
		return tooling.CompleteTool(), nil
	}
	for _, p := range tooling.Presets() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

type fakeNotifier struct {
	fired chan alerts.Alert
}

func (n *fakeNotifier) NotifyAlert(_ context.Context, _ Case, a alerts.Alert) error {
	n.fired <- a
	return nil
}

func newTestService(t *testing.T) (Service, *memoryRepo, *fakeNotifier) {
	t.Helper()
	repo := newMemoryRepo()
	notifier := &fakeNotifier{fired: make(chan alerts.Alert, 4)}
	svc := NewService(repo, fakeTools{}, notifier, zap.NewNop())
	return svc, repo, notifier
}

func TestCreateCase_SnapshotsTool(t *testing.T) {
	svc, _, _ := newTestService(t)

	c, err := svc.CreateCase(context.Background(), "Family R.", "express_triage")
	require.NoError(t, err)

	assert.Equal(t, "Family R.", c.Title)
	assert.Equal(t, "express_triage", c.ToolID)
	assert.Equal(t, "Express triage", c.ToolName)
	assert.NotEmpty(t, c.ToolColor)
	assert.NotNil(t, c.Answers)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCreateCase_DefaultsTitleAndRejectsUnknownTool(t *testing.T) {
	svc, _, _ := newTestService(t)

	c, err := svc.CreateCase(context.Background(), "", "complete")
	require.NoError(t, err)
	assert.Equal(t, "Untitled diagnostic", c.Title)

	_, err = svc.CreateCase(context.Background(), "x", "ghost_tool")
	assert.Error(t, err)
}

func TestUpdateDimensionAnswers_PersistsAndReturnsAlerts(t *testing.T) {
	svc, repo, _ := newTestService(t)
	c, err := svc.CreateCase(context.Background(), "Case A", "complete")
	require.NoError(t, err)

	da := answers.DimensionAnswers{
		Valuation: 3,
		Indicators: map[string]answers.Value{
			"ind1_1_1": answers.String("unemployed_over_1y"),
		},
		Risks: map[string]bool{"risk_d1_1": true},
	}
	updated, fired, err := svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim1", da)
	require.NoError(t, err)
	assert.Empty(t, fired)
	assert.Equal(t, 3, updated.Answers.Dimension("dim1").Valuation)

	stored, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, stored.Answers.RiskChecked("dim1", "risk_d1_1"))
}

func TestUpdateDimensionAnswers_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	c, err := svc.CreateCase(context.Background(), "Case A", "express_triage")
	require.NoError(t, err)

	// dim3 is not enabled by the express triage tool.
	_, _, err = svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim3", answers.DimensionAnswers{})
	assert.Error(t, err)

	_, _, err = svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim1", answers.DimensionAnswers{Valuation: 7})
	assert.Error(t, err)

	bad := 9
	_, _, err = svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim1", answers.DimensionAnswers{SelfPerception: &bad})
	assert.Error(t, err)
}

func TestUpdateDimensionAnswers_NotifiesNewCriticalAlerts(t *testing.T) {
	svc, _, notifier := newTestService(t)
	c, err := svc.CreateCase(context.Background(), "Case A", "complete")
	require.NoError(t, err)

	_, fired, err := svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim4",
		answers.DimensionAnswers{Risks: map[string]bool{"risk_d4_1": true}})
	require.NoError(t, err)
	assert.Empty(t, fired)

	_, fired, err = svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim6",
		answers.DimensionAnswers{Risks: map[string]bool{"risk_d6_1": true}})
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.Equal(t, "vital_emergency", fired[0].ID)

	select {
	case a := <-notifier.fired:
		assert.Equal(t, "vital_emergency", a.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a notification for the critical alert")
	}

	// Re-saving the same dimension must not notify again: the alert was
	// already firing before the update.
	_, fired, err = svc.UpdateDimensionAnswers(context.Background(), c.ID, "dim6",
		answers.DimensionAnswers{Risks: map[string]bool{"risk_d6_1": true}})
	require.NoError(t, err)
	require.Len(t, fired, 1)

	select {
	case <-notifier.fired:
		t.Fatal("did not expect a repeat notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRenameAndDelete(t *testing.T) {
	svc, _, _ := newTestService(t)
	c, err := svc.CreateCase(context.Background(), "Old", "complete")
	require.NoError(t, err)

	renamed, err := svc.RenameCase(context.Background(), c.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Title)

	require.NoError(t, svc.DeleteCase(context.Background(), c.ID))
	_, err = svc.GetCase(context.Background(), c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteCase(context.Background(), c.ID), ErrNotFound)
}
