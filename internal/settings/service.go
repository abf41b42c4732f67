package settings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"exclusion-diagnostic/internal/schema"
	"exclusion-diagnostic/internal/tooling"
)

// Storage keys. A stored schema override replaces the compiled-in
// default wholesale; resetting is deleting the key.
const (
	keySchemaOverride = "schema_override"
	keyCustomTools    = "custom_tools"
	keyActiveTools    = "active_tools"
)

// customToolPrefix marks ids of client-created tools; built-in ids
// never carry it.
const customToolPrefix = "custom_"

type Service interface {
	EffectiveSchema(ctx context.Context) (*schema.Schema, error)
	SaveSchemaOverride(ctx context.Context, s *schema.Schema) error
	ResetSchema(ctx context.Context) error

	Tools(ctx context.Context) ([]*tooling.Tool, error)
	ToolByID(ctx context.Context, id string) (*tooling.Tool, error)
	SaveCustomTool(ctx context.Context, t *tooling.Tool) (*tooling.Tool, error)
	DeleteCustomTool(ctx context.Context, id string) error
	SetActiveTools(ctx context.Context, ids []string) error
}

type service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) Service {
	return &service{store: store, log: log}
}

func (s *service) EffectiveSchema(ctx context.Context) (*schema.Schema, error) {
	raw, err := s.store.Get(ctx, keySchemaOverride)
	if errors.Is(err, ErrNoValue) {
		return schema.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var override schema.Schema
	if err := json.Unmarshal(raw, &override); err != nil {
		// A corrupt override must not take the whole service down; the
		// compiled-in default is always a valid fallback.
		s.log.Error("stored schema override is corrupt, using default", zap.Error(err))
		return schema.Default(), nil
	}
	return &override, nil
}

func (s *service) SaveSchemaOverride(ctx context.Context, sch *schema.Schema) error {
	if _, err := schema.BuildIndex(sch); err != nil {
		return errors.Wrap(err, "schema validation failed")
	}
	raw, err := json.Marshal(sch)
	if err != nil {
		return errors.Wrap(err, "marshal schema")
	}
	return s.store.Save(ctx, keySchemaOverride, raw)
}

func (s *service) ResetSchema(ctx context.Context) error {
	return s.store.Delete(ctx, keySchemaOverride)
}

// Tools returns the identity tool, the presets and the stored custom
// tools, with the Active flag resolved against the active-tool list.
// With no stored list, the identity tool and presets are active and
// customs keep their own flag. Customs and the active list are loaded
// in a single round trip.
func (s *service) Tools(ctx context.Context) ([]*tooling.Tool, error) {
	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var customs []*tooling.Tool
	if raw, ok := stored[keyCustomTools]; ok {
		if err := json.Unmarshal(raw, &customs); err != nil {
			return nil, errors.Wrap(err, "unmarshal custom tools")
		}
	}

	all := append([]*tooling.Tool{tooling.CompleteTool()}, tooling.Presets()...)
	all = append(all, customs...)

	if raw, ok := stored[keyActiveTools]; ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, errors.Wrap(err, "unmarshal active tool ids")
		}
		active := make(map[string]bool, len(ids))
		for _, id := range ids {
			active[id] = true
		}
		for _, t := range all {
			t.Active = active[t.ID]
		}
	}
	return all, nil
}

func (s *service) ToolByID(ctx context.Context, id string) (*tooling.Tool, error) {
	all, err := s.Tools(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.Errorf("unknown tool %q", id)
}

func (s *service) SaveCustomTool(ctx context.Context, t *tooling.Tool) (*tooling.Tool, error) {
	if t.Name == "" {
		return nil, errors.New("tool name is required")
	}
	if t.ID == "" {
		t.ID = customToolPrefix + uuid.NewString()
	}
	// DeleteCustomTool recognizes customs by the prefix, so an id
	// without it would be impossible to delete later.
	if !strings.HasPrefix(t.ID, customToolPrefix) {
		return nil, errors.Errorf("custom tool id %q must start with %q", t.ID, customToolPrefix)
	}

	customs, err := s.customTools(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range customs {
		if existing.ID == t.ID {
			customs[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		customs = append(customs, t)
	}

	if err := s.saveCustomTools(ctx, customs); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteCustomTool(ctx context.Context, id string) error {
	if !strings.HasPrefix(id, customToolPrefix) {
		return errors.Errorf("tool %q is built in and cannot be deleted", id)
	}

	customs, err := s.customTools(ctx)
	if err != nil {
		return err
	}

	kept := customs[:0]
	found := false
	for _, t := range customs {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return errors.Errorf("unknown tool %q", id)
	}
	return s.saveCustomTools(ctx, kept)
}

func (s *service) SetActiveTools(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return errors.Wrap(err, "marshal active tool ids")
	}
	return s.store.Save(ctx, keyActiveTools, raw)
}

func (s *service) customTools(ctx context.Context) ([]*tooling.Tool, error) {
	raw, err := s.store.Get(ctx, keyCustomTools)
	if errors.Is(err, ErrNoValue) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var customs []*tooling.Tool
	if err := json.Unmarshal(raw, &customs); err != nil {
		return nil, errors.Wrap(err, "unmarshal custom tools")
	}
	return customs, nil
}

func (s *service) saveCustomTools(ctx context.Context, customs []*tooling.Tool) error {
	raw, err := json.Marshal(customs)
	if err != nil {
		return errors.Wrap(err, "marshal custom tools")
	}
	return s.store.Save(ctx, keyCustomTools, raw)
}
