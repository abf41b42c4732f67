package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"exclusion-diagnostic/internal/schema"
	"exclusion-diagnostic/internal/tooling"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GetSchema serves the effective schema, optionally filtered through a
// tool passed as ?toolId=.
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.EffectiveSchema(r.Context())
	if err != nil {
		http.Error(w, "Failed to load schema", http.StatusInternalServerError)
		return
	}

	if toolID := r.URL.Query().Get("toolId"); toolID != "" {
		tool, err := h.svc.ToolByID(r.Context(), toolID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s = tooling.FilterSchema(s, tool)
	}
	json.NewEncoder(w).Encode(s)
}

func (h *Handler) SaveSchema(w http.ResponseWriter, r *http.Request) {
	var s schema.Schema
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "Invalid schema payload", http.StatusBadRequest)
		return
	}

	if err := h.svc.SaveSchemaOverride(r.Context(), &s); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResetSchema(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetSchema(r.Context()); err != nil {
		http.Error(w, "Failed to reset schema", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.Tools(r.Context())
	if err != nil {
		http.Error(w, "Failed to load tools", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tools)
}

func (h *Handler) SaveTool(w http.ResponseWriter, r *http.Request) {
	var t tooling.Tool
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid tool payload", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.SaveCustomTool(r.Context(), &t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

func (h *Handler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCustomTool(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ActiveToolsRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) SetActiveTools(w http.ResponseWriter, r *http.Request) {
	var req ActiveToolsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetActiveTools(r.Context(), req.IDs); err != nil {
		http.Error(w, "Failed to save active tools", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToolStats tallies what a tool keeps of the effective schema.
func (h *Handler) ToolStats(w http.ResponseWriter, r *http.Request) {
	tool, err := h.svc.ToolByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s, err := h.svc.EffectiveSchema(r.Context())
	if err != nil {
		http.Error(w, "Failed to load schema", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tooling.CountItems(s, tool))
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/schema", h.GetSchema)
	r.Put("/schema", h.SaveSchema)
	r.Delete("/schema", h.ResetSchema)

	r.Get("/tools", h.ListTools)
	r.Post("/tools", h.SaveTool)
	r.Delete("/tools/{id}", h.DeleteTool)
	r.Put("/tools/active", h.SetActiveTools)
	r.Get("/tools/{id}/stats", h.ToolStats)
}
