package casefile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"exclusion-diagnostic/internal/alerts"
	"exclusion-diagnostic/internal/answers"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateCaseRequest struct {
	Title  string `json:"title"`
	ToolID string `json:"toolId"`
}

func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ToolID == "" {
		http.Error(w, "Missing toolId", http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateCase(r.Context(), req.Title, req.ToolID)
	if err != nil {
		http.Error(w, "Failed to create case: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.svc.ListCases(r.Context())
	if err != nil {
		http.Error(w, "Failed to list cases", http.StatusInternalServerError)
		return
	}
	if cases == nil {
		cases = []Case{}
	}
	json.NewEncoder(w).Encode(cases)
}

func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	json.NewEncoder(w).Encode(c)
}

type RenameCaseRequest struct {
	Title string `json:"title"`
}

func (h *Handler) RenameCase(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	var req RenameCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.svc.RenameCase(r.Context(), id, req.Title)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	json.NewEncoder(w).Encode(c)
}

type UpdateAnswersResponse struct {
	Case   *Case          `json:"case"`
	Alerts []alerts.Alert `json:"alerts"`
}

func (h *Handler) UpdateAnswers(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}
	dimensionID := chi.URLParam(r, "dimensionID")

	var da answers.DimensionAnswers
	if err := json.NewDecoder(r.Body).Decode(&da); err != nil {
		http.Error(w, "Invalid answers payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	c, fired, err := h.svc.UpdateDimensionAnswers(r.Context(), id, dimensionID, da)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	if fired == nil {
		fired = []alerts.Alert{}
	}
	json.NewEncoder(w).Encode(UpdateAnswersResponse{Case: c, Alerts: fired})
}

func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCase(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/cases", h.CreateCase)
	r.Get("/cases", h.ListCases)
	r.Get("/cases/{id}", h.GetCase)
	r.Patch("/cases/{id}", h.RenameCase)
	r.Put("/cases/{id}/answers/{dimensionID}", h.UpdateAnswers)
	r.Delete("/cases/{id}", h.DeleteCase)
}
