package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"exclusion-diagnostic/internal/casefile"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Build(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, casefile.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	json.NewEncoder(w).Encode(rep)
}

func (h *Handler) GetReportPDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Build(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, casefile.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	data, err := RenderPDF(rep)
	if err != nil {
		http.Error(w, "PDF generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.pdf", id))
	w.Write(data)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/cases/{id}/report", h.GetReport)
	r.Get("/cases/{id}/report.pdf", h.GetReportPDF)
}
