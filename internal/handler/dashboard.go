package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Dan9191/finance-tracker/internal/finance"
	"github.com/Dan9191/finance-tracker/internal/service"
	"github.com/google/uuid"
)

type materializeRequest struct {
	Date *service.Date `json:"date"`
	IDs  []uuid.UUID   `json:"ids"`
}

// Dashboard returns the derived figures for ?period=week|month around ?date
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ref, valid := h.queryDate(w, r, "date")
	if !valid {
		return
	}
	d, err := h.svc.Dashboard(r.Context(), finance.ParsePeriodKind(r.URL.Query().Get("period")), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", d)
}

// PendingAutoExpenses lists charges not yet recorded in the month of ?date
func (h *Handler) PendingAutoExpenses(w http.ResponseWriter, r *http.Request) {
	ref, valid := h.queryDate(w, r, "date")
	if !valid {
		return
	}
	pending, err := h.svc.PendingAutoExpenses(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", pending)
}

// MaterializeAutoExpenses records pending charges; the body may narrow them to ids
// and pick the reference date
func (h *Handler) MaterializeAutoExpenses(w http.ResponseWriter, r *http.Request) {
	ref, valid := h.queryDate(w, r, "date")
	if !valid {
		return
	}
	// the body is optional
	var in materializeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		badBody(w, err)
		return
	}
	if in.Date != nil && !in.Date.IsZero() {
		ref = in.Date.Time
	}

	created, err := h.svc.MaterializeAutoExpenses(r.Context(), ref, in.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	n := len(created)
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: fmt.Sprintf("%d expense(s) added", n),
		Count:   &n,
		Data:    created,
	})
}
