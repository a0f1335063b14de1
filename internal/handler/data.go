package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Dan9191/finance-tracker/internal/service"
)

// Export downloads the caller's data as ?format=json|csv|xml
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	file, err := h.svc.Export(r.Context(), format)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Body)
}

// Import restores a signed JSON export
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.svc.Import(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, fmt.Sprintf("Imported %d expenses successfully", result.Expenses), result)
}
