package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeclockHandler interface {
	IngestScan(w http.ResponseWriter, r *http.Request)
	ListScans(w http.ResponseWriter, r *http.Request)
	ListMyScans(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

// IngestScan implements TimeclockHandler.
func (h *timeclockHandlerImpl) IngestScan(w http.ResponseWriter, r *http.Request) {
	var req timeclock.IngestScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode scan ingest request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeclockService.IngestScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan event recorded", result)
}

// ListScans implements TimeclockHandler.
func (h *timeclockHandlerImpl) ListScans(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	from, okFrom := parseDateParam(r, "from")
	to, okTo := parseDateParam(r, "to")
	if !okFrom || !okTo {
		response.BadRequest(w, "Query parameters 'from' and 'to' must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.timeclockService.ListScans(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMyScans implements TimeclockHandler.
func (h *timeclockHandlerImpl) ListMyScans(w http.ResponseWriter, r *http.Request) {
	from, okFrom := parseDateParam(r, "from")
	to, okTo := parseDateParam(r, "to")
	if !okFrom || !okTo {
		response.BadRequest(w, "Query parameters 'from' and 'to' must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.timeclockService.ListMyScans(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
