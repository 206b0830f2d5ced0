package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/punchlog"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/response"
)

type PunchLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type punchLogHandlerImpl struct {
	punchLogService punchlog.PunchLogService
}

func NewPunchLogHandler(punchLogService punchlog.PunchLogService) PunchLogHandler {
	return &punchLogHandlerImpl{
		punchLogService: punchLogService,
	}
}

// List implements PunchLogHandler.
func (h *punchLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	results, err := h.punchLogService.ListEvents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Replace implements PunchLogHandler.
func (h *punchLogHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Event index must be a number", nil)
		return
	}

	var req punchlog.ReplaceEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Replace event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.Index = index

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.punchLogService.ReplaceEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event replaced successfully", result)
}

// Delete implements PunchLogHandler.
func (h *punchLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Event index must be a number", nil)
		return
	}

	if err := h.punchLogService.DeleteEvent(r.Context(), employeeID, index); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}
