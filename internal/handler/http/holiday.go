package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/holiday"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/response"
)

type HolidayHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// Submit implements HolidayHandler.
func (h *holidayHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req holiday.SubmitHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.holidayService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday request submitted", result)
}

// Cancel implements HolidayHandler.
func (h *holidayHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	var req holiday.CancelHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Cancel holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.holidayService.Cancel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request cancelled", result)
}

// Get implements HolidayHandler.
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := holiday.HolidayFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := holiday.HolidayRequestStatus(status)
		filter.Status = &s
	}

	results, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements HolidayHandler.
func (h *holidayHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.holidayService.Approve, "Holiday request approved")
}

// Reject implements HolidayHandler.
func (h *holidayHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.holidayService.Reject, "Holiday request rejected")
}

func (h *holidayHandlerImpl) review(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req holiday.ReviewHolidayRequest) (holiday.HolidayResponse, error),
	message string,
) {
	var req holiday.ReviewHolidayRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Review holiday decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
