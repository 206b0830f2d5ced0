package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/timesheet"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/response"
)

type TimesheetHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
	Anomalies(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Get implements TimesheetHandler.
func (h *timesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.TimesheetFilter{
		EmployeeID: chi.URLParam(r, "id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetTimesheet(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Roster implements TimesheetHandler.
func (h *timesheetHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetRoster(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Anomalies implements TimesheetHandler.
func (h *timesheetHandlerImpl) Anomalies(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ListAnomalies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
