package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/timeclock"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/response"
)

type TimeclockHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

// Punch implements TimeclockHandler.
func (h *timeclockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeclockService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// Status implements TimeclockHandler.
func (h *timeclockHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	var req timeclock.StatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeclockService.Status(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
