package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

type PunchHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MyPunches(w http.ResponseWriter, r *http.Request)
	MyBalance(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService     punch.PunchService
	timesheetService timesheet.TimesheetService
}

func NewPunchHandler(punchService punch.PunchService, timesheetService timesheet.TimesheetService) PunchHandler {
	return &PunchHandlerImpl{
		punchService:     punchService,
		timesheetService: timesheetService,
	}
}

// ClockIn implements PunchHandler.
func (h *PunchHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var clockInReq punch.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	recorded, err := h.punchService.ClockIn(r.Context(), employeeID, clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock-in recorded", recorded)
}

// ClockOut implements PunchHandler.
func (h *PunchHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var clockOutReq punch.ClockOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
			slog.Error("ClockOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	recorded, err := h.punchService.ClockOut(r.Context(), employeeID, clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock-out recorded", recorded)
}

// MyPunches implements PunchHandler. Expects start and end query parameters
// as YYYY-MM-DD dates.
func (h *PunchHandlerImpl) MyPunches(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, startOK := validator.IsValidDate(r.URL.Query().Get("start"))
	end, endOK := validator.IsValidDate(r.URL.Query().Get("end"))
	if !startOK || !endOK {
		response.HandleError(w, punch.ErrInvalidRange)
		return
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.Local)

	punches, err := h.punchService.PunchesInRange(r.Context(), employeeID, start, end)
	if err != nil {
		slog.Error("MyPunches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.PunchResponse{
			ID:         p.ID,
			EmployeeID: p.EmployeeID,
			Date:       p.Date.Format("2006-01-02"),
			ClockIn:    formatClock(p.ClockIn),
			ClockOut:   formatClock(p.ClockOut),
		})
	}

	response.Success(w, responses)
}

// MyBalance implements PunchHandler. Expects a month query parameter as
// YYYY-MM.
func (h *PunchHandlerImpl) MyBalance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.timesheetService.MonthlyBalance(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("MyBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}
