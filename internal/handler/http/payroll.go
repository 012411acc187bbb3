package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	"github.com/pontohr/ponto-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MyPayslip(w http.ResponseWriter, r *http.Request)
	Terminate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// MyPayslip implements PayrollHandler. Expects a month query parameter as
// YYYY-MM.
func (h *PayrollHandlerImpl) MyPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := h.payrollService.MonthlyPayslip(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("MyPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// Terminate implements PayrollHandler.
func (h *PayrollHandlerImpl) Terminate(w http.ResponseWriter, r *http.Request) {
	var terminateReq payroll.TerminateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&terminateReq); err != nil {
		slog.Error("Terminate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	terminateReq.EmployeeID = chi.URLParam(r, "id")

	settlement, err := h.payrollService.Terminate(r.Context(), terminateReq)
	if err != nil {
		slog.Error("Terminate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee terminated", settlement)
}
