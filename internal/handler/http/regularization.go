package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/middleware"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type RegularizationHandler interface {
	SaveRegularization(w http.ResponseWriter, r *http.Request)
	ListForCycle(w http.ResponseWriter, r *http.Request)
	RemoveRegularization(w http.ResponseWriter, r *http.Request)
}

type regularizationHandlerImpl struct {
	regularizationService regularization.RegularizationService
}

func NewRegularizationHandler(regularizationService regularization.RegularizationService) RegularizationHandler {
	return &regularizationHandlerImpl{regularizationService: regularizationService}
}

func (h *regularizationHandlerImpl) SaveRegularization(w http.ResponseWriter, r *http.Request) {
	var req regularization.SaveRegularizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.ApprovedBy == "" {
		req.ApprovedBy, _ = middleware.TokenSubject(r)
	}

	reg, err := h.regularizationService.SaveRegularization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Regularization saved", reg)
}

func (h *regularizationHandlerImpl) ListForCycle(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")
	month := chi.URLParam(r, "month")

	regs, err := h.regularizationService.ListForCycle(r.Context(), employeeCode, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, regs)
}

func (h *regularizationHandlerImpl) RemoveRegularization(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")

	date, err := paycycle.ParseLocalDate(chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.regularizationService.RemoveRegularization(r.Context(), employeeCode, date); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Regularization removed", nil)
}
