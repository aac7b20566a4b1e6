package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/middleware"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	BatchCalculate(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	GetLatestSalary(w http.ResponseWriter, r *http.Request)
	GetFinalizedSalary(w http.ResponseWriter, r *http.Request)
	GetLatestFinalizedSalary(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	FinalizeAll(w http.ResponseWriter, r *http.Request)
	SaveAdjustment(w http.ResponseWriter, r *http.Request)
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
	CreateHold(w http.ResponseWriter, r *http.Request)
	ReleaseHold(w http.ResponseWriter, r *http.Request)
	ListHolds(w http.ResponseWriter, r *http.Request)
	SetOvertimeToggle(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.CalculatedBy == "" {
		req.CalculatedBy, _ = middleware.TokenSubject(r)
	}

	calc, err := h.salaryService.CalculateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, calc)
}

type batchCalculateRequest struct {
	Month     string `json:"month"`
	ChunkSize int    `json:"chunk_size,omitempty"`
}

func (h *salaryHandlerImpl) BatchCalculate(w http.ResponseWriter, r *http.Request) {
	var req batchCalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.BatchCalculate(r.Context(), req.Month, req.ChunkSize)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	h.getSalary(w, r, false)
}

// GetFinalizedSalary backs the employee portal, which must never see drafts.
func (h *salaryHandlerImpl) GetFinalizedSalary(w http.ResponseWriter, r *http.Request) {
	h.getSalary(w, r, true)
}

func (h *salaryHandlerImpl) getSalary(w http.ResponseWriter, r *http.Request, finalizedOnly bool) {
	employeeCode := chi.URLParam(r, "employeeCode")
	month := chi.URLParam(r, "month")

	record, err := h.salaryService.GetSalary(r.Context(), employeeCode, month, finalizedOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

func (h *salaryHandlerImpl) GetLatestSalary(w http.ResponseWriter, r *http.Request) {
	h.getLatestSalary(w, r, false)
}

func (h *salaryHandlerImpl) GetLatestFinalizedSalary(w http.ResponseWriter, r *http.Request) {
	h.getLatestSalary(w, r, true)
}

func (h *salaryHandlerImpl) getLatestSalary(w http.ResponseWriter, r *http.Request, finalizedOnly bool) {
	employeeCode := chi.URLParam(r, "employeeCode")

	record, err := h.salaryService.GetLatestSalary(r.Context(), employeeCode, finalizedOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

func (h *salaryHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")
	month := chi.URLParam(r, "month")
	actor, _ := middleware.TokenSubject(r)

	if err := h.salaryService.FinalizeSalary(r.Context(), employeeCode, month, actor); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary finalized", nil)
}

type finalizeAllRequest struct {
	Month string `json:"month"`
}

func (h *salaryHandlerImpl) FinalizeAll(w http.ResponseWriter, r *http.Request) {
	var req finalizeAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	actor, _ := middleware.TokenSubject(r)

	count, err := h.salaryService.FinalizeAllSalaries(r.Context(), req.Month, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salaries finalized", map[string]int64{"finalized_count": count})
}

func (h *salaryHandlerImpl) SaveAdjustment(w http.ResponseWriter, r *http.Request) {
	var req salary.SaveAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	adj, err := h.salaryService.SaveAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Adjustment saved", adj)
}

func (h *salaryHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")
	month := chi.URLParam(r, "month")

	adjustments, err := h.salaryService.ListAdjustments(r.Context(), employeeCode, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, adjustments)
}

func (h *salaryHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid adjustment id", nil)
		return
	}

	if err := h.salaryService.DeleteAdjustment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}

func (h *salaryHandlerImpl) CreateHold(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	hold, err := h.salaryService.CreateHold(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Hold created", hold)
}

func (h *salaryHandlerImpl) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid hold id", nil)
		return
	}
	actor, _ := middleware.TokenSubject(r)

	if err := h.salaryService.ReleaseHold(r.Context(), id, actor); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Hold released", nil)
}

func (h *salaryHandlerImpl) ListHolds(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	holds, err := h.salaryService.ListHolds(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holds)
}

func (h *salaryHandlerImpl) SetOvertimeToggle(w http.ResponseWriter, r *http.Request) {
	var req salary.SetOvertimeToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.salaryService.SetOvertimeToggle(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime toggle updated", nil)
}
