package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/middleware"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	SaveMonthlyLeaves(w http.ResponseWriter, r *http.Request)
	GetMonthlyUsage(w http.ResponseWriter, r *http.Request)
	GetEntitlement(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) SaveMonthlyLeaves(w http.ResponseWriter, r *http.Request) {
	var req leave.SaveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy, _ = middleware.TokenSubject(r)
	}

	usage, err := h.leaveService.SaveMonthlyLeaves(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, usage)
}

func (h *leaveHandlerImpl) GetMonthlyUsage(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")
	month := chi.URLParam(r, "month")

	usage, err := h.leaveService.GetMonthlyUsage(r.Context(), employeeCode, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, usage)
}

func (h *leaveHandlerImpl) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "employeeCode")

	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	summary, err := h.leaveService.GetEntitlementSummary(r.Context(), employeeCode, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
