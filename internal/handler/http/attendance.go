package http

import (
	"encoding/json"
	"net/http"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CalculateMonthlyHours(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) CalculateMonthlyHours(w http.ResponseWriter, r *http.Request) {
	var req attendance.MonthlyHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.CalculateMonthlyHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
