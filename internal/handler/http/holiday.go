package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/holiday"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type HolidayHandler interface {
	ListForCycle(w http.ResponseWriter, r *http.Request)
	SaveHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func (h *holidayHandlerImpl) ListForCycle(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	holidays, err := h.holidayService.ListForCycle(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}

type saveHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (h *holidayHandlerImpl) SaveHoliday(w http.ResponseWriter, r *http.Request) {
	var req saveHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	date, err := paycycle.ParseLocalDate(req.Date)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	saved, err := h.holidayService.SaveHoliday(r.Context(), date, req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday saved", saved)
}

func (h *holidayHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := paycycle.ParseLocalDate(chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.holidayService.RemoveHoliday(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday removed", nil)
}
