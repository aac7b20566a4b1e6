package holiday

import (
	"context"
	"fmt"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/holiday"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) ListForCycle(ctx context.Context, month string) ([]holiday.Holiday, error) {
	cycleStart, cycleEnd, err := paycycle.CycleRange(month)
	if err != nil {
		return nil, err
	}
	return s.holidayRepo.ListActiveBetween(ctx, cycleStart, cycleEnd)
}

func (s *HolidayServiceImpl) SaveHoliday(ctx context.Context, date paycycle.LocalDate, name string) (holiday.Holiday, error) {
	if validator.IsEmpty(name) {
		return holiday.Holiday{}, validator.ValidationErrors{{Field: "name", Message: "Holiday name is required"}}
	}

	h := holiday.Holiday{Date: date, Name: name, IsActive: true}
	if err := s.holidayRepo.Upsert(ctx, h); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to save holiday: %w", err)
	}
	return h, nil
}

func (s *HolidayServiceImpl) RemoveHoliday(ctx context.Context, date paycycle.LocalDate) error {
	return s.holidayRepo.Deactivate(ctx, date)
}
