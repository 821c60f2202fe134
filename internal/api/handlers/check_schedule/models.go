package check_schedule

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	checkSchedule "github.com/m04kA/CMS-SchedulingService/internal/usecase/check_schedule"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// CheckScheduleRequest HTTP request model
type CheckScheduleRequest struct {
	StaffID          *int64  `json:"staffId,omitempty"`
	TeamID           *int64  `json:"teamId,omitempty"`
	Date             string  `json:"date"`              // "2025-10-15"
	EndDate          *string `json:"endDate,omitempty"` // для многодневных работ
	StartTime        string  `json:"startTime"`         // "10:00"
	EndTime          string  `json:"endTime"`
	ExcludeBookingID *int64  `json:"excludeBookingId,omitempty"` // для проверки переноса
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckScheduleRequest) ToUseCaseRequest() (*checkSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkSchedule.Request{
		StaffID:          r.StaffID,
		TeamID:           r.TeamID,
		Date:             date,
		EndDate:          endDate,
		StartTime:        startTime,
		EndTime:          endTime,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}
