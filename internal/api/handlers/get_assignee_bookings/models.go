package get_assignee_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Ровно один из staffID/teamID должен быть ненулевым - это гарантирует роутинг
func ToServiceRequest(staffID, teamID *int64, startDateStr, endDateStr, statusStr, includeInactiveStr, withConflictsStr string) (*models.GetAssigneeBookingsRequest, error) {
	req := &models.GetAssigneeBookingsRequest{
		StaffID: staffID,
		TeamID:  teamID,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate is before startDate")
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	if withConflictsStr != "" {
		withConflicts, err := strconv.ParseBool(withConflictsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid withConflicts: %w", err)
		}
		req.WithConflicts = withConflicts
	}

	return req, nil
}
