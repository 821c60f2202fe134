package get_assignee_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/CMS-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidTeamID  = "некорректный ID бригады"
	msgInvalidParams  = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStaff GET /api/v1/staff/{staffId}/bookings
// Query params: startDate, endDate, status, includeInactive, withConflicts (опционально)
func (h *Handler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	h.handle(w, r, &staffID, nil)
}

// HandleTeam GET /api/v1/teams/{teamId}/bookings
// Query params: startDate, endDate, status, includeInactive, withConflicts (опционально)
func (h *Handler) HandleTeam(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	teamID, err := strconv.ParseInt(vars["teamId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /teams/{id}/bookings - Invalid team ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeamID)
		return
	}

	h.handle(w, r, nil, &teamID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, staffID, teamID *int64) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		staffID,
		teamID,
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("includeInactive"),
		query.Get("withConflicts"),
	)
	if err != nil {
		h.logger.Warn("GET assignee bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetAssigneeBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET assignee bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET assignee bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET assignee bookings - Retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
