package get_series

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidGroupID = "некорректный ID серии"
	msgNotFound       = "серия не найдена"
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

// Handle GET /api/v1/bookings/series/{groupId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID := vars["groupId"]

	if _, err := uuid.Parse(groupID); err != nil {
		h.logger.Warn("GET /bookings/series/{id} - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	result, err := h.service.GetRecurringGroup(r.Context(), groupID)
	if err != nil {
		h.logger.Error("GET /bookings/series/{id} - Failed to get series: group_id=%s, error=%v", groupID, err)
		handlers.RespondInternalError(w)
		return
	}

	if len(result.Bookings) == 0 {
		h.logger.Warn("GET /bookings/series/{id} - Series not found: group_id=%s", groupID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("GET /bookings/series/{id} - Series retrieved: group_id=%s, count=%d", groupID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
