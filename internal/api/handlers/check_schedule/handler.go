package check_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMS-SchedulingService/internal/api/handlers"
	checkSchedule "github.com/m04kA/CMS-SchedulingService/internal/usecase/check_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase CheckScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CheckScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/check
// Консультативная проверка: ответ не резервирует интервал
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/check - Failed to check schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/check - Check completed: available=%t", result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
