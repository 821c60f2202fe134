package generate_series

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMS-SchedulingService/internal/api/handlers"
	generateSeries "github.com/m04kA/CMS-SchedulingService/internal/usecase/generate_series"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidRecurrence  = "некорректное правило повторения"
	msgSeriesTooLarge     = "серия раскрывается в слишком большое количество дат"
)

type Handler struct {
	useCase GenerateSeriesUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/series
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSeriesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/series - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/series - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSeries.ErrSeriesTooLarge):
			h.logger.Warn("POST /bookings/series - Series too large: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgSeriesTooLarge)

		case errors.Is(err, generateSeries.ErrInvalidRecurrence):
			h.logger.Warn("POST /bookings/series - Invalid recurrence: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, generateSeries.ErrInvalidInput):
			h.logger.Warn("POST /bookings/series - Invalid input: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/series - Failed to generate series: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Даже при частичных ошибках серия считается созданной
	status := http.StatusCreated
	if len(result.Created) == 0 {
		// Ни одна дата не прошла проверки
		status = http.StatusConflict
	}

	h.logger.Info("POST /bookings/series - Series generated: group_id=%s, created=%d, errors=%d, customer_id=%d",
		result.GroupID, len(result.Created), len(result.Errors), req.CustomerID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
