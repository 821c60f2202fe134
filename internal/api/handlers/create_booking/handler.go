package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/CMS-SchedulingService/internal/api/middleware"
	createBooking "github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgScheduleConflict   = "интервал пересекается с существующим бронированием"
	msgUnavailable        = "исполнитель недоступен в выбранный интервал"
	msgPackageNotFound    = "пакет услуг не найден"
	msgInvalidPrice       = "цена не указана или отрицательна"
	msgMissingJobName     = "для разовой работы необходимо указать название"
	msgNoMatchingTier     = "в пакете нет подходящего тарифа"
	msgInvalidBookingDate = "некорректная дата бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrScheduleConflict):
			h.logger.Warn("POST /bookings - Schedule conflict: customer_id=%d", req.CustomerID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)

		case errors.Is(err, createBooking.ErrAssigneeUnavailable):
			h.logger.Warn("POST /bookings - Assignee unavailable: customer_id=%d", req.CustomerID)
			handlers.RespondError(w, http.StatusConflict, msgUnavailable)

		case errors.Is(err, createBooking.ErrMissingPackage):
			h.logger.Warn("POST /bookings - Package not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrInvalidPrice):
			h.logger.Warn("POST /bookings - Invalid price: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, createBooking.ErrMissingJobName):
			h.logger.Warn("POST /bookings - Missing job name: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgMissingJobName)

		case errors.Is(err, createBooking.ErrNoMatchingTier):
			h.logger.Warn("POST /bookings - No matching tier: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgNoMatchingTier)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: customer_id=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	userID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, user_id=%d",
		result.ID, req.CustomerID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
