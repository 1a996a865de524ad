package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

const (
	msgMissingUsername     = "имя пользователя обязательно"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность встречи"
	msgMissingDuration     = "длительность или тип встречи обязательны"
	msgEventTypeNotFound   = "тип встречи не найден"
	msgDataUnavailable     = "хранилище временно недоступно"
	msgInvalidInput        = "некорректные параметры запроса"
	msgCorruptWorkingHours = "рабочие часы пользователя повреждены"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{username}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (minutes) или eventType (url типа встречи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if username == "" {
		h.logger.Warn("GET /users/{username}/available-slots - Missing username")
		handlers.RespondBadRequest(w, msgMissingUsername)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /users/{username}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	eventTypeURL := query.Get("eventType")

	var duration int
	if durationStr := query.Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /users/{username}/available-slots - Invalid duration %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	} else if eventTypeURL == "" {
		h.logger.Warn("GET /users/{username}/available-slots - Missing duration and event type")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(username, dateStr, duration, eventTypeURL)
	if err != nil {
		h.logger.Warn("GET /users/{username}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /users/{username}/available-slots - Invalid duration: username=%s, error=%v", username, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /users/{username}/available-slots - Invalid input: username=%s, error=%v", username, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrEventTypeNotFound):
			h.logger.Warn("GET /users/{username}/available-slots - Event type not found: username=%s, event_type=%s",
				username, eventTypeURL)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrDataUnavailable):
			h.logger.Error("GET /users/{username}/available-slots - Store unavailable: username=%s, error=%v", username, err)
			handlers.RespondServiceUnavailable(w, msgDataUnavailable)

		case errors.Is(err, getAvailableSlots.ErrConfiguration):
			h.logger.Error("GET /users/{username}/available-slots - Corrupt working hours: username=%s, error=%v", username, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptWorkingHours)

		default:
			h.logger.Error("GET /users/{username}/available-slots - Failed to get slots: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /users/{username}/available-slots - Slots retrieved successfully: username=%s, date=%s, slots_count=%d",
		username, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
