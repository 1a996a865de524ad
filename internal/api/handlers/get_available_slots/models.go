package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	Username        string   `json:"username"`
	DurationMinutes int      `json:"durationMinutes"`
	NoAvailability  bool     `json:"noAvailability"`
	Slots           []string `json:"slots"`
	Links           []string `json:"links"` // ссылки на форму бронирования для каждого слота
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	date := resp.Date.Format(domain.DateFormat)

	slots := make([]string, len(resp.Slots))
	links := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
		links[i] = fmt.Sprintf("?date=%s&time=%s", date, slots[i])
	}

	return &AvailableSlotsResponse{
		Date:            date,
		Username:        resp.Username,
		DurationMinutes: resp.DurationMinutes,
		NoAvailability:  resp.NoAvailability,
		Slots:           slots,
		Links:           links,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса (с парсингом даты).
// Дата разбирается в локальной зоне процесса.
func ToUseCaseRequest(username, dateStr string, durationMinutes int, eventTypeURL string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Username:        username,
		Date:            date,
		DurationMinutes: durationMinutes,
		EventTypeURL:    eventTypeURL,
	}, nil
}
