package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Username        string    // Владелец календаря
	Date            time.Time // Дата (время суток игнорируется)
	DurationMinutes int       // Длительность встречи; 0 - взять из типа встречи
	EventTypeURL    string    // Тип встречи, используется если DurationMinutes не задан
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time
	Username        string
	DurationMinutes int
	NoAvailability  bool               // На этот день недели рабочие часы не объявлены
	Slots           []types.TimeString // Времена начала в хронологическом порядке
}
