package get_available_slots

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги (определяет длительность)
	BarberID  *int64    // ID барбера; nil — любой барбер
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time           // Дата, на которую запрашивались слоты
	ServiceID int64               // ID услуги
	BarberID  *int64              // ID барбера, если был задан
	Slots     []schedule.TimeSlot // Доступные слоты в хронологическом порядке
}
