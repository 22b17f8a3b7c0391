package get_day_schedule

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

// Request модель запроса дневной сетки
type Request struct {
	Date     time.Time // Дата сетки (без времени)
	BarberID *int64    // ID барбера; nil — все барберы
}

// Response модель ответа с готовой к отрисовке дневной сеткой
type Response struct {
	Date         time.Time       // Дата сетки
	Window       schedule.Window // Рабочее окно дня
	SlotHeightPx float64         // Высота строки сетки в пикселях
	PxPerMinute  float64         // Пиксельная плотность сетки
	RowLabels    []string        // Подписи строк сетки ("8:00 AM", "8:30 AM", ...)
	Columns      []BarberColumn  // Колонки по барберам в порядке каталога
	IndicatorTop *float64        // Смещение индикатора текущего времени; nil — не показывать
}

// BarberColumn колонка сетки одного барбера
type BarberColumn struct {
	BarberID     int64
	BarberName   string
	PhotoURL     *string
	Appointments []AppointmentBox
}

// AppointmentBox запись с вычисленной геометрией в колонке
type AppointmentBox struct {
	Appointment *domain.Appointment
	Top         float64
	Height      float64
}
