package schedule

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// Box абсолютная позиция записи в вертикальной сетке дня, в пикселях
type Box struct {
	Top    float64
	Height float64
}

// Layout параметры раскладки дневной сетки для одного экрана.
// PxPerMinute выводится из высоты слота: SlotHeightPx / granularity.
type Layout struct {
	Window       Window
	PxPerMinute  float64
	SlotHeightPx float64
}

// NewLayout создает раскладку для окна дня с заданной высотой слота
func NewLayout(window Window, slotHeightPx float64, granularityMinutes int) Layout {
	return Layout{
		Window:       window,
		PxPerMinute:  slotHeightPx / float64(granularityMinutes),
		SlotHeightPx: slotHeightPx,
	}
}

// LayoutAppointment вычисляет вертикальную позицию и высоту записи.
// Высота не бывает меньше высоты одного слота: блокировки с нулевой
// длительностью остаются видимыми и кликабельными. Записи, выходящие
// за границы окна, не обрезаются. Функция тотальна: некорректное время
// начала дает позицию начала окна, отрицательная длительность — ноль.
func (l Layout) LayoutAppointment(appt *domain.Appointment) Box {
	startMinutes, err := appt.StartTime.MinutesOfDay()
	if err != nil {
		startMinutes = l.Window.StartMinutes()
	}

	top := float64(startMinutes-l.Window.StartMinutes()) * l.PxPerMinute

	height := float64(appt.EffectiveDuration()) * l.PxPerMinute
	if height < l.SlotHeightPx {
		height = l.SlotHeightPx
	}

	return Box{Top: top, Height: height}
}

// CurrentTimeIndicatorTop возвращает позицию индикатора текущего времени.
// nil, если date не сегодняшний календарный день или now вне рабочего окна.
func (l Layout) CurrentTimeIndicatorTop(now, date time.Time) *float64 {
	if !IsSameDay(now, date) {
		return nil
	}

	minutes := now.Hour()*60 + now.Minute()
	if !l.Window.Contains(minutes) {
		return nil
	}

	top := float64(minutes-l.Window.StartMinutes()) * l.PxPerMinute
	return &top
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
