// Package schedule чистая математика сетки расписания: рабочие окна дня,
// генерация временных слотов и пиксельная раскладка записей в дневной сетке.
// Пакет не делает I/O; все функции детерминированы по своим аргументам.
package schedule

import "time"

// Window рабочие часы одного дня в дробных часах.
// EndHour может содержать получасовую дробь (19.5 = 19:30).
type Window struct {
	StartHour float64
	EndHour   float64
}

// StartMinutes возвращает начало окна в минутах с начала дня
func (w Window) StartMinutes() int {
	return int(w.StartHour * 60)
}

// EndMinutes возвращает конец окна в минутах с начала дня
func (w Window) EndMinutes() int {
	return int(w.EndHour * 60)
}

// Contains проверяет, попадают ли минуты с начала дня в окно
// (обе границы включительно)
func (w Window) Contains(minutesOfDay int) bool {
	return minutesOfDay >= w.StartMinutes() && minutesOfDay <= w.EndMinutes()
}

// WindowTable рабочие окна по дням недели, индекс time.Weekday.
// Публичная запись и административная сетка используют РАЗНЫЕ таблицы:
// их значения отличаются (например, воскресенье 18:30 против 19:00)
// и задаются явно для каждого экрана через конфигурацию.
type WindowTable [7]Window

// NewWindowTable собирает таблицу из окон по дням недели
func NewWindowTable(sunday, monday, tuesday, wednesday, thursday, friday, saturday Window) WindowTable {
	return WindowTable{
		time.Sunday:    sunday,
		time.Monday:    monday,
		time.Tuesday:   tuesday,
		time.Wednesday: wednesday,
		time.Thursday:  thursday,
		time.Friday:    friday,
		time.Saturday:  saturday,
	}
}

// ResolveDayWindow возвращает рабочее окно для даты.
// Зависит только от дня недели: две даты с одинаковым днем недели
// всегда дают одинаковое окно.
func (t WindowTable) ResolveDayWindow(date time.Time) Window {
	return t[date.Weekday()]
}
