package schedule

import (
	"fmt"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// TimeSlot предлагаемое время начала записи
type TimeSlot struct {
	// Value каноническое значение "HH:MM" (24 часа), ключ для backend'а
	Value types.TimeString
	// Display локализованная 12-часовая подпись с меридиемом ("8:30 AM")
	Display string
}

// GenerateSlots генерирует полную теоретическую сетку слотов для окна дня
// с фиксированным шагом granularityMinutes. Часы перебираются от floor(start)
// до floor(end) включительно; на последнем часе минуты обрезаются по
// конечной минуте окна. Результат упорядочен по возрастанию, без дублей,
// и детерминирован: повторный вызов дает идентичный список.
//
// Сетка не знает о занятости — ее пересекают с ответом backend'а
// через FilterAvailable.
func GenerateSlots(window Window, granularityMinutes int) []TimeSlot {
	if granularityMinutes <= 0 || window.EndHour <= window.StartHour {
		return []TimeSlot{}
	}

	firstHour := int(window.StartHour)
	lastHour := int(window.EndHour)
	endMinutes := window.EndMinutes()

	slots := make([]TimeSlot, 0, (lastHour-firstHour+1)*(60/granularityMinutes))

	for hour := firstHour; hour <= lastHour; hour++ {
		for minute := 0; minute < 60; minute += granularityMinutes {
			total := hour*60 + minute
			if total > endMinutes {
				break
			}

			value, err := types.NewTimeStringFromMinutes(total)
			if err != nil {
				// Окно валидируется конфигурацией; за границы суток не выходим
				continue
			}

			slots = append(slots, TimeSlot{
				Value:   value,
				Display: displayLabel(hour, minute),
			})
		}
	}

	return slots
}

// FilterAvailable оставляет только слоты, значения которых backend вернул
// как доступные, сохраняя исходный порядок. Если selectedDate — сегодня,
// дополнительно отбрасывает слоты, чье время не позже текущей минуты
// (строго будущее, без дополнительного буфера).
func FilterAvailable(candidates []TimeSlot, availableValues []types.TimeString, selectedDate, now time.Time) []TimeSlot {
	available := make(map[types.TimeString]struct{}, len(availableValues))
	for _, v := range availableValues {
		available[v] = struct{}{}
	}

	sameDay := IsSameDay(selectedDate, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	filtered := make([]TimeSlot, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := available[slot.Value]; !ok {
			continue
		}

		if sameDay {
			slotMinutes, err := slot.Value.MinutesOfDay()
			if err != nil || slotMinutes <= nowMinutes {
				continue
			}
		}

		filtered = append(filtered, slot)
	}

	return filtered
}

// displayLabel форматирует 12-часовую подпись слота с меридиемом
func displayLabel(hour, minute int) string {
	meridiem := "AM"
	displayHour := hour

	switch {
	case hour == 0:
		displayHour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		displayHour = hour - 12
		meridiem = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, meridiem)
}
