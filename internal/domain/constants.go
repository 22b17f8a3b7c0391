package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule values
const (
	DefaultGranularityMinutes = 30
	DefaultSlotHeightPx       = 48.0
)

// Business validation constants
const (
	MinDurationMinutes = 0 // блокировки могут иметь нулевую длительность
	MaxDurationMinutes = 480
	MaxNotesLength     = 500
	MaxNameLength      = 100
)

// ActiveStatuses статусы записей, занимающих свой интервал времени.
// Используется при фильтрации записей для сетки дня.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusBlocked,
}
