package create_appointment

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("booking draft not found")

	// ErrDraftIncomplete возвращается, когда в черновике не хватает данных для записи
	ErrDraftIncomplete = errors.New("booking draft is incomplete")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken возвращается, когда выбранный слот уже занят
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInvalidDate возвращается при дате или времени в прошлом
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочего окна дня
	ErrOutsideWorkingHours = errors.New("time is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
