package bookingapi

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("bookingapi client: appointment not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("bookingapi client: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("bookingapi client: service not found")

	// ErrSlotTaken возвращается, когда backend отклонил создание записи
	// из-за занятого слота
	ErrSlotTaken = errors.New("bookingapi client: slot already taken")

	// ErrBadRequest возвращается, когда backend отклонил запрос как некорректный
	ErrBadRequest = errors.New("bookingapi client: bad request")

	// ErrUnauthorized возвращается при отказе backend'а в доступе
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе backend'а
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
