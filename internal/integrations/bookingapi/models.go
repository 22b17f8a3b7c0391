package bookingapi

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// rawAppointment запись в том виде, как ее возвращает backend.
// Исторически у API несколько форм одной сущности: вложенные объекты
// услуги/клиента/барбера под разными ключами, длительность то в записи,
// то внутри услуги. Вся эта вариативность нормализуется здесь,
// в domain.Appointment, и дальше по коду не протекает.
type rawAppointment struct {
	ID int64 `json:"id"`

	// Либо плоский barber_id, либо вложенный объект barber
	BarberID *int64     `json:"barber_id"`
	Barber   *rawBarber `json:"barber"`

	// Либо client_id + client_name, либо вложенный объект client
	ClientID   *int64     `json:"client_id"`
	ClientName *string    `json:"client_name"`
	Client     *rawClient `json:"client"`

	// Либо service_id, либо вложенный объект service / service_detail
	ServiceID     *int64      `json:"service_id"`
	Service       *rawService `json:"service"`
	ServiceDetail *rawService `json:"service_detail"`

	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// rawBarber барбер из ответа backend'а
type rawBarber struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url"`
	Active   *bool   `json:"active"`
}

// rawClient клиент из ответа backend'а
type rawClient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// rawService услуга из ответа backend'а
type rawService struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
}

// rawAvailability ответ backend'а на запрос доступности
type rawAvailability struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

// ErrorResponse модель ошибки backend'а
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// createAppointmentRequest тело запроса создания записи
type createAppointmentRequest struct {
	BarberID        *int64  `json:"barber_id,omitempty"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ClientEmail     *string `json:"client_email,omitempty"`
	ServiceID       *int64  `json:"service_id,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}

// updateAppointmentRequest тело запроса редактирования записи
type updateAppointmentRequest struct {
	BarberID        *int64  `json:"barber_id,omitempty"`
	ServiceID       *int64  `json:"service_id,omitempty"`
	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// toDomain нормализует сырую запись backend'а в доменную.
// Возвращает список проблем качества данных, которые вызывающий код
// логирует как warning: некорректные записи не отбрасываются,
// а приводятся к безопасному виду (нулевая длительность, пустое время).
func (r *rawAppointment) toDomain() (*domain.Appointment, []string) {
	var issues []string

	appt := &domain.Appointment{
		ID:     r.ID,
		Status: domain.AppointmentStatus(r.Status),
		Notes:  r.Notes,
	}

	if r.CreatedAt != nil {
		appt.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		appt.UpdatedAt = *r.UpdatedAt
	}

	// Барбер: вложенный объект приоритетнее плоского id
	switch {
	case r.Barber != nil:
		appt.BarberID = &r.Barber.ID
		appt.BarberName = r.Barber.Name
	case r.BarberID != nil:
		appt.BarberID = r.BarberID
	}

	// Клиент
	switch {
	case r.Client != nil:
		appt.ClientID = &r.Client.ID
		appt.ClientName = r.Client.Name
	case r.ClientID != nil:
		appt.ClientID = r.ClientID
		if r.ClientName != nil {
			appt.ClientName = *r.ClientName
		}
	case r.ClientName != nil:
		appt.ClientName = *r.ClientName
	}

	// Услуга: service, затем service_detail, затем плоский service_id
	service := r.Service
	if service == nil {
		service = r.ServiceDetail
	}
	switch {
	case service != nil:
		appt.ServiceID = &service.ID
		appt.ServiceName = service.Name
	case r.ServiceID != nil:
		appt.ServiceID = r.ServiceID
	}

	// Дата
	if date, err := time.Parse(domain.DateFormat, r.Date); err == nil {
		appt.Date = date
	} else {
		issues = append(issues, "unparsable date "+r.Date)
	}

	// Время начала: некорректное значение оставляем пустым,
	// раскладка отрисует запись у начала окна
	if start, err := types.NewTimeStringFromString(r.StartTime); err == nil {
		appt.StartTime = start
	} else {
		issues = append(issues, "unparsable start_time "+r.StartTime)
	}

	// Длительность: из записи, иначе из услуги, иначе ноль
	switch {
	case r.DurationMinutes != nil && *r.DurationMinutes > 0:
		appt.DurationMinutes = *r.DurationMinutes
	case service != nil && service.DurationMinutes > 0:
		appt.DurationMinutes = service.DurationMinutes
	default:
		appt.DurationMinutes = 0
		issues = append(issues, "missing duration")
	}

	return appt, issues
}

// toDomain конвертирует барбера в доменную модель
func (r *rawBarber) toDomain() domain.Barber {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.Barber{
		ID:       r.ID,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Active:   active,
	}
}

// toDomain конвертирует услугу в доменную модель
func (r *rawService) toDomain() domain.Service {
	price := 0.0
	if r.Price != nil {
		price = *r.Price
	}
	return domain.Service{
		ID:              r.ID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           price,
		Description:     r.Description,
	}
}
