package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder фиксирует запросы к backend'у (опционально)
type MetricsRecorder interface {
	ObserveBackendRequest(operation, status string, duration time.Duration)
}

// Client клиент внешнего backend API бронирований.
// Backend владеет хранением записей, вычислением доступности
// и аутентификацией; клиент не ретраит запросы — ошибка любого
// вызова поднимается на уровень обработчика.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента backend API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает запись метрик запросов
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	c.metrics = m
	return c
}

// GetServices получает каталог услуг
func (c *Client) GetServices(ctx context.Context) ([]domain.Service, error) {
	var raw []rawService
	if err := c.getJSON(ctx, "get_services", c.baseURL+"/internal/services", &raw); err != nil {
		return nil, err
	}

	services := make([]domain.Service, len(raw))
	for i := range raw {
		services[i] = raw[i].toDomain()
	}
	return services, nil
}

// GetService получает услугу по идентификатору
func (c *Client) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	endpoint := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var raw rawService
	if err := c.getJSON(ctx, "get_service", endpoint, &raw); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	service := raw.toDomain()
	return &service, nil
}

// GetBarbers получает список барберов
func (c *Client) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	var raw []rawBarber
	if err := c.getJSON(ctx, "get_barbers", c.baseURL+"/internal/barbers", &raw); err != nil {
		return nil, err
	}

	barbers := make([]domain.Barber, len(raw))
	for i := range raw {
		barbers[i] = raw[i].toDomain()
	}
	return barbers, nil
}

// GetAppointmentsForDay получает записи на дату, опционально по барберу.
// Некорректные записи backend'а не отбрасываются: они нормализуются
// с warning'ом о качестве данных.
func (c *Client) GetAppointmentsForDay(ctx context.Context, date time.Time, barberID *int64) ([]*domain.Appointment, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	if barberID != nil {
		query.Set("barber_id", strconv.FormatInt(*barberID, 10))
	}

	var raw []rawAppointment
	if err := c.getJSON(ctx, "get_appointments", c.baseURL+"/internal/appointments?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	return c.normalizeAppointments(raw), nil
}

// GetClientAppointments получает записи клиента
func (c *Client) GetClientAppointments(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/internal/clients/%d/appointments", c.baseURL, clientID)

	var raw []rawAppointment
	if err := c.getJSON(ctx, "get_client_appointments", endpoint, &raw); err != nil {
		return nil, err
	}

	return c.normalizeAppointments(raw), nil
}

// GetAvailability получает доступные значения "HH:MM" для даты,
// длительности и (опционально) конкретного барбера
func (c *Client) GetAvailability(ctx context.Context, date time.Time, durationMinutes int, barberID *int64) ([]types.TimeString, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("duration", strconv.Itoa(durationMinutes))
	if barberID != nil {
		query.Set("barber_id", strconv.FormatInt(*barberID, 10))
	}

	var raw rawAvailability
	if err := c.getJSON(ctx, "get_availability", c.baseURL+"/internal/availability?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	values := make([]types.TimeString, 0, len(raw.AvailableTimes))
	for _, v := range raw.AvailableTimes {
		parsed, err := types.NewTimeStringFromString(v)
		if err != nil {
			c.log.Warn("BookingAPI: skipping malformed availability value %q for date=%s", v, raw.Date)
			continue
		}
		values = append(values, parsed)
	}
	return values, nil
}

// CreateAppointmentParams параметры создания записи
type CreateAppointmentParams struct {
	BarberID        *int64
	ClientName      string
	ClientPhone     string
	ClientEmail     *string
	ServiceID       *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Notes           *string
}

// CreateAppointment создает запись на backend'е
func (c *Client) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*domain.Appointment, error) {
	body := createAppointmentRequest{
		BarberID:        params.BarberID,
		ClientName:      params.ClientName,
		ClientPhone:     params.ClientPhone,
		ClientEmail:     params.ClientEmail,
		ServiceID:       params.ServiceID,
		Date:            params.Date.Format(domain.DateFormat),
		StartTime:       params.StartTime.String(),
		DurationMinutes: params.DurationMinutes,
		Status:          string(domain.StatusPending),
		Notes:           params.Notes,
	}

	var raw rawAppointment
	if err := c.sendJSON(ctx, "create_appointment", http.MethodPost, c.baseURL+"/internal/appointments", body, &raw); err != nil {
		return nil, err
	}

	appt, issues := raw.toDomain()
	c.logDataIssues(appt.ID, issues)
	return appt, nil
}

// CreateBlock создает запись-блокировку: барбер недоступен в интервале
func (c *Client) CreateBlock(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString, durationMinutes int, note *string) (*domain.Appointment, error) {
	body := createAppointmentRequest{
		BarberID:        &barberID,
		Date:            date.Format(domain.DateFormat),
		StartTime:       startTime.String(),
		DurationMinutes: durationMinutes,
		Status:          string(domain.StatusBlocked),
		Notes:           note,
	}

	var raw rawAppointment
	if err := c.sendJSON(ctx, "create_block", http.MethodPost, c.baseURL+"/internal/appointments", body, &raw); err != nil {
		return nil, err
	}

	appt, issues := raw.toDomain()
	c.logDataIssues(appt.ID, issues)
	return appt, nil
}

// UpdateAppointmentParams параметры редактирования записи.
// nil-поля не изменяются.
type UpdateAppointmentParams struct {
	BarberID        *int64
	ServiceID       *int64
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	Notes           *string
}

// UpdateAppointment редактирует запись на backend'е
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID int64, params UpdateAppointmentParams) (*domain.Appointment, error) {
	body := updateAppointmentRequest{
		BarberID:        params.BarberID,
		ServiceID:       params.ServiceID,
		DurationMinutes: params.DurationMinutes,
		Notes:           params.Notes,
	}
	if params.Date != nil {
		s := params.Date.Format(domain.DateFormat)
		body.Date = &s
	}
	if params.StartTime != nil {
		s := params.StartTime.String()
		body.StartTime = &s
	}

	endpoint := fmt.Sprintf("%s/internal/appointments/%d", c.baseURL, appointmentID)

	var raw rawAppointment
	if err := c.sendJSON(ctx, "update_appointment", http.MethodPatch, endpoint, body, &raw); err != nil {
		return nil, err
	}

	appt, issues := raw.toDomain()
	c.logDataIssues(appt.ID, issues)
	return appt, nil
}

// CancelAppointment отменяет запись на backend'е
func (c *Client) CancelAppointment(ctx context.Context, appointmentID int64) error {
	endpoint := fmt.Sprintf("%s/internal/appointments/%d/cancel", c.baseURL, appointmentID)
	return c.sendJSON(ctx, "cancel_appointment", http.MethodPatch, endpoint, nil, nil)
}

// normalizeAppointments конвертирует сырые записи с логированием
// предупреждений о качестве данных
func (c *Client) normalizeAppointments(raw []rawAppointment) []*domain.Appointment {
	appointments := make([]*domain.Appointment, len(raw))
	for i := range raw {
		appt, issues := raw[i].toDomain()
		c.logDataIssues(appt.ID, issues)
		appointments[i] = appt
	}
	return appointments
}

func (c *Client) logDataIssues(appointmentID int64, issues []string) {
	for _, issue := range issues {
		c.log.Warn("BookingAPI: data quality issue in appointment id=%d: %s", appointmentID, issue)
	}
}

// getJSON выполняет GET запрос и декодирует ответ
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, out interface{}) error {
	return c.do(ctx, operation, http.MethodGet, endpoint, nil, out)
}

// sendJSON выполняет запрос с JSON телом и декодирует ответ (если out != nil)
func (c *Client) sendJSON(ctx context.Context, operation, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, operation, method, endpoint, reader, out)
}

func (c *Client) do(ctx context.Context, operation, method, endpoint string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "error", time.Since(start))
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.observe(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return c.wrapErrorResponse(resp, ErrBadRequest)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusConflict:
		return ErrSlotTaken
	default:
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) wrapErrorResponse(resp *http.Response, sentinel error) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, errResp.Message)
}

func (c *Client) observe(operation, status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveBackendRequest(operation, status, duration)
	}
}
