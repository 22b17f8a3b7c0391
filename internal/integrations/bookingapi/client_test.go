package bookingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, noopLogger{})
}

func TestGetAppointmentsForDay_NormalizesBackendVariance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/appointments", r.URL.Path)
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		// Три исторические формы одной сущности
		_, _ = w.Write([]byte(`[
			{
				"id": 1,
				"barber": {"id": 7, "name": "Игорь"},
				"client": {"id": 42, "name": "Анна"},
				"service": {"id": 3, "name": "Стрижка", "duration_minutes": 45},
				"date": "2026-03-10",
				"start_time": "09:15",
				"status": "confirmed"
			},
			{
				"id": 2,
				"barber_id": 7,
				"client_id": 43,
				"client_name": "Петр",
				"service_detail": {"id": 4, "name": "Бритье", "duration_minutes": 30},
				"date": "2026-03-10",
				"start_time": "11:00",
				"duration_minutes": 60,
				"status": "pending"
			},
			{
				"id": 3,
				"barber_id": 7,
				"date": "2026-03-10",
				"start_time": "13:00",
				"status": "blocked"
			}
		]`))
	})

	appointments, err := client.GetAppointmentsForDay(context.Background(), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	require.Len(t, appointments, 3)

	// Вложенные объекты
	first := appointments[0]
	require.NotNil(t, first.BarberID)
	assert.Equal(t, int64(7), *first.BarberID)
	assert.Equal(t, "Анна", first.ClientName)
	assert.Equal(t, "Стрижка", first.ServiceName)
	assert.Equal(t, types.TimeString("09:15"), first.StartTime)
	// Длительность берется из услуги, когда в записи ее нет
	assert.Equal(t, 45, first.DurationMinutes)

	// Плоские поля; явная длительность записи важнее услуги
	second := appointments[1]
	assert.Equal(t, "Петр", second.ClientName)
	assert.Equal(t, 60, second.DurationMinutes)

	// Блокировка без услуги и клиента: нулевая длительность, не ошибка
	block := appointments[2]
	assert.True(t, block.IsBlock())
	assert.Equal(t, 0, block.DurationMinutes)
	assert.Nil(t, block.ServiceID)
}

func TestGetAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/availability", r.URL.Path)
		assert.Equal(t, "45", r.URL.Query().Get("duration"))
		assert.Equal(t, "7", r.URL.Query().Get("barber_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date": "2026-03-10", "available_times": ["09:00", "09:30", "bogus", "10:00"]}`))
	})

	barberID := int64(7)
	values, err := client.GetAvailability(context.Background(), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 45, &barberID)
	require.NoError(t, err)

	// Некорректное значение отброшено
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, values)
}

func TestCreateAppointment_ConflictMapsToSlotTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := client.CreateAppointment(context.Background(), CreateAppointmentParams{
		ClientName:      "Анна",
		ClientPhone:     "+79990001122",
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/internal/appointments/99/cancel", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.CancelAppointment(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetServices_BadRequestCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 400, "message": "unknown shop"}`))
	})

	_, err := client.GetServices(context.Background())

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "unknown shop")
}
