package get_day_schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/ptr"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

type fakeAPIClient struct {
	barbers         []domain.Barber
	barbersErr      error
	barbersDelay    time.Duration
	appointments    []*domain.Appointment
	appointmentsErr error
	cancelled       atomic.Bool
}

func (f *fakeAPIClient) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	if f.barbersDelay > 0 {
		select {
		case <-time.After(f.barbersDelay):
		case <-ctx.Done():
			f.cancelled.Store(true)
			return nil, ctx.Err()
		}
	}
	if f.barbersErr != nil {
		return nil, f.barbersErr
	}
	return f.barbers, nil
}

func (f *fakeAPIClient) GetAppointmentsForDay(_ context.Context, _ time.Time, _ *int64) ([]*domain.Appointment, error) {
	if f.appointmentsErr != nil {
		return nil, f.appointmentsErr
	}
	return f.appointments, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func adminWindows() schedule.WindowTable {
	return schedule.NewWindowTable(
		schedule.Window{StartHour: 9, EndHour: 19},
		schedule.Window{StartHour: 8, EndHour: 20},
		schedule.Window{StartHour: 8, EndHour: 20},
		schedule.Window{StartHour: 8, EndHour: 20},
		schedule.Window{StartHour: 8, EndHour: 20},
		schedule.Window{StartHour: 8, EndHour: 20},
		schedule.Window{StartHour: 8, EndHour: 20},
	)
}

func appt(id int64, barberID int64, start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		BarberID:        ptr.Ptr(barberID),
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestUseCase_Execute(t *testing.T) {
	// 2026-03-09 — понедельник, окно админки 8:00-20:00
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	barbers := []domain.Barber{
		{ID: 1, Name: "Alex", Active: true},
		{ID: 2, Name: "Maria", Active: true},
	}

	t.Run("builds columns with geometry", func(t *testing.T) {
		client := &fakeAPIClient{
			barbers: barbers,
			appointments: []*domain.Appointment{
				appt(10, 1, "09:15", 45, domain.StatusConfirmed),
				appt(11, 1, "12:00", 30, domain.StatusCancelled),
				appt(12, 2, "10:00", 0, domain.StatusBlocked),
			},
		}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		resp, err := uc.Execute(context.Background(), &Request{Date: monday})

		require.NoError(t, err)
		require.Len(t, resp.Columns, 2)
		assert.InDelta(t, 1.6, resp.PxPerMinute, 1e-9)

		// 09:15 при окне с 8:00: 75 минут * 1.6 = 120, 45 минут * 1.6 = 72
		require.Len(t, resp.Columns[0].Appointments, 1, "cancelled appointment must be hidden")
		assert.InDelta(t, 120, resp.Columns[0].Appointments[0].Top, 1e-9)
		assert.InDelta(t, 72, resp.Columns[0].Appointments[0].Height, 1e-9)

		// Блокировка нулевой длительности получает высоту одного слота
		require.Len(t, resp.Columns[1].Appointments, 1)
		assert.InDelta(t, 48, resp.Columns[1].Appointments[0].Height, 1e-9)
	})

	t.Run("row labels cover the whole window", func(t *testing.T) {
		client := &fakeAPIClient{barbers: barbers}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		resp, err := uc.Execute(context.Background(), &Request{Date: monday})

		require.NoError(t, err)
		require.NotEmpty(t, resp.RowLabels)
		assert.Equal(t, "8:00 AM", resp.RowLabels[0])
		assert.Equal(t, "8:00 PM", resp.RowLabels[len(resp.RowLabels)-1])
	})

	t.Run("indicator for current day inside window", func(t *testing.T) {
		client := &fakeAPIClient{barbers: barbers}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.Add(10 * time.Hour)} // 10:00

		resp, err := uc.Execute(context.Background(), &Request{Date: monday})

		require.NoError(t, err)
		require.NotNil(t, resp.IndicatorTop)
		assert.InDelta(t, 120*1.6, *resp.IndicatorTop, 1e-9)
	})

	t.Run("no indicator for another day", func(t *testing.T) {
		client := &fakeAPIClient{barbers: barbers}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, 1).Add(10 * time.Hour)}

		resp, err := uc.Execute(context.Background(), &Request{Date: monday})

		require.NoError(t, err)
		assert.Nil(t, resp.IndicatorTop)
	})

	t.Run("single barber filter", func(t *testing.T) {
		client := &fakeAPIClient{
			barbers:      barbers,
			appointments: []*domain.Appointment{appt(10, 2, "10:00", 30, domain.StatusPending)},
		}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		resp, err := uc.Execute(context.Background(), &Request{Date: monday, BarberID: ptr.Ptr(int64(2))})

		require.NoError(t, err)
		require.Len(t, resp.Columns, 1)
		assert.Equal(t, "Maria", resp.Columns[0].BarberName)
		assert.Len(t, resp.Columns[0].Appointments, 1)
	})

	t.Run("unknown barber", func(t *testing.T) {
		client := &fakeAPIClient{barbers: barbers}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: monday, BarberID: ptr.Ptr(int64(99))})

		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("appointments failure cancels barbers fetch", func(t *testing.T) {
		client := &fakeAPIClient{
			barbers:         barbers,
			barbersDelay:    time.Second,
			appointmentsErr: errors.New("backend unavailable"),
		}
		uc := NewUseCase(client, adminWindows(), 48, 30, noopLogger{})

		start := time.Now()
		_, err := uc.Execute(context.Background(), &Request{Date: monday})

		assert.ErrorIs(t, err, ErrInternal)
		assert.Less(t, time.Since(start), time.Second, "must fail fast without waiting for barbers")
		assert.True(t, client.cancelled.Load())
	})
}
