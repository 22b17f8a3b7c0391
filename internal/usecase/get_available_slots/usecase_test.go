package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

type fakeAPIClient struct {
	service          *domain.Service
	serviceErr       error
	availability     []types.TimeString
	availabilityErr  error
	availabilityHits int
}

func (f *fakeAPIClient) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

func (f *fakeAPIClient) GetAvailability(_ context.Context, _ time.Time, _ int, _ *int64) ([]types.TimeString, error) {
	f.availabilityHits++
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.availability, nil
}

type fakeCache struct {
	values map[string][]types.TimeString
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]types.TimeString)}
}

func (f *fakeCache) key(date time.Time, duration int, barberID *int64) string {
	k := date.Format(domain.DateFormat) + ":" + time.Duration(duration).String()
	if barberID != nil {
		k += ":barber"
	}
	return k
}

func (f *fakeCache) Get(_ context.Context, date time.Time, duration int, barberID *int64) ([]types.TimeString, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.values[f.key(date, duration, barberID)]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, date time.Time, duration int, barberID *int64, values []types.TimeString) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[f.key(date, duration, barberID)] = values
	return nil
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

func publicWindows() schedule.WindowTable {
	return schedule.NewWindowTable(
		schedule.Window{StartHour: 9, EndHour: 18.5},
		schedule.Window{StartHour: 8, EndHour: 19.5},
		schedule.Window{StartHour: 8, EndHour: 19.5},
		schedule.Window{StartHour: 8, EndHour: 19.5},
		schedule.Window{StartHour: 8, EndHour: 19.5},
		schedule.Window{StartHour: 8, EndHour: 20.5},
		schedule.Window{StartHour: 8, EndHour: 20.5},
	)
}

func TestUseCase_Execute(t *testing.T) {
	// 2026-03-09 — понедельник
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("returns intersection of candidates and availability", func(t *testing.T) {
		client := &fakeAPIClient{
			service: &domain.Service{ID: 1, Name: "Haircut", DurationMinutes: 45},
			availability: []types.TimeString{
				"08:30", "10:00", "19:30",
				"07:00", // вне окна дня, должен быть отброшен
			},
		}
		uc := NewUseCase(client, nil, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 3)
		assert.Equal(t, types.TimeString("08:30"), resp.Slots[0].Value)
		assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].Value)
		assert.Equal(t, types.TimeString("19:30"), resp.Slots[2].Value)
		assert.Equal(t, "8:30 AM", resp.Slots[0].Display)
	})

	t.Run("same day drops past slots", func(t *testing.T) {
		client := &fakeAPIClient{
			service:      &domain.Service{ID: 1, DurationMinutes: 30},
			availability: []types.TimeString{"09:00", "14:00", "18:00"},
		}
		uc := NewUseCase(client, nil, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.Add(14 * time.Hour)} // 14:00

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, types.TimeString("18:00"), resp.Slots[0].Value)
	})

	t.Run("uses cache on second call", func(t *testing.T) {
		client := &fakeAPIClient{
			service:      &domain.Service{ID: 1, DurationMinutes: 30},
			availability: []types.TimeString{"10:00"},
		}
		cache := newFakeCache()
		uc := NewUseCase(client, cache, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		req := &Request{ServiceID: 1, Date: monday}
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 1, client.availabilityHits)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		client := &fakeAPIClient{
			service:      &domain.Service{ID: 1, DurationMinutes: 30},
			availability: []types.TimeString{"10:00"},
		}
		cache := newFakeCache()
		cache.getErr = errors.New("redis down")
		cache.setErr = errors.New("redis down")
		uc := NewUseCase(client, cache, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 1)
	})

	t.Run("service not found", func(t *testing.T) {
		client := &fakeAPIClient{serviceErr: bookingapi.ErrServiceNotFound}
		uc := NewUseCase(client, nil, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: monday})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("availability failure wraps internal error", func(t *testing.T) {
		client := &fakeAPIClient{
			service:         &domain.Service{ID: 1, DurationMinutes: 30},
			availabilityErr: errors.New("backend unavailable"),
		}
		uc := NewUseCase(client, nil, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -1)}

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := NewUseCase(&fakeAPIClient{}, nil, publicWindows(), 30, noopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, 5)}

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakeAPIClient{}, nil, publicWindows(), 30, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: monday})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
