package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("weekday window with half hour end", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 8, EndHour: 19.5}, 30)

		require.Len(t, slots, 24)
		assert.Equal(t, types.TimeString("08:00"), slots[0].Value)
		assert.Equal(t, "8:00 AM", slots[0].Display)
		assert.Equal(t, types.TimeString("19:30"), slots[len(slots)-1].Value)
		assert.Equal(t, "7:30 PM", slots[len(slots)-1].Display)
	})

	t.Run("sunday window clamps final hour", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 9, EndHour: 18.5}, 30)

		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("09:00"), slots[0].Value)
		assert.Equal(t, types.TimeString("18:30"), slots[len(slots)-1].Value)
	})

	t.Run("whole hour end includes boundary slot", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 9, EndHour: 19}, 30)

		assert.Equal(t, types.TimeString("19:00"), slots[len(slots)-1].Value)
	})

	t.Run("finer granularity", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 9, EndHour: 10}, 10)

		values := make([]string, len(slots))
		for i, s := range slots {
			values[i] = s.Value.String()
		}
		assert.Equal(t, []string{"09:00", "09:10", "09:20", "09:30", "09:40", "09:50", "10:00"}, values)
	})

	t.Run("ascending order without duplicates", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 8, EndHour: 20.5}, 15)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Value.IsBefore(slots[i].Value),
				"slot %s must be before %s", slots[i-1].Value, slots[i].Value)
		}
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		window := Window{StartHour: 8, EndHour: 19.5}

		first := GenerateSlots(window, 30)
		second := GenerateSlots(window, 30)

		assert.Equal(t, first, second)
	})

	t.Run("degenerate inputs produce empty grid", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(Window{StartHour: 10, EndHour: 9}, 30))
		assert.Empty(t, GenerateSlots(Window{StartHour: 9, EndHour: 18}, 0))
	})

	t.Run("noon and midnight labels", func(t *testing.T) {
		slots := GenerateSlots(Window{StartHour: 11.5, EndHour: 12.5}, 30)

		labels := make([]string, len(slots))
		for i, s := range slots {
			labels[i] = s.Display
		}
		// Перебор часов начинается с floor(11.5) = 11
		assert.Equal(t, []string{"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM"}, labels)
	})
}

func TestFilterAvailable(t *testing.T) {
	window := Window{StartHour: 9, EndHour: 12}
	candidates := GenerateSlots(window, 30)

	available := []types.TimeString{"09:30", "10:00", "11:30"}

	t.Run("keeps only backend-approved values in order", func(t *testing.T) {
		selectedDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)
		now := time.Date(2026, 3, 10, 9, 45, 0, 0, time.Local) // другой день

		filtered := FilterAvailable(candidates, available, selectedDate, now)

		require.Len(t, filtered, 3)
		assert.Equal(t, types.TimeString("09:30"), filtered[0].Value)
		assert.Equal(t, types.TimeString("10:00"), filtered[1].Value)
		assert.Equal(t, types.TimeString("11:30"), filtered[2].Value)
	})

	t.Run("same day drops slot at current minute", func(t *testing.T) {
		selectedDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
		now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

		filtered := FilterAvailable(candidates, available, selectedDate, now)

		// 09:30 в прошлом, 10:00 — ровно текущая минута, исключается
		require.Len(t, filtered, 1)
		assert.Equal(t, types.TimeString("11:30"), filtered[0].Value)
	})

	t.Run("same day keeps slot one minute later", func(t *testing.T) {
		selectedDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
		now := time.Date(2026, 3, 10, 9, 59, 0, 0, time.Local)

		filtered := FilterAvailable(candidates, available, selectedDate, now)

		require.Len(t, filtered, 2)
		assert.Equal(t, types.TimeString("10:00"), filtered[0].Value)
	})

	t.Run("output is always a subset of candidates", func(t *testing.T) {
		selectedDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)
		now := time.Now()

		filtered := FilterAvailable(candidates, available, selectedDate, now)

		candidateSet := make(map[types.TimeString]struct{}, len(candidates))
		for _, c := range candidates {
			candidateSet[c.Value] = struct{}{}
		}
		for _, f := range filtered {
			_, ok := candidateSet[f.Value]
			assert.True(t, ok, "slot %s is not a candidate", f.Value)
		}
	})

	t.Run("empty backend list yields empty result", func(t *testing.T) {
		filtered := FilterAvailable(candidates, nil, time.Now().AddDate(0, 0, 1), time.Now())

		assert.Empty(t, filtered)
	})
}

func TestTick(t *testing.T) {
	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		done := make(chan error, 1)
		go func() {
			done <- Tick(ctx, 10*time.Millisecond, func(time.Time) error {
				calls++
				return nil
			})
		}()

		time.Sleep(35 * time.Millisecond)
		cancel()

		err := <-done
		assert.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, calls, 2) // немедленный вызов + тики
	})

	t.Run("stops when callback fails", func(t *testing.T) {
		wantErr := assert.AnError

		err := Tick(context.Background(), time.Millisecond, func(time.Time) error {
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
	})
}
