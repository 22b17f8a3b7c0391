package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

func TestLayoutAppointment(t *testing.T) {
	layout := Layout{
		Window:       Window{StartHour: 8, EndHour: 20},
		PxPerMinute:  1.6,
		SlotHeightPx: 48,
	}

	tests := []struct {
		name           string
		startTime      types.TimeString
		duration       int
		expectedTop    float64
		expectedHeight float64
	}{
		{
			name:           "appointment inside window",
			startTime:      "09:15",
			duration:       45,
			expectedTop:    120, // 75 минут от 08:00 * 1.6
			expectedHeight: 72,  // 45 * 1.6
		},
		{
			name:           "appointment at window start",
			startTime:      "08:00",
			duration:       30,
			expectedTop:    0,
			expectedHeight: 48,
		},
		{
			name:           "zero duration block keeps minimum height",
			startTime:      "12:00",
			duration:       0,
			expectedTop:    384,
			expectedHeight: 48,
		},
		{
			name:           "short appointment floored to slot height",
			startTime:      "10:00",
			duration:       10, // 16px < высоты слота
			expectedTop:    192,
			expectedHeight: 48,
		},
		{
			name:           "appointment before window start is not clipped",
			startTime:      "07:30",
			duration:       60,
			expectedTop:    -48,
			expectedHeight: 96,
		},
		{
			name:           "negative duration treated as zero",
			startTime:      "09:00",
			duration:       -15,
			expectedTop:    96,
			expectedHeight: 48,
		},
		{
			name:           "malformed start placed at window start",
			startTime:      "",
			duration:       30,
			expectedTop:    0,
			expectedHeight: 48,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &domain.Appointment{
				StartTime:       tt.startTime,
				DurationMinutes: tt.duration,
				Status:          domain.StatusConfirmed,
			}

			box := layout.LayoutAppointment(appt)

			assert.InDelta(t, tt.expectedTop, box.Top, 0.001)
			assert.InDelta(t, tt.expectedHeight, box.Height, 0.001)
		})
	}
}

func TestLayoutAppointment_HeightIsMaxOfDurationAndSlot(t *testing.T) {
	layout := NewLayout(Window{StartHour: 8, EndHour: 20}, 48, 30)

	require.InDelta(t, 1.6, layout.PxPerMinute, 0.001)

	for _, duration := range []int{1, 15, 30, 45, 90, 240} {
		appt := &domain.Appointment{StartTime: "10:00", DurationMinutes: duration}
		box := layout.LayoutAppointment(appt)

		expected := float64(duration) * layout.PxPerMinute
		if expected < layout.SlotHeightPx {
			expected = layout.SlotHeightPx
		}
		assert.InDelta(t, expected, box.Height, 0.001, "duration %d", duration)
	}
}

func TestCurrentTimeIndicatorTop(t *testing.T) {
	layout := Layout{
		Window:       Window{StartHour: 8, EndHour: 20},
		PxPerMinute:  1.6,
		SlotHeightPx: 48,
	}

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("returns position when now is within window", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local)

		top := layout.CurrentTimeIndicatorTop(now, today)

		require.NotNil(t, top)
		assert.InDelta(t, 240, *top, 0.001) // 150 минут * 1.6
	})

	t.Run("returns nil for another calendar day", func(t *testing.T) {
		now := time.Date(2026, 3, 11, 10, 30, 0, 0, time.Local)

		assert.Nil(t, layout.CurrentTimeIndicatorTop(now, today))
	})

	t.Run("returns nil before window opens", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 7, 59, 0, 0, time.Local)

		assert.Nil(t, layout.CurrentTimeIndicatorTop(now, today))
	})

	t.Run("returns nil after window closes", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 20, 1, 0, 0, time.Local)

		assert.Nil(t, layout.CurrentTimeIndicatorTop(now, today))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
		end := time.Date(2026, 3, 10, 20, 0, 0, 0, time.Local)

		topStart := layout.CurrentTimeIndicatorTop(start, today)
		require.NotNil(t, topStart)
		assert.InDelta(t, 0, *topStart, 0.001)

		topEnd := layout.CurrentTimeIndicatorTop(end, today)
		require.NotNil(t, topEnd)
		assert.InDelta(t, 1152, *topEnd, 0.001)
	})
}

func TestResolveDayWindow_DependsOnWeekdayOnly(t *testing.T) {
	table := NewWindowTable(
		Window{StartHour: 9, EndHour: 18.5},  // Sunday
		Window{StartHour: 8, EndHour: 19.5},  // Monday
		Window{StartHour: 8, EndHour: 19.5},  // Tuesday
		Window{StartHour: 8, EndHour: 19.5},  // Wednesday
		Window{StartHour: 8, EndHour: 19.5},  // Thursday
		Window{StartHour: 8, EndHour: 20.5},  // Friday
		Window{StartHour: 8, EndHour: 20.5},  // Saturday
	)

	// 2026-03-08 воскресенье
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.Equal(t, Window{StartHour: 9, EndHour: 18.5}, table.ResolveDayWindow(sunday))
	assert.Equal(t, Window{StartHour: 8, EndHour: 19.5}, table.ResolveDayWindow(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, Window{StartHour: 8, EndHour: 20.5}, table.ResolveDayWindow(sunday.AddDate(0, 0, 5)))

	// Две даты с одинаковым днем недели дают одинаковые окна
	for offset := 0; offset < 7; offset++ {
		date := sunday.AddDate(0, 0, offset)
		sameWeekdayLater := date.AddDate(0, 0, 28)
		assert.Equal(t, table.ResolveDayWindow(date), table.ResolveDayWindow(sameWeekdayLater))
	}
}
