package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")

		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, s := range []string{"", "9:30", "25:00", "12:61", "12.30", "noon"} {
			_, err := NewTimeStringFromString(s)
			assert.Error(t, err, "value %q must be rejected", s)
		}
	})
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	ts := TimeString("14:45")

	minutes, err := ts.MinutesOfDay()

	require.NoError(t, err)
	assert.Equal(t, 885, minutes)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(495)

	require.NoError(t, err)
	assert.Equal(t, "08:15", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("19:30")

	later, err := ts.AddMinutes(30)

	require.NoError(t, err)
	assert.Equal(t, "20:00", later.String())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("19:30"))
	assert.True(t, TimeString("19:30").IsAfter("08:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 9, 7, 5, 59, 0, time.UTC))

	assert.Equal(t, "07:05", ts.String())
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("trims seconds from database value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("accepts byte slice", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:00")))
		assert.Equal(t, "08:00", ts.String())
	})
}
