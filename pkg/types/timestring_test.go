package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	v, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", v.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	v := NewTimeString(time.Date(2026, 3, 10, 8, 5, 0, 0, time.UTC))
	assert.Equal(t, "08:05", v.String())
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("12:00")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(TimeString("08:00")))

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(TimeString("08:00")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	v := TimeString("10:00")

	end, err := v.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())

	// Ровно конец суток отображается часовым значением "24:00"
	end, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "24:00", end.String())

	_, err = TimeString("23:30").AddMinutes(31)
	assert.Error(t, err)

	_, err = v.AddMinutes(-601)
	assert.Error(t, err)
}

func TestTimeString_Within_InclusiveEnd(t *testing.T) {
	start := TimeString("10:00")
	end := TimeString("10:30")

	assert.True(t, TimeString("10:00").Within(start, end, true))
	assert.True(t, TimeString("10:15").Within(start, end, true))
	assert.True(t, TimeString("10:30").Within(start, end, true))
	assert.False(t, TimeString("09:59").Within(start, end, true))
	assert.False(t, TimeString("10:31").Within(start, end, true))
}

func TestTimeString_Within_HalfOpen(t *testing.T) {
	start := TimeString("08:00")
	end := TimeString("12:00")

	assert.True(t, TimeString("08:00").Within(start, end, false))
	assert.True(t, TimeString("11:59").Within(start, end, false))
	assert.False(t, TimeString("12:00").Within(start, end, false))
	assert.False(t, TimeString("07:59").Within(start, end, false))
}

func TestTimeString_Scan(t *testing.T) {
	var v TimeString

	// PostgreSQL TIME приходит с секундами
	require.NoError(t, v.Scan("10:00:00"))
	assert.Equal(t, "10:00", v.String())

	require.NoError(t, v.Scan([]byte("08:30:00")))
	assert.Equal(t, "08:30", v.String())

	require.NoError(t, v.Scan(time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, "09:15", v.String())

	assert.Error(t, v.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v := TimeString("10:00")
	value, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
