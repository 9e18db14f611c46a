package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFormatDate_ZeroPads(t *testing.T) {
	d := time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2021", FormatDate(d))
}

func TestDateRoundTrip(t *testing.T) {
	for _, s := range []string{"01/01/1990", "29/02/2024", "31/12/2099", "15/06/2010"} {
		t.Run(s, func(t *testing.T) {
			d, err := ParseDate(s)
			require.NoError(t, err)
			assert.Equal(t, s, FormatDate(d))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two fields", "01/2020"},
		{"four fields", "01/01/2020/1"},
		{"non numeric", "aa/01/2020"},
		{"month 13", "01/13/2020"},
		{"day 32", "32/01/2020"},
		{"february 30", "30/02/2021"},
		{"wrong separator", "01-01-2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			assert.True(t, errors.Is(err, ErrMalformedDateTime), "got %v", err)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00:00", "09:05:07", "16:30:00", "23:59:59"} {
		t.Run(s, func(t *testing.T) {
			c, err := ParseClock(s)
			require.NoError(t, err)
			assert.Equal(t, s, FormatClock(c))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:03:09", FormatClock(datatypes.NewTime(8, 3, 9, 0)))
}

func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "10:00", "25:00:00", "10:60:00", "10:00:61", "a:b:c"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseClock(s)
			assert.ErrorIs(t, err, ErrMalformedDateTime)
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	for _, s := range []string{"01/01/1990 00:00:00", "24/12/2023 18:45:10", "05/07/2001 07:08:09"} {
		t.Run(s, func(t *testing.T) {
			dt, err := ParseDateTime(s)
			require.NoError(t, err)
			assert.Equal(t, s, FormatDateTime(dt))
		})
	}
}

func TestParseDateTime_Components(t *testing.T) {
	dt, err := ParseDateTime("24/12/2023 18:45:10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.December, 24, 18, 45, 10, 0, time.UTC), dt)
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, s := range []string{"24/12/2023", "24/12/2023T18:45:10", "24/13/2023 18:45:10", "24/12/2023 24:00:00", "24/12/2023  18:45:10"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDateTime(s)
			assert.ErrorIs(t, err, ErrMalformedDateTime)
		})
	}
}

func TestFormatDateTime_RendersInUTC(t *testing.T) {
	dt, err := ParseDateTime("02/03/1985 00:00:00")
	require.NoError(t, err)

	madrid := time.FixedZone("CET", 3600)
	assert.Equal(t, "02/03/1985 00:00:00", FormatDateTime(dt.In(madrid)))
	assert.Equal(t, "10/01/2024 08:30:00", FormatDateTime(time.Date(2024, time.January, 10, 9, 30, 0, 0, madrid)))
}
