package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	got, err := ParseDate("2021-07-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 7, 14, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2021-07-14", FormatDate(got))
}

func TestParseDate_Errors(t *testing.T) {
	cases := map[string]error{
		"2021-02-30": ErrCalendarDate,
		"2021-13-01": ErrCalendarDate,
		"2021-00-10": ErrCalendarDate,
		"2021-2-3":   ErrDatePattern,
		"21-02-03":   ErrDatePattern,
		"2021/02/03": ErrDatePattern,
		"":           ErrDatePattern,
		"2021-02-03T00:00:00Z": ErrDatePattern,
	}
	for in, want := range cases {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, want, in)
	}
}

func TestIsCalendarDate(t *testing.T) {
	assert.True(t, IsCalendarDate(2024, time.February, 29))
	assert.False(t, IsCalendarDate(2023, time.February, 29))
	assert.False(t, IsCalendarDate(2021, time.February, 30))
	assert.False(t, IsCalendarDate(2021, time.Month(13), 1))
	assert.False(t, IsCalendarDate(-1, time.January, 1))
}
