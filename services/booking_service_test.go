package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", date("2024-06-01"), date("2024-06-03"), 2},
		{"single night", date("2024-06-01"), date("2024-06-02"), 1},
		{"partial day rounds up", date("2024-06-01"), date("2024-06-02").Add(6 * time.Hour), 2},
		{"long stay", date("2024-06-01"), date("2024-07-01"), 30},
		{"same day", date("2024-06-01"), date("2024-06-01"), 0},
		{"inverted range", date("2024-06-03"), date("2024-06-01"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsBetween_TotalAmount(t *testing.T) {
	// booking 2024-06-01 .. 2024-06-03 at price 1000 per night
	nights := NightsBetween(date("2024-06-01"), date("2024-06-03"))
	require.Equal(t, 2, nights)
	assert.Equal(t, 2000.0, float64(nights)*1000)
}

func TestStayOverlaps(t *testing.T) {
	// requested range: 2024-06-01 .. 2024-06-03
	reqIn, reqOut := date("2024-06-01"), date("2024-06-03")

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"existing stay inside the range", date("2024-06-01"), date("2024-06-02"), true},
		{"existing stay straddles the range start", date("2024-05-30"), date("2024-06-02"), true},
		{"existing stay straddles the range end", date("2024-06-02"), date("2024-06-04"), true},
		{"existing stay covers the range", date("2024-05-30"), date("2024-06-10"), true},
		{"checkout on the range start does not collide", date("2024-05-28"), date("2024-06-01"), false},
		{"check-in on the range end does not collide", date("2024-06-03"), date("2024-06-05"), false},
		{"disjoint later stay", date("2024-06-10"), date("2024-06-12"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StayOverlaps(tt.checkIn, tt.checkOut, reqIn, reqOut))
		})
	}
}

func TestValidateStayRange(t *testing.T) {
	assert.NoError(t, ValidateStayRange(date("2024-06-01"), date("2024-06-03")))

	err := ValidateStayRange(date("2024-06-03"), date("2024-06-01"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")

	assert.Error(t, ValidateStayRange(date("2024-06-01"), date("2024-06-01")),
		"check-out equal to check-in is rejected")
}

func TestParseStayDates(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		ci, co, err := ParseStayDates("2024-06-01", "2024-06-03")
		require.NoError(t, err)
		assert.Equal(t, date("2024-06-01"), ci)
		assert.Equal(t, date("2024-06-03"), co)
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		_, _, err := ParseStayDates("2024-06-01T00:00:00Z", "2024-06-03T00:00:00Z")
		assert.NoError(t, err)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, _, err := ParseStayDates("", "2024-06-03")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("garbage date", func(t *testing.T) {
		_, _, err := ParseStayDates("06/01/2024", "2024-06-03")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("inverted range short-circuits", func(t *testing.T) {
		_, _, err := ParseStayDates("2024-06-03", "2024-06-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-out date must be after check-in date")
	})
}
