package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelhub-backend/models"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{"available to booked", models.StatusAvailable, models.StatusBooked, true},
		{"booked to checked-in", models.StatusBooked, models.StatusCheckedIn, true},
		{"booked to cancelled", models.StatusBooked, models.StatusCancelled, true},
		{"checked-in to checked-out", models.StatusCheckedIn, models.StatusCheckedOut, true},
		{"checked-in to cancelled", models.StatusCheckedIn, models.StatusCancelled, true},

		{"booked to checked-out skips check-in", models.StatusBooked, models.StatusCheckedOut, false},
		{"checked-out back to checked-in", models.StatusCheckedOut, models.StatusCheckedIn, false},
		{"checked-out to cancelled", models.StatusCheckedOut, models.StatusCancelled, false},
		{"cancelled to booked", models.StatusCancelled, models.StatusBooked, false},
		{"booked back to available", models.StatusBooked, models.StatusAvailable, false},
		{"checked-in back to booked", models.StatusCheckedIn, models.StatusBooked, false},
		{"unknown source", models.BookingStatus("PENDING"), models.StatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.True(t, models.StatusCheckedOut.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())

	assert.False(t, models.StatusAvailable.IsTerminal())
	assert.False(t, models.StatusBooked.IsTerminal())
	assert.False(t, models.StatusCheckedIn.IsTerminal())

	// unrecognized statuses have no outgoing edges either
	assert.True(t, models.BookingStatus("PENDING").IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := models.ParseBookingStatus("CHECKED_IN")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, status)

	_, err = models.ParseBookingStatus("checked_in")
	assert.Error(t, err, "statuses are case sensitive on the wire")

	_, err = models.ParseBookingStatus("RESERVED")
	assert.Error(t, err)
}
