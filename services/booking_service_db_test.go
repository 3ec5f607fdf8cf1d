package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

// Editing a booking's dates onto an interval another live booking already
// holds on the same room must be rejected before anything is written.
func TestBookingService_Update_RejectsOverlappingDates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db, NewBillingService(db))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "room_id", "user_id"}).
			AddRow(2, "BOOKED", 3, 5))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_category_id", "room_number"}).
			AddRow(3, 7, "101"))
	mock.ExpectQuery("SELECT (.+) FROM `room_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "max_adults", "max_children"}).
			AddRow(7, "Standard", 1000.0, 2, 1))
	// another live booking holds room 3 over the requested interval
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Update(2, UpdateInput{
		CheckInDate:  "2024-06-10",
		CheckOutDate: "2024-06-12",
		NoOfAdults:   1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room_unavailable")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_Update_AllowsFreeInterval(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db, NewBillingService(db))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "room_id", "user_id"}).
			AddRow(2, "BOOKED", 3, 5))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_category_id", "room_number"}).
			AddRow(3, 7, "101"))
	mock.ExpectQuery("SELECT (.+) FROM `room_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "max_adults", "max_children"}).
			AddRow(7, "Standard", 1000.0, 2, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// reload after the transaction
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "room_id", "user_id", "no_of_days", "total_amount"}).
			AddRow(2, "BOOKED", 3, 5, 2, 2000.0))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_category_id", "room_number"}).
			AddRow(3, 7, "101"))
	mock.ExpectQuery("SELECT (.+) FROM `room_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(7, "Standard", 1000.0))
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).
			AddRow(5, "Guest User"))

	booking, err := svc.Update(2, UpdateInput{
		CheckInDate:  "2024-06-10",
		CheckOutDate: "2024-06-12",
		NoOfAdults:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, booking.NoOfDays)
	assert.Equal(t, 2000.0, booking.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Terminal bookings are immutable history: Delete must reject them and
// leave the row untouched.
func TestBookingService_Delete_TerminalState(t *testing.T) {
	for _, status := range []string{"CHECKED_OUT", "CANCELLED"} {
		t.Run(status, func(t *testing.T) {
			db, mock := newMockDB(t)
			svc := NewBookingService(db, NewBillingService(db))

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT (.+) FROM `bookings`").
				WillReturnRows(sqlmock.NewRows([]string{"id", "status", "user_id"}).
					AddRow(9, status, 4))
			mock.ExpectRollback()

			err := svc.Delete(9)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "terminal_state")
			assert.NoError(t, mock.ExpectationsWereMet(), "no delete statement may reach the database")
		})
	}
}

func TestBookingService_Delete_LiveBooking(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db, NewBillingService(db))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "user_id"}).
			AddRow(9, "BOOKED", 4))
	mock.ExpectExec("UPDATE `bookings` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The availability query must carry the [checkIn, checkOut) exclusion
// predicate against live bookings, with checkout exclusive.
func TestAvailabilityService_GetAvailableRooms(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	ci, co := date("2024-06-01"), date("2024-06-03")

	mock.ExpectQuery("SELECT (.+) FROM `rooms`(.+)NOT EXISTS(.+)check_in_date < (.+)check_out_date >").
		WithArgs("BOOKED", "CHECKED_IN", co, ci).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_number", "room_category", "no_of_adults", "no_of_children", "price"}).
			AddRow(1, "101", "Standard", 2, 1, 1000.0))

	rooms, err := svc.GetAvailableRooms(ci, co, "")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, 1000.0, rooms[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
