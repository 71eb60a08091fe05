package export

import (
	"testing"
	"time"

	"classbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingsWorkbook(t *testing.T) {
	rooms := []*models.Classroom{
		{ID: 1, RoomName: "A101"},
	}
	bookings := []*models.Booking{
		{
			ID:         10,
			RoomID:     1,
			BookerName: "Teacher t1",
			StartTime:  "2026-09-01 08:00",
			Duration:   "2 hours",
			Status:     models.BookingStatusConfirmed,
			CreatedAt:  time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         11,
			RoomID:     99, // room deleted after booking
			BookerName: "Teacher t2",
			StartTime:  "2026-09-02 10:00",
			Duration:   "1 hour",
			Status:     models.BookingStatusConfirmed,
			CreatedAt:  time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC),
		},
	}

	f, err := BookingsWorkbook(bookings, rooms)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(bookingsSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Room", header)

	roomName, err := f.GetCellValue(bookingsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "A101", roomName)

	booker, err := f.GetCellValue(bookingsSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Teacher t1", booker)

	unknown, err := f.GetCellValue(bookingsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, models.UnknownRoomName, unknown)

	sheets := f.GetSheetList()
	assert.Equal(t, []string{bookingsSheet}, sheets)
}

func TestBookingsWorkbookEmpty(t *testing.T) {
	f, err := BookingsWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(bookingsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}
