package service

import (
	"context"
	"testing"

	"classbook/internal/database"
	"classbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)
	teacher := env.registerTeacher(t, "t1")
	available := env.createRoom(t, admin, "A101", models.RoomStatusAvailable)
	maintenance := env.createRoom(t, admin, "B201", models.RoomStatusMaintenance)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		booking, err := env.bookings.CreateBooking(ctx, teacher, available.ID, "2026-09-01 08:00", "2 hours")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, "Teacher t1", booking.BookerName)
		assert.Equal(t, teacher.ID, booking.UserID)
	})

	t.Run("BookerNameFallsBackToUsername", func(t *testing.T) {
		noName := env.registerTeacher(t, "t9")
		noName.FullName = ""
		booking, err := env.bookings.CreateBooking(ctx, noName, available.ID, "2026-09-02 08:00", "1 hour")
		require.NoError(t, err)
		assert.Equal(t, "t9", booking.BookerName)
	})

	t.Run("RoomNotFound", func(t *testing.T) {
		_, err := env.bookings.CreateBooking(ctx, teacher, 9999, "2026-09-01 08:00", "2 hours")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("MaintenanceGuardAppliesToAdminsToo", func(t *testing.T) {
		_, err := env.bookings.CreateBooking(ctx, teacher, maintenance.ID, "2026-09-01 08:00", "2 hours")
		assert.ErrorIs(t, err, ErrRoomUnderMaintenance)

		_, err = env.bookings.CreateBooking(ctx, admin, maintenance.ID, "2026-09-01 08:00", "2 hours")
		assert.ErrorIs(t, err, ErrRoomUnderMaintenance)
	})

	t.Run("RequiresStaff", func(t *testing.T) {
		_, err := env.bookings.CreateBooking(ctx, nil, available.ID, "2026-09-01 08:00", "2 hours")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

// Overlapping reservations on the same room and time slot are accepted:
// there is no time-conflict rule in the booking engine. This test pins
// that behavior so a future conflict check shows up as a deliberate
// change.
func TestCreateBookingAllowsOverlap(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)
	teacher := env.registerTeacher(t, "t1")
	room := env.createRoom(t, admin, "A101", models.RoomStatusAvailable)
	ctx := context.Background()

	first, err := env.bookings.CreateBooking(ctx, teacher, room.ID, "2026-09-01 08:00", "2 hours")
	require.NoError(t, err)

	second, err := env.bookings.CreateBooking(ctx, admin, room.ID, "2026-09-01 08:00", "2 hours")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCancelBooking(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)
	owner := env.registerTeacher(t, "owner")
	other := env.registerTeacher(t, "other")
	room := env.createRoom(t, admin, "A101", models.RoomStatusAvailable)
	ctx := context.Background()

	newBooking := func(t *testing.T) *models.Booking {
		b, err := env.bookings.CreateBooking(ctx, owner, room.ID, "2026-09-01 08:00", "2 hours")
		require.NoError(t, err)
		return b
	}

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		b := newBooking(t)
		err := env.bookings.CancelBooking(ctx, other, b.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		// Still present.
		_, err = env.db.GetBooking(ctx, b.ID)
		assert.NoError(t, err)
	})

	t.Run("OwnerSucceeds", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, env.bookings.CancelBooking(ctx, owner, b.ID))

		_, err := env.db.GetBooking(ctx, b.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("AdminCanCancelAny", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, env.bookings.CancelBooking(ctx, admin, b.ID))
	})

	t.Run("CancelTwiceIsNotFound", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, env.bookings.CancelBooking(ctx, owner, b.ID))
		err := env.bookings.CancelBooking(ctx, owner, b.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestListBookings(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)
	teacher := env.registerTeacher(t, "t1")
	room := env.createRoom(t, admin, "A101", models.RoomStatusAvailable)
	ctx := context.Background()

	_, err := env.bookings.CreateBooking(ctx, teacher, room.ID, "2026-09-01 08:00", "2 hours")
	require.NoError(t, err)
	_, err = env.bookings.CreateBooking(ctx, admin, room.ID, "2026-09-02 08:00", "1 hour")
	require.NoError(t, err)

	// Any authenticated user sees the full scheduler list.
	all, err := env.bookings.ListBookings(ctx, teacher)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = env.bookings.ListBookings(ctx, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}
