package service

import (
	"context"

	"classbook/internal/domain"
	"classbook/internal/metrics"
	"classbook/internal/models"

	"github.com/rs/zerolog"
)

// BookingService creates and cancels reservations. There is no
// overlap check between bookings on the same room; the only
// availability rule is the maintenance guard.
type BookingService struct {
	store    domain.Store
	notifier domain.Notifier // nil when notifications are not configured
	logger   *zerolog.Logger
}

func NewBookingService(store domain.Store, notifier domain.Notifier, logger *zerolog.Logger) *BookingService {
	return &BookingService{store: store, notifier: notifier, logger: logger}
}

func (s *BookingService) CreateBooking(ctx context.Context, actor *models.User, roomID int64, startTime, duration string) (*models.Booking, error) {
	if err := RequireStaff(actor); err != nil {
		return nil, err
	}

	room, err := s.store.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status == models.RoomStatusMaintenance {
		return nil, ErrRoomUnderMaintenance
	}

	booking := &models.Booking{
		RoomID:     roomID,
		UserID:     actor.ID,
		BookerName: actor.DisplayName(),
		StartTime:  startTime,
		Duration:   duration,
		Status:     models.BookingStatusConfirmed,
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("room_id", roomID).
		Str("booker", booking.BookerName).
		Msg("booking created")

	if s.notifier != nil {
		s.notifier.BookingCreated(ctx, booking, room.RoomName)
	}
	return booking, nil
}

// CancelBooking hard-deletes a reservation. Owners may cancel their
// own; admins may cancel any.
func (s *BookingService) CancelBooking(ctx context.Context, actor *models.User, bookingID int64) error {
	if err := RequireStaff(actor); err != nil {
		return err
	}

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && booking.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.store.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	metrics.IncBookingCanceled()
	s.logger.Info().
		Int64("booking_id", bookingID).
		Str("canceled_by", actor.Username).
		Msg("booking canceled")

	if s.notifier != nil {
		s.notifier.BookingCanceled(ctx, booking, actor.DisplayName())
	}
	return nil
}

// ListBookings returns every reservation for the scheduler view.
func (s *BookingService) ListBookings(ctx context.Context, actor *models.User) ([]*models.Booking, error) {
	if err := RequireRole(actor); err != nil {
		return nil, err
	}
	return s.store.GetAllBookings(ctx)
}
