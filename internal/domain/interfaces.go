package domain

import (
	"context"

	"classbook/internal/models"
)

// Store is the relational store contract the services operate against.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) error
	DeleteUser(ctx context.Context, id int64) error
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)

	CreateRoom(ctx context.Context, room *models.Classroom) error
	GetRoomByID(ctx context.Context, id int64) (*models.Classroom, error)
	UpdateRoom(ctx context.Context, id int64, patch models.RoomPatch) error
	DeleteRoom(ctx context.Context, id int64) error
	GetAllRooms(ctx context.Context) ([]*models.Classroom, error)
	CountRooms(ctx context.Context) (int64, error)
	CountRoomsByStatus(ctx context.Context, status string) (int64, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	GetAllBookings(ctx context.Context) ([]*models.Booking, error)
	GetUserBookings(ctx context.Context, userID int64) ([]*models.Booking, error)
	GetRecentBookings(ctx context.Context, limit int) ([]*models.Booking, error)
	CountBookings(ctx context.Context) (int64, error)
	CountUserBookings(ctx context.Context, userID int64) (int64, error)
}

// SessionStore keeps server-side session records keyed by opaque token.
// Get returns (nil, nil) when the token is unknown or expired.
type SessionStore interface {
	Set(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// Notifier receives booking lifecycle announcements. Implementations
// must not block request handling on delivery failures.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *models.Booking, roomName string)
	BookingCanceled(ctx context.Context, booking *models.Booking, canceledBy string)
}
