package service

import (
	"context"

	"classbook/internal/domain"
	"classbook/internal/models"

	"github.com/rs/zerolog"
)

// RoomService is the admin-only classroom registry.
type RoomService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewRoomService(store domain.Store, logger *zerolog.Logger) *RoomService {
	return &RoomService{store: store, logger: logger}
}

func (s *RoomService) CreateRoom(ctx context.Context, actor *models.User, name string, capacity int64, equipment, status string) (*models.Classroom, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if status == "" {
		status = models.RoomStatusAvailable
	}

	room := &models.Classroom{
		RoomName:  name,
		Capacity:  capacity,
		Equipment: equipment,
		Status:    status,
	}
	if err := s.store.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room", room.RoomName).Int64("room_id", room.ID).Msg("room created")
	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, actor *models.User, id int64, patch models.RoomPatch) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	return s.store.UpdateRoom(ctx, id, patch)
}

// DeleteRoom removes a classroom without touching its bookings; they
// render as "Unknown" in history views from then on.
func (s *RoomService) DeleteRoom(ctx context.Context, actor *models.User, id int64) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("room_id", id).Str("deleted_by", actor.Username).Msg("room deleted")
	return nil
}

// ListRooms is available to any authenticated user.
func (s *RoomService) ListRooms(ctx context.Context, actor *models.User) ([]*models.Classroom, error) {
	if err := RequireRole(actor); err != nil {
		return nil, err
	}
	return s.store.GetAllRooms(ctx)
}
