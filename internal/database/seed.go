package database

import (
	"context"
	"errors"
	"fmt"

	"classbook/internal/models"
)

// Seed creates the default admin account and a starter set of rooms on
// an empty database. adminPasswordHash must already be hashed.
func (db *DB) Seed(ctx context.Context, adminPasswordHash string) error {
	_, err := db.GetUserByUsername(ctx, "admin")
	if errors.Is(err, ErrNotFound) {
		admin := &models.User{
			Username: "admin",
			Password: adminPasswordHash,
			Email:    "admin@classbook.local",
			Role:     models.RoleAdmin,
			FullName: "Administrator",
		}
		if err := db.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		db.log.Info().Msg("seeded default admin account")
	} else if err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	count, err := db.CountRooms(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []*models.Classroom{
		{RoomName: "Room A101", Capacity: 40, Equipment: "Projector", Status: models.RoomStatusAvailable},
		{RoomName: "Room A102", Capacity: 40, Equipment: "Projector", Status: models.RoomStatusAvailable},
		{RoomName: "Room B201", Capacity: 50, Equipment: "Speakers, Mic", Status: models.RoomStatusAvailable},
		{RoomName: "Lab 1", Capacity: 30, Equipment: "PC", Status: models.RoomStatusAvailable},
		{RoomName: "Main Hall", Capacity: 100, Equipment: "Full", Status: models.RoomStatusAvailable},
	}
	for _, room := range rooms {
		if err := db.CreateRoom(ctx, room); err != nil {
			return fmt.Errorf("seed room %s: %w", room.RoomName, err)
		}
	}
	db.log.Info().Int("rooms", len(rooms)).Msg("seeded starter classrooms")
	return nil
}
