package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classbook/internal/models"
)

func (db *DB) CreateRoom(ctx context.Context, room *models.Classroom) error {
	query := `INSERT INTO classrooms (room_name, capacity, equipment, status, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		room.RoomName,
		room.Capacity,
		room.Equipment,
		room.Status,
		now,
		now,
	)
	if err != nil {
		return mapSQLError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	room.ID = id
	room.CreatedAt = now
	room.UpdatedAt = now
	return nil
}

func (db *DB) GetRoomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `SELECT id, room_name, capacity, equipment, status, created_at, updated_at
              FROM classrooms WHERE id = ?`
	var room models.Classroom
	err := db.QueryRowContext(ctx, query, id).Scan(
		&room.ID, &room.RoomName, &room.Capacity, &room.Equipment,
		&room.Status, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, mapSQLError(err)
	}
	return &room, nil
}

// UpdateRoom applies a partial update: nil patch fields keep the stored
// value. An empty patch is a no-op beyond the existence check.
func (db *DB) UpdateRoom(ctx context.Context, id int64, patch models.RoomPatch) error {
	if patch.IsEmpty() {
		_, err := db.GetRoomByID(ctx, id)
		return err
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if patch.RoomName != nil {
		sets = append(sets, "room_name = ?")
		args = append(args, *patch.RoomName)
	}
	if patch.Capacity != nil {
		sets = append(sets, "capacity = ?")
		args = append(args, *patch.Capacity)
	}
	if patch.Equipment != nil {
		sets = append(sets, "equipment = ?")
		args = append(args, *patch.Equipment)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), id)

	query := fmt.Sprintf("UPDATE classrooms SET %s WHERE id = ?", strings.Join(sets, ", "))
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSQLError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoom removes a classroom. Dependent bookings are kept; history
// views render their room name as "Unknown".
func (db *DB) DeleteRoom(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM classrooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) GetAllRooms(ctx context.Context) ([]*models.Classroom, error) {
	query := `SELECT id, room_name, capacity, equipment, status, created_at, updated_at
              FROM classrooms ORDER BY id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Classroom
	for rows.Next() {
		r := &models.Classroom{}
		err := rows.Scan(
			&r.ID, &r.RoomName, &r.Capacity, &r.Equipment,
			&r.Status, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

func (db *DB) CountRooms(ctx context.Context) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classrooms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

func (db *DB) CountRoomsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classrooms WHERE status = ?`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms by status: %w", err)
	}
	return count, nil
}
