package models

import "time"

type Classroom struct {
	ID        int64     `json:"id"`
	RoomName  string    `json:"room_name"`
	Capacity  int64     `json:"capacity"`
	Equipment string    `json:"equipment"`
	Status    string    `json:"status"` // Available, Maintenance, or admin-defined
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomPatch is a partial update for a classroom. Nil fields retain the
// stored value.
type RoomPatch struct {
	RoomName  *string `json:"room_name"`
	Capacity  *int64  `json:"capacity"`
	Equipment *string `json:"equipment"`
	Status    *string `json:"status"`
}

// IsEmpty reports whether the patch would change nothing.
func (p RoomPatch) IsEmpty() bool {
	return p.RoomName == nil && p.Capacity == nil && p.Equipment == nil && p.Status == nil
}
