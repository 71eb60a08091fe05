package models

import "time"

type Booking struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"room_id"`
	UserID     int64     `json:"user_id"`
	BookerName string    `json:"booker_name"` // display name captured at creation time
	StartTime  string    `json:"start_time"`
	Duration   string    `json:"duration_hours"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
