package models

import "time"

// Session is the server-side record behind an opaque session token.
// The cookie carries only the token; identity is always re-resolved
// from the user store on each request.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
