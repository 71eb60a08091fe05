package models

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// StaffRoles are the roles permitted to manage bookings.
var StaffRoles = []string{RoleAdmin, RoleTeacher}

const (
	RoomStatusAvailable   = "Available"
	RoomStatusMaintenance = "Maintenance"
)

const (
	BookingStatusConfirmed = "Confirmed"
)

// UnknownRoomName is rendered for bookings whose classroom has since
// been deleted.
const UnknownRoomName = "Unknown"

const (
	// DashboardHistorySize is how many recent bookings the dashboard shows.
	DashboardHistorySize = 10

	// DefaultSessionTTLHours is the session lifetime when not configured.
	DefaultSessionTTLHours = 24
)
