package service

import "errors"

// Operation-level error taxonomy. Duplicate-key and not-found errors
// come from the database package; everything here is policy.
var (
	ErrForbidden            = errors.New("access denied")
	ErrSelfDeletion         = errors.New("cannot delete your own account")
	ErrRoomUnderMaintenance = errors.New("room is under maintenance")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidTeacherCode   = errors.New("invalid teacher verification code")
	ErrInvalidRole          = errors.New("unknown role")
)
