package service

import (
	"context"
	"os"
	"testing"
	"time"

	"classbook/internal/config"
	"classbook/internal/database"
	"classbook/internal/models"
	"classbook/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testTeacherCode = "EDU2025"

type testEnv struct {
	db       *database.DB
	auth     *AuthService
	users    *UserService
	rooms    *RoomService
	bookings *BookingService
	reports  *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zerolog.New(os.Stdout)

	db, err := database.NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := session.NewMemorySessionStore(time.Hour)
	authCfg := config.AuthConfig{TeacherCode: testTeacherCode, BcryptCost: bcrypt.MinCost}

	return &testEnv{
		db:       db,
		auth:     NewAuthService(db, sessions, &logger),
		users:    NewUserService(db, authCfg, &logger),
		rooms:    NewRoomService(db, &logger),
		bookings: NewBookingService(db, nil, &logger),
		reports:  NewReportService(db),
	}
}

// seedAdmin creates an admin account directly in the store.
func (e *testEnv) seedAdmin(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.User{
		Username: "admin",
		Password: string(hash),
		Email:    "admin@school.edu",
		Role:     models.RoleAdmin,
		FullName: "Administrator",
	}
	require.NoError(t, e.db.CreateUser(context.Background(), admin))
	return admin
}

// registerTeacher runs the public registration flow with the valid code.
func (e *testEnv) registerTeacher(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), RegisterRequest{
		Username:    username,
		Password:    "secret",
		Email:       username + "@school.edu",
		Phone:       "555-0100",
		TeacherCode: testTeacherCode,
		FullName:    "Teacher " + username,
	})
	require.NoError(t, err)
	return user
}

// createRoom adds a classroom as admin.
func (e *testEnv) createRoom(t *testing.T, admin *models.User, name, status string) *models.Classroom {
	t.Helper()
	room, err := e.rooms.CreateRoom(context.Background(), admin, name, 40, "Projector", status)
	require.NoError(t, err)
	return room
}
