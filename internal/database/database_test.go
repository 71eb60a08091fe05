package database

import (
	"context"
	"os"
	"testing"

	"classbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.New(os.Stdout)
	db, err := NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testUser(username, email string) *models.User {
	return &models.User{
		Username: username,
		Password: "$2a$10$fakefakefakefakefakefake", // stored as-is, hashing happens in the service
		Email:    email,
		Phone:    "555-0100",
		Role:     models.RoleTeacher,
		FullName: "Test Teacher",
	}
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx, "hash"))

	admin, err := db.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "hash", admin.Password)

	count, err := db.CountRooms(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	// Seeding again must not duplicate anything.
	require.NoError(t, db.Seed(ctx, "other-hash"))
	count, err = db.CountRooms(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	admin, err = db.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", admin.Password)
}
