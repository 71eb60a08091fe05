package service

import (
	"context"
	"testing"

	"classbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.registerTeacher(t, "t1")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		token, user, err := env.auth.Login(ctx, "t1", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "t1", user.Username)

		resolved, err := env.auth.ResolveIdentity(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, user.ID, resolved.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "t1", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.registerTeacher(t, "t1")
	ctx := context.Background()

	token, _, err := env.auth.Login(ctx, "t1", "secret")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, token))

	resolved, err := env.auth.ResolveIdentity(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolveIdentity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("EmptyToken", func(t *testing.T) {
		user, err := env.auth.ResolveIdentity(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		user, err := env.auth.ResolveIdentity(ctx, "not-a-real-token")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		admin := env.seedAdmin(t)
		teacher := env.registerTeacher(t, "doomed")
		token, _, err := env.auth.Login(ctx, "doomed", "secret")
		require.NoError(t, err)

		require.NoError(t, env.users.DeleteUser(ctx, admin, teacher.ID))

		resolved, err := env.auth.ResolveIdentity(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}

func TestRequireRole(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	teacher := &models.User{Role: models.RoleTeacher}

	assert.NoError(t, RequireAdmin(admin))
	assert.ErrorIs(t, RequireAdmin(teacher), ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(nil), ErrForbidden)

	assert.NoError(t, RequireStaff(admin))
	assert.NoError(t, RequireStaff(teacher))
	assert.ErrorIs(t, RequireStaff(nil), ErrForbidden)

	assert.NoError(t, RequireRole(teacher))
	assert.ErrorIs(t, RequireRole(nil), ErrForbidden)
}
