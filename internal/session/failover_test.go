package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"classbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f *failingStore) Set(ctx context.Context, session *models.Session) error { return f.err }
func (f *failingStore) Get(ctx context.Context, token string) (*models.Session, error) {
	return nil, f.err
}
func (f *failingStore) Delete(ctx context.Context, token string) error { return f.err }

func TestFailoverSessionStore(t *testing.T) {
	logger := zerolog.New(os.Stdout)
	ctx := context.Background()

	t.Run("FallsBackWhenPrimaryFails", func(t *testing.T) {
		primary := &failingStore{err: errors.New("connection refused")}
		fallback := NewMemorySessionStore(time.Hour)
		store := NewFailoverSessionStore(primary, fallback, &logger)

		sess := &models.Session{Token: "tok-1", UserID: 5, Username: "t1"}
		require.NoError(t, store.Set(ctx, sess))

		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.EqualValues(t, 5, got.UserID)
	})

	t.Run("UsesPrimaryWhenHealthy", func(t *testing.T) {
		primary := NewMemorySessionStore(time.Hour)
		fallback := NewMemorySessionStore(time.Hour)
		store := NewFailoverSessionStore(primary, fallback, &logger)

		sess := &models.Session{Token: "tok-2", UserID: 6, Username: "t2"}
		require.NoError(t, store.Set(ctx, sess))

		got, err := primary.Get(ctx, "tok-2")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("DeleteClearsBothStores", func(t *testing.T) {
		primary := NewMemorySessionStore(time.Hour)
		fallback := NewMemorySessionStore(time.Hour)
		store := NewFailoverSessionStore(primary, fallback, &logger)

		sess := &models.Session{Token: "tok-3", UserID: 7, Username: "t3"}
		require.NoError(t, primary.Set(ctx, sess))
		require.NoError(t, fallback.Set(ctx, sess))

		require.NoError(t, store.Delete(ctx, "tok-3"))

		got, err := store.Get(ctx, "tok-3")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
