package session

import (
	"context"
	"sync/atomic"
	"time"

	"classbook/internal/domain"
	"classbook/internal/models"

	"github.com/rs/zerolog"
)

// FailoverSessionStore serves from the primary store and falls back to
// the secondary when the primary errors, retrying the primary after a
// cooldown.
type FailoverSessionStore struct {
	primary   domain.SessionStore
	fallback  domain.SessionStore
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nanos of the last failed primary attempt
}

const primaryRetryInterval = time.Minute

func NewFailoverSessionStore(primary, fallback domain.SessionStore, logger *zerolog.Logger) *FailoverSessionStore {
	return &FailoverSessionStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (f *FailoverSessionStore) primaryUsable() bool {
	if !f.isDown.Load() {
		return true
	}
	return time.Since(time.Unix(0, f.lastCheck.Load())) > primaryRetryInterval
}

func (f *FailoverSessionStore) markDown(err error, op string) {
	f.logger.Error().Err(err).Str("op", op).Msg("primary session store failed, using fallback")
	f.isDown.Store(true)
	f.lastCheck.Store(time.Now().UnixNano())
}

func (f *FailoverSessionStore) Set(ctx context.Context, session *models.Session) error {
	if f.primaryUsable() {
		if err := f.primary.Set(ctx, session); err == nil {
			f.isDown.Store(false)
			return nil
		} else {
			f.markDown(err, "set")
		}
	}
	return f.fallback.Set(ctx, session)
}

func (f *FailoverSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	if f.primaryUsable() {
		session, err := f.primary.Get(ctx, token)
		if err == nil {
			f.isDown.Store(false)
			if session != nil {
				return session, nil
			}
			// Token may only exist in the fallback after an outage.
			return f.fallback.Get(ctx, token)
		}
		f.markDown(err, "get")
	}
	return f.fallback.Get(ctx, token)
}

func (f *FailoverSessionStore) Delete(ctx context.Context, token string) error {
	var primaryErr error
	if f.primaryUsable() {
		if primaryErr = f.primary.Delete(ctx, token); primaryErr == nil {
			f.isDown.Store(false)
		} else {
			f.markDown(primaryErr, "delete")
		}
	}
	// Delete from both so a recovered primary cannot resurrect the token.
	return f.fallback.Delete(ctx, token)
}
