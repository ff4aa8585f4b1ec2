package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// SessionStore persists token-to-username bindings.
type SessionStore interface {
	Save(ctx context.Context, token, username string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// SessionService binds browser sessions to authenticated usernames.
// Only the username is retained; role is re-derived from the credential
// store by whoever needs it.
type SessionService struct {
	store SessionStore
}

// NewSessionService creates a new SessionService.
func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Start creates a new opaque session token bound to username.
func (svc *SessionService) Start(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()

	if err := svc.store.Save(ctx, token, username); err != nil {
		logger.Log.Errorw("failed to save session", "username", username, "error", err)
		return "", err
	}

	return token, nil
}

// CurrentUser returns the username bound to token. An unknown or expired
// token yields ok=false with a nil error.
func (svc *SessionService) CurrentUser(ctx context.Context, token string) (string, bool, error) {
	username, err := svc.store.Get(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up session", "error", err)
		return "", false, err
	}
	if username == "" {
		return "", false, nil
	}
	return username, true, nil
}

// End invalidates a session token. Ending an absent session is a no-op.
func (svc *SessionService) End(ctx context.Context, token string) error {
	if err := svc.store.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete session", "error", err)
		return err
	}
	return nil
}
