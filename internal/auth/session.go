package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paytrack/internal/storage"
	"paytrack/internal/util"
)

const (
	sessionKeyPrefix = "paytrack.session."
	sessionIDBytes   = 32

	// SessionDuration is how long an issued session stays valid.
	SessionDuration = 7 * 24 * time.Hour
)

type Session struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	ExpiresAt int64  `json:"expiresAt"` // unix seconds
	CreatedAt int64  `json:"createdAt"` // unix seconds
}

func (s Session) User() User {
	return User{Username: s.Username, Name: s.Name}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// CreateSession issues a new session for user and persists it.
func (s *Service) CreateSession(ctx context.Context, user User) (Session, error) {
	now := time.Now()
	session := Session{
		ID:        util.RandomID(sessionIDBytes),
		Username:  user.Username,
		Name:      user.Name,
		ExpiresAt: now.Add(SessionDuration).Unix(),
		CreatedAt: now.Unix(),
	}

	value, err := json.Marshal(session)
	if err != nil {
		return Session{}, fmt.Errorf("failed to encode session: %w", err)
	}

	if err = s.storage.Set(ctx, sessionKey(session.ID), string(value)); err != nil {
		return Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// GetSession resolves a session ID. Expired sessions are deleted on
// sight and reported as not found.
func (s *Service) GetSession(ctx context.Context, id string) (Session, error) {
	value, err := s.storage.Get(ctx, sessionKey(id))
	if err != nil {
		var notFoundErr *storage.NotFoundError
		if errors.As(err, &notFoundErr) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err = json.Unmarshal([]byte(value), &session); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}

	if session.ExpiresAt <= time.Now().Unix() {
		if err = s.DeleteSession(ctx, id); err != nil {
			s.logger.Warn("Failed to delete expired session", "error", err)
		}
		return Session{}, &storage.NotFoundError{Key: sessionKey(id)}
	}

	return session, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.storage.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
