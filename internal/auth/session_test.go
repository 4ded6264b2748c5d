package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paytrack/internal/storage"
)

func TestSessionLifecycle(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	user := User{Username: "admin", Name: "Administrator"}

	session, err := service.CreateSession(ctx, user)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if session.ID == "" {
		t.Fatal("Expected a session ID")
	}
	if session.Username != "admin" || session.Name != "Administrator" {
		t.Errorf("Unexpected session identity: %+v", session)
	}

	wantExpiry := time.Now().Add(SessionDuration).Unix()
	if session.ExpiresAt < wantExpiry-5 || session.ExpiresAt > wantExpiry+5 {
		t.Errorf("Expected expiry around %d, got %d", wantExpiry, session.ExpiresAt)
	}

	loaded, err := service.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if loaded != session {
		t.Error("Loaded session should match the created one")
	}

	if err = service.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}

	_, err = service.GetSession(ctx, session.ID)
	var notFoundErr *storage.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Errorf("Expected NotFoundError after deletion, got %v", err)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetSession(context.Background(), "nope")
	var notFoundErr *storage.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestGetSessionExpired(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	expired := Session{
		ID:        "expired-session",
		Username:  "admin",
		Name:      "Administrator",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour).Unix(),
	}
	value, err := json.Marshal(expired)
	if err != nil {
		t.Fatalf("Failed to encode session: %v", err)
	}
	if err = service.storage.Set(ctx, sessionKey(expired.ID), string(value)); err != nil {
		t.Fatalf("Failed to seed storage: %v", err)
	}

	_, err = service.GetSession(ctx, expired.ID)
	var notFoundErr *storage.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("Expected NotFoundError for expired session, got %v", err)
	}

	// Expired sessions are removed on sight.
	if _, err = service.storage.Get(ctx, sessionKey(expired.ID)); err == nil {
		t.Error("Expected expired session to be deleted from storage")
	}
}

func TestSessionUser(t *testing.T) {
	session := Session{Username: "ravi", Name: "Ravi Kumar"}

	user := session.User()
	if user.Username != "ravi" || user.Name != "Ravi Kumar" {
		t.Errorf("Unexpected user: %+v", user)
	}
}
