// Package auth implements the identity gate: two built-in accounts, a
// persisted signup registry and KV-backed sessions.
//
// Credentials are stored and compared as plain text. That is a known,
// accepted weakness of this system: it guards a personal expense log,
// not anything requiring real trust infrastructure.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username, password and name are required")
	ErrUsernameTaken      = errors.New("username already exists")
)

type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type registeredUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

var builtinUsers = map[string]registeredUser{
	"admin": {Username: "admin", Password: "admin", Name: "Administrator"},
	"user":  {Username: "user", Password: "user", Name: "Standard User"},
}

const registryKey = "paytrack.users"

type Service struct {
	storage storage.Storage
	logger  *logger.Logger
}

func NewService(s storage.Storage, log *logger.Logger) *Service {
	return &Service{
		storage: s,
		logger:  log,
	}
}

// Authenticate checks a username/password pair against the built-in
// accounts and the persisted registry. Comparison is exact and
// case-sensitive on both fields.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if builtin, ok := builtinUsers[username]; ok && builtin.Password == password {
		return User{Username: builtin.Username, Name: builtin.Name}, nil
	}

	registry, err := s.registry(ctx)
	if err != nil {
		return User{}, err
	}

	for _, registered := range registry {
		if registered.Username == username && registered.Password == password {
			return User{Username: registered.Username, Name: registered.Name}, nil
		}
	}

	return User{}, ErrInvalidCredentials
}

// Register appends a new account to the persisted registry. It does not
// log the new user in; the caller returns to the signin flow.
func (s *Service) Register(ctx context.Context, username, password, name string) error {
	if username == "" || password == "" || name == "" {
		return ErrMissingFields
	}

	if _, ok := builtinUsers[username]; ok {
		return ErrUsernameTaken
	}

	registry, err := s.registry(ctx)
	if err != nil {
		return err
	}

	for _, registered := range registry {
		if registered.Username == username {
			return ErrUsernameTaken
		}
	}

	registry = append(registry, registeredUser{
		Username: username,
		Password: password,
		Name:     name,
	})

	value, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("failed to encode user registry: %w", err)
	}

	if err = s.storage.Set(ctx, registryKey, string(value)); err != nil {
		return fmt.Errorf("failed to save user registry: %w", err)
	}

	s.logger.Info("Registered user", "username", username)

	return nil
}

func (s *Service) registry(ctx context.Context) ([]registeredUser, error) {
	value, err := s.storage.Get(ctx, registryKey)
	if err != nil {
		var notFoundErr *storage.NotFoundError
		if errors.As(err, &notFoundErr) {
			return []registeredUser{}, nil
		}
		return nil, fmt.Errorf("failed to load user registry: %w", err)
	}

	var registry []registeredUser
	if err = json.Unmarshal([]byte(value), &registry); err != nil {
		return nil, fmt.Errorf("failed to decode user registry: %w", err)
	}

	return registry, nil
}
