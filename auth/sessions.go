package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/barrabusiness/lead_management_system/backend/models"
)

// SessionKeyPrefix scopes session records in Redis; the suffix is the
// session id carried inside the signed token.
const SessionKeyPrefix = "BARRA_USER_SESSION:"

var (
	// ErrInvalidCredentials covers unknown e-mails and wrong passwords
	// alike, so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")
	// ErrNoSession means the token is missing, malformed, or its record
	// was cleared by logout.
	ErrNoSession = errors.New("sessão não encontrada")
)

// UserSource lists staff accounts; the document store satisfies it.
type UserSource interface {
	GetUsers(ctx context.Context) ([]models.User, error)
}

// Sessions is the session guard: credentials are checked against the
// store's user list and the matched record is serialized under a session
// key. Presence of that record alone authorizes; records carry no TTL and
// tokens no expiry, so a session ends only at logout. The record is a
// snapshot taken at login and is not refreshed when the account is later
// edited or removed.
type Sessions struct {
	users  UserSource
	client *redis.Client
	secret []byte
}

func NewSessions(users UserSource, client *redis.Client, secret []byte) *Sessions {
	return &Sessions{users: users, client: client, secret: secret}
}

// Login validates credentials and opens a session, returning the signed
// token. The e-mail match is exact and case-sensitive.
func (s *Sessions) Login(ctx context.Context, email, password string) (string, models.User, error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		return "", models.User{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if CheckPassword(password, u.Password) != nil {
			break
		}

		sessionID := uuid.NewString()
		record, err := json.Marshal(u)
		if err != nil {
			return "", models.User{}, err
		}
		if err := s.client.Set(ctx, SessionKeyPrefix+sessionID, record, 0).Err(); err != nil {
			return "", models.User{}, fmt.Errorf("store session: %w", err)
		}

		token, err := signToken(s.secret, u.ID, sessionID)
		if err != nil {
			return "", models.User{}, err
		}
		return token, u, nil
	}

	return "", models.User{}, ErrInvalidCredentials
}

// Logout clears the session record. Bad tokens are ignored so the call
// never fails.
func (s *Sessions) Logout(ctx context.Context, token string) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return
	}
	s.client.Del(ctx, SessionKeyPrefix+claims.SessionID)
}

// Current resolves a token to the user record captured at login.
func (s *Sessions) Current(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoSession
	}
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return models.User{}, ErrNoSession
	}

	record, err := s.client.Get(ctx, SessionKeyPrefix+claims.SessionID).Bytes()
	if err == redis.Nil {
		return models.User{}, ErrNoSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetch session: %w", err)
	}

	var u models.User
	if err := json.Unmarshal(record, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// IsAuthenticated reports whether the token maps to a live session.
func (s *Sessions) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.Current(ctx, token)
	return err == nil
}
