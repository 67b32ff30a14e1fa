package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hotel-infinity/models"
	"hotel-infinity/storage"
	"hotel-infinity/utils"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login checks the pair against the fixed admin credential and, on success,
// replaces the persisted session so a restart stays authenticated. Wrong
// email and wrong password produce the same error.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if normalizeEmail(email) != s.adminEmail {
		return nil, utils.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
		return nil, utils.Unauthorized("invalid credentials")
	}

	token, err := generateTokenHex(32)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	sess := models.Session{
		Token: token,
		User: models.User{
			ID:    "1",
			Email: s.adminEmail,
			Name:  s.adminName,
			Role:  models.RoleAdmin,
		},
		CreatedAt: s.now(),
	}
	s.session = &sess

	if err := s.persistSlot(ctx, storage.SlotSession, sess); err != nil {
		return &sess, err
	}
	return &sess, nil
}

// Logout clears the live session and its persisted slot. The token must
// match the session being cleared.
func (s *Store) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(token); err != nil {
		return err
	}
	s.session = nil
	if err := s.slots.Delete(ctx, storage.SlotSession); err != nil {
		return utils.InternalError(err)
	}
	return nil
}

// Register is a pass-through to Login for the fixed admin address. It never
// creates accounts; any other email is rejected like a bad login.
func (s *Store) Register(ctx context.Context, email, password, _ string) (*models.Session, error) {
	if normalizeEmail(email) != s.adminEmail {
		return nil, utils.Unauthorized("invalid credentials")
	}
	return s.Login(ctx, email, password)
}

// SessionByToken reports the live session when token matches it.
func (s *Store) SessionByToken(token string) (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || token == "" || s.session.Token != token {
		return nil, false
	}
	sess := *s.session
	return &sess, true
}

// requireAdmin is the data-layer authorization check behind every admin
// mutation. Callers must hold s.mu.
func (s *Store) requireAdmin(token string) error {
	if s.session == nil || token == "" || s.session.Token != token {
		return utils.Unauthorized("authentication required")
	}
	return nil
}
