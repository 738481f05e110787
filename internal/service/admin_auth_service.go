package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/krupasawant/SoleSense/internal/cache"
	"github.com/krupasawant/SoleSense/internal/models"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// AdminAuthService owns the admin session lifecycle: sign-in creates a
// session record keyed by the token's jti, sign-out deletes it, and the JWT
// middleware checks it on every request so revoked tokens stop working.
type AdminAuthService struct {
	admins     AdminUserStore
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAdminAuthService(admins AdminUserStore, sessions SessionStore, sessionTTL time.Duration) *AdminAuthService {
	return &AdminAuthService{admins: admins, sessions: sessions, sessionTTL: sessionTTL}
}

// Login verifies credentials, issues a JWT, and records the session.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (string, error) {
	log.Debug().Str("email", email).Msg("login attempt")

	user, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to get user by email")
		return "", errors.New("invalid credentials")
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("account is inactive")
		return "", errors.New("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("password verification failed")
		return "", errors.New("invalid credentials")
	}

	token, tokenID, _, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	session := &cache.Session{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		LoggedInAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, tokenID, session, s.sessionTTL); err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("login successful")
	return token, nil
}

// Logout revokes the session for a token ID. Idempotent.
func (s *AdminAuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Delete(ctx, tokenID)
}

// CurrentSession returns the live session for a token ID, or
// utils.ErrUnauthorized when none exists.
func (s *AdminAuthService) CurrentSession(ctx context.Context, tokenID string) (*cache.Session, error) {
	session, err := s.sessions.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, cache.ErrSessionNotFound) {
			return nil, utils.ErrUnauthorized
		}
		return nil, err
	}
	return session, nil
}

// CreateAdmin creates an admin account with a bcrypt-hashed password.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, password, name string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		IsActive:     true,
	}

	return s.admins.Create(ctx, user)
}
