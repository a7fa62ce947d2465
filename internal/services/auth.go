package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/akosachev/panelshop/internal/logger"
)

// ErrInvalidCredentials is returned for a failed operator login.
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenGenerator issues operator session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// AuthService authenticates the dashboard operator against the configured
// account. There is exactly one operator; the credentials come from config,
// with the password stored as a bcrypt hash.
type AuthService struct {
	username     string
	passwordHash string
	tokens       TokenGenerator
}

// NewAuthService creates an AuthService for the configured operator account.
func NewAuthService(username, passwordHash string, tokens TokenGenerator) *AuthService {
	return &AuthService{username: username, passwordHash: passwordHash, tokens: tokens}
}

// Login verifies the credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		logger.Log.Warnw("login attempt for unknown operator", "username", username)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		logger.Log.Warnw("operator login failed", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate operator token", "error", err)
		return "", err
	}
	return token, nil
}
