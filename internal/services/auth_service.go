package services

import (
	"context"

	"sitecms_backend/internal/auth"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/services/dto"
	"sitecms_backend/pkg/apperrors"
)

// AuthService grants the admin capability. There is exactly one admin
// account, configured at startup.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate verifies a session token and returns its claims.
	Authenticate(token string) (*auth.Claims, error)
	SessionMaxAge() int
}

type AuthServiceImpl struct {
	credentials *auth.AdminCredentials
	tokens      *auth.TokenManager
}

func NewAuthService(credentials *auth.AdminCredentials, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		credentials: credentials,
		tokens:      tokens,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.credentials.Verify(req.Username, req.Password) {
		logger.CtxWarn(ctx, "admin login rejected", "username", req.Username)
		return nil, apperrors.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokens.Issue(s.credentials.Username())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin logged in", "username", req.Username)
	return &dto.LoginResponse{
		Message:   "Login successful",
		Username:  s.credentials.Username(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthServiceImpl) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired session")
	}
	if !claims.IsAdmin() || claims.Username != s.credentials.Username() {
		return nil, apperrors.NewForbiddenError("Admin access required")
	}
	return claims, nil
}

func (s *AuthServiceImpl) SessionMaxAge() int {
	return int(s.tokens.TTL().Seconds())
}
