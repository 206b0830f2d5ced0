package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/auth"
	"github.com/punchclock-hq/punchclock-backend/internal/domain/user"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same answer as a wrong password, no account enumeration.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Rotate: the old refresh token dies with the new pair.
	s.jwtService.RevokeToken(req.RefreshToken)
	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
