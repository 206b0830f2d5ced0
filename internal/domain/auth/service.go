package auth

import "context"

// AuthService handles admin dashboard authentication.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
