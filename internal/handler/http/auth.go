package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/punchclock-hq/punchclock-backend/internal/domain/auth"
	"github.com/punchclock-hq/punchclock-backend/internal/handler/http/response"
	"github.com/punchclock-hq/punchclock-backend/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt)
	http.SetCookie(w, refreshTokenCookie)

	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshRequest

	// Prefer the HttpOnly cookie; fall back to the request body for API
	// clients that manage the token themselves.
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		refreshReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil || refreshReq.RefreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt)
	http.SetCookie(w, refreshTokenCookie)

	response.SuccessWithMessage(w, "Token refreshed", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)

	response.SuccessWithMessage(w, "Logout successful", nil)
}
