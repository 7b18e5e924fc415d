package services

import (
	"context"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/dto"
	"golang.org/x/oauth2"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT for the user and returns it with its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvcFacade defines registration and login flows.
type AuthSvcFacade interface {
	// Register creates a password-backed user and returns a signed token.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error)

	// Login verifies email and password and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// LoginWithGoogle validates a Google ID token, provisioning the user on
	// first sign-in, and returns a signed token.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error)

	// LoginWithGoogleUserInfo signs in with profile data already verified
	// against Google, provisioning the user on first sign-in.
	LoginWithGoogleUserInfo(ctx context.Context, info domain.GoogleUserInfo) (*dto.AuthResponse, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for the server-side
// Google OAuth redirect flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
