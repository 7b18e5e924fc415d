package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/platform/config"
	"github.com/harborbytes/booklion/internal/utils"
)

// tokenService implements the TokenSvcFacade for signing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// authService implements registration and login on top of the user service.
type authService struct {
	BaseService
	cfg      *config.Config
	userSvc  portssvc.UserSvcFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userSvc:  userSvc,
		tokenSvc: tokenSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a password-backed user and signs them in.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "registration",
		},
	}

	created, err := s.userSvc.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, created)
}

// Login verifies the credentials against the stored bcrypt hash. Lookup
// failure and password mismatch report the same unauthorized error so the
// response does not reveal which emails are registered.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userSvc.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return s.issueToken(ctx, user)
}

// LoginWithGoogle validates a Google ID token and signs the user in,
// provisioning them on first sign-in.
func (s *authService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := idtoken.Validate(ctx, req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogDebug(ctx, "google ID token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: google ID token validation failed", apperrors.ErrUnauthorized)
	}

	info := domain.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if given, ok := payload.Claims["given_name"].(string); ok {
		info.GivenName = given
	}
	if family, ok := payload.Claims["family_name"].(string); ok {
		info.FamilyName = family
	}
	return s.LoginWithGoogleUserInfo(ctx, info)
}

// LoginWithGoogleUserInfo signs in with already-verified Google profile
// data, creating the user if this is their first sign-in.
func (s *authService) LoginWithGoogleUserInfo(ctx context.Context, info domain.GoogleUserInfo) (*dto.AuthResponse, error) {
	if info.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", apperrors.ErrUnauthorized)
	}

	user, err := s.userSvc.GetUserByEmail(ctx, info.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		now := time.Now().UTC()
		// Google users carry no password hash; they can only sign in
		// through Google until they set one.
		newUser := domain.User{
			UserID:    uuid.NewString(),
			Email:     info.Email,
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Role:      domain.RoleUser,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "google",
				LastUpdatedAt: now,
				LastUpdatedBy: "google",
			},
		}
		user, err = s.userSvc.CreateUser(ctx, newUser)
	}
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, user)
}

func (s *authService) issueToken(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

// googleOAuthHandlerService implements the server-side OAuth redirect flow.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// GenerateStateString creates a secure random CSRF token for the OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to get user information from Google.
func (s *googleOAuthHandlerService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &userInfo, nil
}
