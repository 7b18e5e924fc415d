package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/middleware"
)

// googleOAuthHandler implements the server-side Google OAuth redirect flow
// as an alternative to the ID token endpoint.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	authService        portssvc.AuthSvcFacade
}

// registerGoogleOAuthRoutes registers the browser redirect flow under the
// auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuthHandler,
		authService:        services.Auth,
	}

	google := auth.Group("/google")
	{
		google.GET("/login", h.loginRedirect)
		google.GET("/callback", h.callback)
	}
}

// loginRedirect godoc
// @Summary Start the Google OAuth redirect flow
// @Description Sets a state cookie and redirects the browser to Google's consent page
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginRedirect(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to start Google login")
		return
	}

	// State round-trips through a short-lived cookie so the callback can
	// reject forged requests.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// callback godoc
// @Summary Google OAuth callback
// @Description Verifies the state, exchanges the code and signs the user in
// @Tags auth
// @Produce  json
// @Param   state query string true "State from the login redirect"
// @Param   code query string true "Authorization code from Google"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "State mismatch or exchange failure"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "OAuth state mismatch"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("failed to exchange authorization code", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired authorization code"})
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch Google profile")
		return
	}

	resp, err := h.authService.LoginWithGoogleUserInfo(ctx, *info)
	if err != nil {
		respondError(c, logger, err, "Failed to log in with Google")
		return
	}
	c.JSON(http.StatusOK, resp)
}
