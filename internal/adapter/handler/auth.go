package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetbrief-team/meetbrief/internal/adapter/presenter"
	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
	"github.com/meetbrief-team/meetbrief/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// GoogleLogin redirects to the Google consent screen
// GET /v1/auth/google/login
func (h *Auth) GoogleLogin(c echo.Context) error {
	resp, err := h.authService.LoginURL(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, resp.URL)
}

// GoogleCallback completes the OAuth code exchange and sets the session cookie
// GET /v1/auth/google/callback
func (h *Auth) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing code or state parameter",
		})
	}

	resp, err := h.authService.HandleCallback(c.Request().Context(), code, state)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "access_token",
		Value:    resp.AccessToken,
		Path:     "/",
		MaxAge:   int(resp.ExpiresIn),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return HandleSuccess(h.logger, c, resp)
}

// Me returns the authenticated user's profile
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}
