package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gatekeeper/internal/errors"
	"gatekeeper/internal/model"
	"gatekeeper/internal/service"
)

// AuthURLBuilder builds the OAuth authorization URL for the redirect flow.
type AuthURLBuilder interface {
	AuthCodeURL(state string) string
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	urlBuilder  AuthURLBuilder
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, urlBuilder AuthURLBuilder) *AuthHandler {
	return &AuthHandler{authService: authService, urlBuilder: urlBuilder}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Country  string `json:"country"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleAuthRequest carries the raw Google ID token (One Tap credential).
type GoogleAuthRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), service.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Country:  req.Country,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "user registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user.Public(),
	})
}

// GoogleAuth godoc
// @Summary Authenticate with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google credential"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) GoogleAuth(c echo.Context) error {
	var req GoogleAuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no credential provided")
	}

	user, token, err := h.authService.GoogleAuth(c.Request().Context(), req.Credential)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user.Public(),
	})
}

// GoogleAuthURL godoc
// @Summary Get the Google OAuth redirect URL
// @Tags auth
// @Produce json
// @Param state query string true "Opaque CSRF state"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/google/url [get]
func (h *AuthHandler) GoogleAuthURL(c echo.Context) error {
	state := c.QueryParam("state")
	if state == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "state is required")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"url": h.urlBuilder.AuthCodeURL(state),
	})
}

// httpError translates a domain error into an echo HTTP error.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
