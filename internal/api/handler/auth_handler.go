package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/api/metrics"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.FullName, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, user)
}

// Login authenticates a user and returns a bearer token. The request is the
// standard OAuth2 password form; username carries the account email.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
