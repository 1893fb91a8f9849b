package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/api/metrics"
	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// bcrypt only hashes the first 72 bytes; the validator's max counts runes.
const maxPasswordBytes = 72

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email     string `json:"email" validate:"required,email,max=40"`
	Password  string `json:"password" validate:"required,min=4,max=72"`
	FirstName string `json:"firstName" validate:"max=40"`
	LastName  string `json:"lastName" validate:"max=40"`
}

// Login exchanges credentials for an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.AccessToken
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.authService.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidCredentials
	}

	tok, err := h.authService.Login(ctx, user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tok)
}

// Signup creates a guest account and returns its access token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  ports.AccessToken
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if len(req.Password) > maxPasswordBytes {
		return domain.ErrPasswordTooLong
	}

	tok, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrDuplicateEmail) {
			result = "duplicate"
		}
		metrics.SignupsTotal.WithLabelValues(result).Inc()
		return err
	}
	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, tok)
}
