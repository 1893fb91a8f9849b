package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/api/metrics"
	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type assignRolesRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	RoleNames []string `json:"roleNames" validate:"required,min=1,dive,required"`
}

// AssignRoles replaces a user's roles. The admin role cannot be granted or revoked here.
//
// @Summary      Assign roles
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      assignRolesRequest  true  "Target email and role names"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/assign-roles [post]
func (h *UserHandler) AssignRoles(c echo.Context) error {
	var req assignRolesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.AssignRoles(c.Request().Context(), req.Email, req.RoleNames)
	metrics.RoleAssignmentsTotal.WithLabelValues(assignOutcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Me returns the authenticated principal.
//
// @Summary      Current user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func assignOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrRolesNotFound):
		return "roles_not_found"
	case errors.Is(err, domain.ErrAdminRoleImmutable):
		return "admin_immutable"
	default:
		return "error"
	}
}
