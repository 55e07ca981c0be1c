package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"usermgmt/internal/errors"
	"usermgmt/internal/service"
)

// RoleHandler handles role endpoints.
type RoleHandler struct {
	roleService service.RoleService
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// RoleResponse represents a role.
type RoleResponse struct {
	ID          uint   `json:"id" example:"1"`
	Description string `json:"description" example:"Administrador"`
}

// GetRole godoc
// @Summary Get role by id
// @Description Returns a single role by its identifier.
// @Tags roles
// @Produce json
// @Param role_id path int true "Role ID"
// @Success 200 {object} RoleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /role/{role_id} [get]
func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("role_id"))
	if err != nil {
		return errors.MapErrorToHTTP(errors.ErrInvalidRoleID)
	}

	role, err := h.roleService.GetRoleByID(c.Request().Context(), id)
	if err != nil {
		return errors.MapErrorToHTTP(err).Wrap(err)
	}

	return c.JSON(http.StatusOK, RoleResponse{
		ID:          role.ID,
		Description: role.Description,
	})
}
