package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"usermgmt/internal/errors"
	"usermgmt/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=100" example:"Carlos Santos"`
	Email    string  `json:"email" validate:"required,email" example:"carlos.santos@example.com"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6" example:"password123"`
	RoleID   *int    `json:"role_id" validate:"required" example:"2"`
}

// UserResponse represents a created user. The password is never included.
type UserResponse struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Carlos Santos"`
	Email string `json:"email" example:"carlos.santos@example.com"`
}

// CreateUser godoc
// @Summary Create user
// @Description Creates a user bound to an existing role. Without a password a random one is generated.
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/ [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	existing, err := h.userService.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.MapErrorToHTTP(errors.ErrEmailAlreadyRegistered)
	}

	user, err := h.userService.CreateUser(ctx, service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   *req.RoleID,
	})
	if err != nil {
		return errors.MapErrorToHTTP(err).Wrap(err)
	}

	return c.JSON(http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
