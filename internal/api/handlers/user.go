package handlers

import (
	"net/http"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe handles GET /me
// @Summary Get current user
// @Description Get the profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /me
// @Summary Update current user
// @Description Update name, email or phone of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
// @Summary List users
// @Description List users, optionally filtered by role or a name/email search. Archived users are only listed for supervisors and above.
// @Tags users
// @Produce json
// @Param role query string false "Role filter" Enums(GUARD, SUPERVISOR, ADMIN, SUPER_ADMIN)
// @Param q query string false "Search in name and email"
// @Param include_archived query bool false "Include archived users"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.UsersListResponse "Users"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	req := service.ListUsersRequest{
		IncludeArchived: queryBool(c, "include_archived"),
		Query:           c.Query("q"),
	}
	if raw := c.Query("role"); raw != "" {
		role := models.Role(raw)
		if !role.IsValid() {
			badRequest(c, "invalid role")
			return
		}
		req.Role = &role
	}
	req.Page, req.PageSize = pagination(c)

	users, err := h.userService.List(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "User"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateRole handles PUT /users/:id/role
// @Summary Change a user's role
// @Description Admins change roles below admin; only super admins grant or revoke admin. Nobody changes their own role.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ArchiveUser handles POST /users/:id/archive
// @Summary Archive a user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Archived user"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/archive [post]
func (h *UserHandler) ArchiveUser(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveUser handles POST /users/:id/unarchive
// @Summary Restore an archived user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Restored user"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/unarchive [post]
func (h *UserHandler) UnarchiveUser(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *UserHandler) setArchived(c *gin.Context, archived bool) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	var (
		user *service.UserResponse
		err  error
	)
	if archived {
		user, err = h.userService.Archive(c.Request.Context(), caller, id)
	} else {
		user, err = h.userService.Unarchive(c.Request.Context(), caller, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
