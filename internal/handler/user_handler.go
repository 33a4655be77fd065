package handler

import (
	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler user administration
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates the user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lists users page by page
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page dto.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		bindError(c, err)
		return
	}
	page.Normalize()

	users, total, err := h.userService.List(page)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.PaginatedResponse(c, users, total, page.Page, page.PerPage)
}

// GetUser returns one user
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// UpdateUser changes username and secret question
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "user updated", user)
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(currentActor(c), id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "user deleted", gin.H{"success": true})
}

// UpdateRole changes the role of a user
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.UpdateRole(currentActor(c), id, req.Role)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "role updated", user)
}
