package handler

import (
	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/middleware"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register user registration
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "registration"
// @Success 201 {object} utils.Response{data=dto.UserInfo}
// @Router /api/user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.Created(c, "user registered", dto.NewUserInfo(user))
}

// Token user login
// @Summary Obtain an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} utils.Response{data=dto.LoginResponse}
// @Router /api/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "login successful", resp)
}

// Refresh issues a new access token
// @Summary Refresh the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "refresh token"
// @Success 200 {object} utils.Response{data=dto.RefreshResponse}
// @Router /api/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// GetMe current user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	userInfo, err := h.authService.GetMe(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, userInfo)
}

// Logout revokes the refresh token
// @Summary Log out
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RefreshRequest true "refresh token"
// @Success 200 {object} utils.Response
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.Refresh); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "logged out", nil)
}

// GetSecretQuestion returns the secret question of a user
func (h *AuthHandler) GetSecretQuestion(c *gin.Context) {
	var req dto.SecretQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	question, err := h.authService.GetSecretQuestion(req.Username)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.SecretQuestionResponse{SecretQuestion: question})
}

// ResetPassword sets a new password after checking the secret answer
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "password reset successfully", nil)
}
