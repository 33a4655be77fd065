package handler

import (
	"errors"
	"strconv"

	"patrimonio-go/internal/middleware"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleError maps service errors to HTTP responses
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNoSecretQuestion),
		errors.Is(err, service.ErrWrongSecretAnswer):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDisabled),
		errors.Is(err, service.ErrInvalidToken):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrTooManyAttempts):
		utils.TooManyRequests(c, err.Error())
	default:
		_ = c.Error(err)
		utils.InternalError(c, "internal server error")
	}
}

// bindError reports a request that failed binding or validation
func bindError(c *gin.Context, err error) {
	utils.BadRequest(c, utils.FormatValidationError(err).Error())
}

// paramID parses a positive numeric path parameter, answering 400 otherwise
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// currentActor the authenticated caller
func currentActor(c *gin.Context) service.Actor {
	userID, _ := middleware.GetUserID(c)
	username, _ := middleware.GetUsername(c)
	return service.Actor{
		UserID:   userID,
		Username: username,
		Role:     middleware.GetRole(c),
	}
}
