package handler

import (
	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// FieldDefinitionHandler single field definition endpoints
type FieldDefinitionHandler struct {
	fieldService *service.FieldDefinitionService
}

// NewFieldDefinitionHandler creates the field definition handler
func NewFieldDefinitionHandler(fieldService *service.FieldDefinitionService) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{fieldService: fieldService}
}

// GetField returns one field definition
func (h *FieldDefinitionHandler) GetField(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	field, err := h.fieldService.Get(currentActor(c), id)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, field)
}

// UpdateField replaces name and type
func (h *FieldDefinitionHandler) UpdateField(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.FieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	field, err := h.fieldService.Update(currentActor(c), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "field updated", field)
}

// PatchField changes the provided attributes
func (h *FieldDefinitionHandler) PatchField(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.FieldDefinitionPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	field, err := h.fieldService.Patch(currentActor(c), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "field updated", field)
}

// DeleteField removes a field definition and its stored values
func (h *FieldDefinitionHandler) DeleteField(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.fieldService.Delete(currentActor(c), id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "field deleted", gin.H{"success": true})
}
