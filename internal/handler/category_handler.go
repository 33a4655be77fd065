package handler

import (
	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler categories and their field definitions
type CategoryHandler struct {
	categoryService *service.CategoryService
	fieldService    *service.FieldDefinitionService
}

// NewCategoryHandler creates the category handler
func NewCategoryHandler(categoryService *service.CategoryService, fieldService *service.FieldDefinitionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		fieldService:    fieldService,
	}
}

// ListCategories lists every category
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GetCategory returns one category with its field definitions
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// CreateCategory creates a category owned by the caller
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Create(currentActor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.Created(c, "category created", category)
}

// UpdateCategory renames a category (PUT and PATCH)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "category updated", category)
}

// DeleteCategory removes a category together with its fields and assets
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "category deleted", gin.H{"success": true})
}

// ListFields lists the field definitions of a category
func (h *CategoryHandler) ListFields(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fields, err := h.fieldService.ListByCategory(id)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, fields)
}

// CreateField adds a field definition to a category
func (h *CategoryHandler) CreateField(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.FieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	field, err := h.fieldService.Create(currentActor(c), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.Created(c, "field created", field)
}
