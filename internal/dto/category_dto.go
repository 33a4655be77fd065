package dto

import "patrimonio-go/internal/models"

// CategoryRequest create/update category. Owner is taken from the caller.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CategoryResponse category with its field definitions
type CategoryResponse struct {
	ID               uint                      `json:"id"`
	Name             string                    `json:"name"`
	Owner            uint                      `json:"owner"`
	FieldDefinitions []FieldDefinitionResponse `json:"field_definitions"`
}

// FieldDefinitionRequest create/update field definition
type FieldDefinitionRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	FieldType string `json:"field_type" binding:"omitempty,fieldtype"`
}

// FieldDefinitionPatchRequest partial update of a field definition
type FieldDefinitionPatchRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	FieldType *string `json:"field_type" binding:"omitempty,fieldtype"`
}

// FieldDefinitionResponse field definition
type FieldDefinitionResponse struct {
	ID        uint   `json:"id"`
	Category  uint   `json:"category"`
	Name      string `json:"name"`
	FieldType string `json:"field_type"`
}

// NewFieldDefinitionResponse converts a field definition
func NewFieldDefinitionResponse(f *models.FieldDefinition) FieldDefinitionResponse {
	return FieldDefinitionResponse{
		ID:        f.ID,
		Category:  f.CategoryID,
		Name:      f.Name,
		FieldType: string(f.FieldType),
	}
}

// NewCategoryResponse converts a category; field definitions must be preloaded
func NewCategoryResponse(c *models.Category) CategoryResponse {
	fields := make([]FieldDefinitionResponse, len(c.FieldDefinitions))
	for i := range c.FieldDefinitions {
		fields[i] = NewFieldDefinitionResponse(&c.FieldDefinitions[i])
	}
	return CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Owner:            c.OwnerID,
		FieldDefinitions: fields,
	}
}
