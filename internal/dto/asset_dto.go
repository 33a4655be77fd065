package dto

import "patrimonio-go/internal/models"

// FieldValueInput value of one custom field
type FieldValueInput struct {
	FieldDefinition uint   `json:"field_definition" binding:"required"`
	Value           string `json:"value"`
}

// AssetRequest full create/update of an asset. FieldValues replaces every
// stored value of the asset.
type AssetRequest struct {
	Patrimonio  string            `json:"patrimonio" binding:"required,max=100"`
	Status      string            `json:"status" binding:"omitempty,assetstatus"`
	Category    uint              `json:"category" binding:"required"`
	FieldValues []FieldValueInput `json:"field_values" binding:"dive"`
}

// AssetPatchRequest partial update of an asset. FieldValues, when present,
// replaces every stored value of the asset.
type AssetPatchRequest struct {
	Patrimonio  *string            `json:"patrimonio" binding:"omitempty,min=1,max=100"`
	Status      *string            `json:"status" binding:"omitempty,assetstatus"`
	Category    *uint              `json:"category"`
	FieldValues *[]FieldValueInput `json:"field_values"`
}

// AssetFilter list filters
type AssetFilter struct {
	CategoryID uint   `form:"category_id"`
	Status     string `form:"status" binding:"omitempty,assetstatus"`
	Pagination
}

// FieldValueResponse stored custom field value
type FieldValueResponse struct {
	FieldDefinition uint   `json:"field_definition"`
	Value           string `json:"value"`
}

// AssetResponse asset with its custom field values
type AssetResponse struct {
	ID          uint                 `json:"id"`
	Patrimonio  string               `json:"patrimonio"`
	Status      string               `json:"status"`
	StatusLabel string               `json:"status_label"`
	Category    uint                 `json:"category"`
	Owner       uint                 `json:"owner"`
	CreatedAt   string               `json:"created_at"`
	FieldValues []FieldValueResponse `json:"field_values"`
}

// NewAssetResponse converts an asset; field values must be preloaded
func NewAssetResponse(a *models.Asset) AssetResponse {
	values := make([]FieldValueResponse, len(a.FieldValues))
	for i, v := range a.FieldValues {
		values[i] = FieldValueResponse{FieldDefinition: v.FieldDefinitionID, Value: v.Value}
	}
	return AssetResponse{
		ID:          a.ID,
		Patrimonio:  a.Patrimonio,
		Status:      string(a.Status),
		StatusLabel: a.Status.Label(),
		Category:    a.CategoryID,
		Owner:       a.OwnerID,
		CreatedAt:   a.CreatedAt.Format(TimeLayout),
		FieldValues: values,
	}
}
