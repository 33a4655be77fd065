package repository

import (
	"patrimonio-go/internal/models"

	"gorm.io/gorm"
)

// FieldDefinitionRepository field definition data access
type FieldDefinitionRepository struct {
	db *gorm.DB
}

// NewFieldDefinitionRepository creates a FieldDefinitionRepository
func NewFieldDefinitionRepository(db *gorm.DB) *FieldDefinitionRepository {
	return &FieldDefinitionRepository{db: db}
}

// Create inserts a field definition
func (r *FieldDefinitionRepository) Create(field *models.FieldDefinition) error {
	return r.db.Create(field).Error
}

// GetByID loads a field definition with its category
func (r *FieldDefinitionRepository) GetByID(id uint) (*models.FieldDefinition, error) {
	var field models.FieldDefinition
	err := r.db.Preload("Category").First(&field, id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// ListByCategory returns the field definitions of a category
func (r *FieldDefinitionRepository) ListByCategory(categoryID uint) ([]models.FieldDefinition, error) {
	var fields []models.FieldDefinition
	err := r.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&fields).Error
	return fields, err
}

// Update saves name and type
func (r *FieldDefinitionRepository) Update(field *models.FieldDefinition) error {
	return r.db.Model(&models.FieldDefinition{}).Where("id = ?", field.ID).Updates(map[string]interface{}{
		"name":       field.Name,
		"field_type": field.FieldType,
	}).Error
}

// Delete removes a field definition and the values stored for it
func (r *FieldDefinitionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&models.FieldDefinition{}).Select("id").Where("id = ?", id)
		return deleteFieldDefinitions(tx, ids)
	})
}

// ListByIDs returns the field definitions with the given ids
func (r *FieldDefinitionRepository) ListByIDs(ids []uint) ([]models.FieldDefinition, error) {
	var fields []models.FieldDefinition
	if len(ids) == 0 {
		return fields, nil
	}
	err := r.db.Where("id IN ?", ids).Order("category_id ASC").Order("id ASC").Find(&fields).Error
	return fields, err
}
