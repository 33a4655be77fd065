package repository

import (
	"patrimonio-go/internal/models"

	"gorm.io/gorm"
)

// The schema declares ON DELETE CASCADE, but not every driver enforces it
// (sqlite needs foreign keys switched on), so deletes remove children explicitly.

// deleteAssets removes the assets selected by ids and their field values
func deleteAssets(tx *gorm.DB, ids interface{}) error {
	if err := tx.Where("asset_id IN (?)", ids).Delete(&models.AssetFieldValue{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN (?)", ids).Delete(&models.Asset{}).Error
}

// deleteFieldDefinitions removes the field definitions selected by ids and the values bound to them
func deleteFieldDefinitions(tx *gorm.DB, ids interface{}) error {
	if err := tx.Where("field_definition_id IN (?)", ids).Delete(&models.AssetFieldValue{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN (?)", ids).Delete(&models.FieldDefinition{}).Error
}

// deleteCategories removes the categories selected by ids with their assets and field definitions
func deleteCategories(tx *gorm.DB, ids interface{}) error {
	assetIDs := tx.Model(&models.Asset{}).Select("id").Where("category_id IN (?)", ids)
	if err := deleteAssets(tx, assetIDs); err != nil {
		return err
	}

	fieldIDs := tx.Model(&models.FieldDefinition{}).Select("id").Where("category_id IN (?)", ids)
	if err := deleteFieldDefinitions(tx, fieldIDs); err != nil {
		return err
	}

	return tx.Where("id IN (?)", ids).Delete(&models.Category{}).Error
}
