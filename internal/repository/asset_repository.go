package repository

import (
	"patrimonio-go/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssetFilter list filters; zero values match everything
type AssetFilter struct {
	CategoryID uint
	Status     models.AssetStatus
}

func (f AssetFilter) apply(db *gorm.DB) *gorm.DB {
	if f.CategoryID != 0 {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

func preloadValues(db *gorm.DB) *gorm.DB {
	return db.Order("asset_field_values.id ASC")
}

// AssetRepository asset and field value data access
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates an AssetRepository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts an asset together with its field values
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByID loads an asset with its field values
func (r *AssetRepository) GetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Preload("FieldValues", preloadValues).First(&asset, id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ExistsByPatrimonio reports whether the tag is taken, ignoring excludeID
func (r *AssetRepository) ExistsByPatrimonio(patrimonio string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Asset{}).Where("patrimonio = ?", patrimonio)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// List returns a page of assets, newest first
func (r *AssetRepository) List(filter AssetFilter, offset, limit int) ([]models.Asset, int64, error) {
	var assets []models.Asset
	var total int64

	if err := filter.apply(r.db.Model(&models.Asset{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := filter.apply(r.db.Preload("FieldValues", preloadValues)).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&assets).Error
	return assets, total, err
}

// Update saves the asset columns. When values is non-nil the stored field
// values are deleted and replaced by values; nil leaves them untouched.
func (r *AssetRepository) Update(asset *models.Asset, values []models.AssetFieldValue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Asset{}).Where("id = ?", asset.ID).Updates(map[string]interface{}{
			"patrimonio":  asset.Patrimonio,
			"category_id": asset.CategoryID,
			"status":      asset.Status,
		}).Error
		if err != nil {
			return err
		}

		if values == nil {
			return nil
		}

		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.AssetFieldValue{}).Error; err != nil {
			return err
		}

		for i := range values {
			values[i].ID = 0
			values[i].AssetID = asset.ID
		}
		if len(values) > 0 {
			if err := tx.Omit(clause.Associations).Create(&values).Error; err != nil {
				return err
			}
		}
		asset.FieldValues = values
		return nil
	})
}

// Delete removes an asset and its field values
func (r *AssetRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&models.Asset{}).Select("id").Where("id = ?", id)
		return deleteAssets(tx, ids)
	})
}
