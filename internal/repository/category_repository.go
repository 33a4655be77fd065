package repository

import (
	"patrimonio-go/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a CategoryRepository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func preloadFields(db *gorm.DB) *gorm.DB {
	return db.Order("field_definitions.id ASC")
}

// Create inserts a category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID loads a category with its field definitions
func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("FieldDefinitions", preloadFields).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ExistsByName reports whether the name is taken, ignoring excludeID
func (r *CategoryRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// List returns every category ordered by name
func (r *CategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Preload("FieldDefinitions", preloadFields).Order("name ASC").Find(&categories).Error
	return categories, err
}

// UpdateName renames a category
func (r *CategoryRepository) UpdateName(id uint, name string) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Update("name", name).Error
}

// Delete removes a category with its field definitions and assets
func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&models.Category{}).Select("id").Where("id = ?", id)
		return deleteCategories(tx, ids)
	})
}
