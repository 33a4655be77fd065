package service

import (
	"fmt"
	"strings"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
)

// CategoryService category registry
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates the category service
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns every category with its field definitions
func (s *CategoryService) List() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		items[i] = dto.NewCategoryResponse(&categories[i])
	}
	return items, nil
}

// Get returns one category
func (s *CategoryService) Get(id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// Create adds a category owned by the actor
func (s *CategoryService) Create(actor Actor, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name must not be blank")
	}

	if err := s.ensureNameFree(name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name, OwnerID: actor.UserID}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return s.Get(category.ID)
}

// Update renames a category
func (s *CategoryService) Update(id uint, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "category")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name must not be blank")
	}

	if name != category.Name {
		if err := s.ensureNameFree(name, category.ID); err != nil {
			return nil, err
		}
		if err := s.categoryRepo.UpdateName(category.ID, name); err != nil {
			return nil, err
		}
	}
	return s.Get(category.ID)
}

// Delete removes a category with its field definitions and assets
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return notFound(err, "category")
	}
	return s.categoryRepo.Delete(id)
}

func (s *CategoryService) ensureNameFree(name string, excludeID uint) error {
	taken, err := s.categoryRepo.ExistsByName(name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("category name %w", ErrConflict)
	}
	return nil
}
