package service

import (
	"strings"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
)

// FieldDefinitionService custom field schema of categories.
//
// Listing is scoped by category only. Creating, reading, updating and deleting
// a single definition is restricted to categories owned by the actor;
// administrators reach every category. Definitions outside the actor's scope
// are reported as not found.
type FieldDefinitionService struct {
	fieldRepo    *repository.FieldDefinitionRepository
	categoryRepo *repository.CategoryRepository
}

// NewFieldDefinitionService creates the field definition service
func NewFieldDefinitionService(fieldRepo *repository.FieldDefinitionRepository, categoryRepo *repository.CategoryRepository) *FieldDefinitionService {
	return &FieldDefinitionService{fieldRepo: fieldRepo, categoryRepo: categoryRepo}
}

func inScope(actor Actor, category *models.Category) bool {
	return category != nil && (actor.IsAdmin() || category.OwnerID == actor.UserID)
}

// ListByCategory returns the field definitions of a category
func (s *FieldDefinitionService) ListByCategory(categoryID uint) ([]dto.FieldDefinitionResponse, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, notFound(err, "category")
	}

	fields, err := s.fieldRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FieldDefinitionResponse, len(fields))
	for i := range fields {
		items[i] = dto.NewFieldDefinitionResponse(&fields[i])
	}
	return items, nil
}

// Create adds a field definition to a category in the actor's scope
func (s *FieldDefinitionService) Create(actor Actor, categoryID uint, req *dto.FieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, notFound(err, "category")
	}
	if !inScope(actor, category) {
		return nil, notFoundErr("category")
	}

	field := &models.FieldDefinition{CategoryID: category.ID}
	if err := applyField(field, &req.Name, &req.FieldType); err != nil {
		return nil, err
	}

	if err := s.fieldRepo.Create(field); err != nil {
		return nil, err
	}
	resp := dto.NewFieldDefinitionResponse(field)
	return &resp, nil
}

// Get returns a field definition in the actor's scope
func (s *FieldDefinitionService) Get(actor Actor, id uint) (*dto.FieldDefinitionResponse, error) {
	field, err := s.scoped(actor, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewFieldDefinitionResponse(field)
	return &resp, nil
}

// Update replaces the name of a field definition, and its type when one is sent
func (s *FieldDefinitionService) Update(actor Actor, id uint, req *dto.FieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	var fieldType *string
	if req.FieldType != "" {
		fieldType = &req.FieldType
	}
	return s.save(actor, id, &req.Name, fieldType)
}

// Patch changes the provided attributes of a field definition
func (s *FieldDefinitionService) Patch(actor Actor, id uint, req *dto.FieldDefinitionPatchRequest) (*dto.FieldDefinitionResponse, error) {
	return s.save(actor, id, req.Name, req.FieldType)
}

// Delete removes a field definition and every value stored for it
func (s *FieldDefinitionService) Delete(actor Actor, id uint) error {
	field, err := s.scoped(actor, id)
	if err != nil {
		return err
	}
	return s.fieldRepo.Delete(field.ID)
}

func (s *FieldDefinitionService) save(actor Actor, id uint, name, fieldType *string) (*dto.FieldDefinitionResponse, error) {
	field, err := s.scoped(actor, id)
	if err != nil {
		return nil, err
	}

	if err := applyField(field, name, fieldType); err != nil {
		return nil, err
	}
	if err := s.fieldRepo.Update(field); err != nil {
		return nil, err
	}

	resp := dto.NewFieldDefinitionResponse(field)
	return &resp, nil
}

func (s *FieldDefinitionService) scoped(actor Actor, id uint) (*models.FieldDefinition, error) {
	field, err := s.fieldRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "field definition")
	}
	if !inScope(actor, field.Category) {
		return nil, notFoundErr("field definition")
	}
	return field, nil
}

// applyField sets the non-nil attributes; an empty type defaults to text
func applyField(field *models.FieldDefinition, name, fieldType *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return invalid("name must not be blank")
		}
		field.Name = trimmed
	}

	if fieldType != nil {
		t := models.FieldType(*fieldType)
		if t == "" {
			t = models.FieldTypeText
		}
		if !t.Valid() {
			return invalid("field_type must be text, number or date")
		}
		field.FieldType = t
	}
	return nil
}
