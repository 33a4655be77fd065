package service

import (
	"errors"
	"fmt"
	"strings"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"

	"gorm.io/gorm"
)

// AssetService assets and their dynamic field values
type AssetService struct {
	assetRepo    *repository.AssetRepository
	categoryRepo *repository.CategoryRepository
	fieldRepo    *repository.FieldDefinitionRepository
}

// NewAssetService creates the asset service
func NewAssetService(
	assetRepo *repository.AssetRepository,
	categoryRepo *repository.CategoryRepository,
	fieldRepo *repository.FieldDefinitionRepository,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		fieldRepo:    fieldRepo,
	}
}

// List returns a page of assets matching the filter
func (s *AssetService) List(filter dto.AssetFilter) ([]dto.AssetResponse, int64, error) {
	filter.Normalize()

	assets, total, err := s.assetRepo.List(repository.AssetFilter{
		CategoryID: filter.CategoryID,
		Status:     models.AssetStatus(filter.Status),
	}, filter.Offset(), filter.PerPage)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.AssetResponse, len(assets))
	for i := range assets {
		items[i] = dto.NewAssetResponse(&assets[i])
	}
	return items, total, nil
}

// Get returns one asset
func (s *AssetService) Get(id uint) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "asset")
	}
	resp := dto.NewAssetResponse(asset)
	return &resp, nil
}

// Create registers an asset owned by the actor
func (s *AssetService) Create(actor Actor, req *dto.AssetRequest) (*dto.AssetResponse, error) {
	patrimonio, err := s.checkPatrimonio(req.Patrimonio, 0)
	if err != nil {
		return nil, err
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	values, err := s.buildValues(req.Category, req.FieldValues)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Patrimonio:  patrimonio,
		CategoryID:  req.Category,
		OwnerID:     actor.UserID,
		Status:      status,
		FieldValues: values,
	}
	if err := s.assetRepo.Create(asset); err != nil {
		return nil, err
	}
	return s.Get(asset.ID)
}

// Update replaces the asset and all of its field values. An empty
// field_values list clears them. A missing status keeps the current one.
func (s *AssetService) Update(id uint, req *dto.AssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "asset")
	}

	patrimonio, err := s.checkPatrimonio(req.Patrimonio, asset.ID)
	if err != nil {
		return nil, err
	}

	status := asset.Status
	if req.Status != "" {
		if status, err = parseStatus(req.Status); err != nil {
			return nil, err
		}
	}

	values, err := s.buildValues(req.Category, req.FieldValues)
	if err != nil {
		return nil, err
	}

	asset.Patrimonio = patrimonio
	asset.CategoryID = req.Category
	asset.Status = status

	if err := s.assetRepo.Update(asset, values); err != nil {
		return nil, err
	}
	return s.Get(asset.ID)
}

// Patch changes the provided attributes. Field values are replaced as a
// whole when present. Moving the asset to another category without new
// values clears the old ones, since they belong to the old category's schema.
func (s *AssetService) Patch(id uint, req *dto.AssetPatchRequest) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "asset")
	}

	if req.Patrimonio != nil {
		patrimonio, err := s.checkPatrimonio(*req.Patrimonio, asset.ID)
		if err != nil {
			return nil, err
		}
		asset.Patrimonio = patrimonio
	}

	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		asset.Status = status
	}

	categoryChanged := req.Category != nil && *req.Category != asset.CategoryID
	if req.Category != nil {
		asset.CategoryID = *req.Category
	}

	var values []models.AssetFieldValue
	switch {
	case req.FieldValues != nil:
		values, err = s.buildValues(asset.CategoryID, *req.FieldValues)
	case categoryChanged:
		values, err = s.buildValues(asset.CategoryID, nil)
	}
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Update(asset, values); err != nil {
		return nil, err
	}
	return s.Get(asset.ID)
}

// Delete removes an asset and its field values
func (s *AssetService) Delete(id uint) error {
	if _, err := s.assetRepo.GetByID(id); err != nil {
		return notFound(err, "asset")
	}
	return s.assetRepo.Delete(id)
}

func (s *AssetService) checkPatrimonio(patrimonio string, excludeID uint) (string, error) {
	patrimonio = strings.TrimSpace(patrimonio)
	if patrimonio == "" {
		return "", invalid("patrimonio must not be blank")
	}

	taken, err := s.assetRepo.ExistsByPatrimonio(patrimonio, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("patrimonio %w", ErrConflict)
	}
	return patrimonio, nil
}

func parseStatus(status string) (models.AssetStatus, error) {
	if status == "" {
		return models.StatusAvailable, nil
	}
	s := models.AssetStatus(status)
	if !s.Valid() {
		return "", invalid("status must be disponivel, em_uso, manutencao or inativo")
	}
	return s, nil
}

// buildValues checks the submitted values against the category schema. The
// result is never nil so callers always replace the stored set.
func (s *AssetService) buildValues(categoryID uint, inputs []dto.FieldValueInput) ([]models.AssetFieldValue, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("category %d does not exist", categoryID)
		}
		return nil, err
	}

	fields, err := s.fieldRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	schema := make(map[uint]models.FieldDefinition, len(fields))
	for _, f := range fields {
		schema[f.ID] = f
	}

	values := make([]models.AssetFieldValue, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))
	for _, in := range inputs {
		field, ok := schema[in.FieldDefinition]
		if !ok {
			return nil, invalid("field definition %d does not belong to category %d", in.FieldDefinition, categoryID)
		}
		if seen[field.ID] {
			return nil, invalid("field definition %d submitted more than once", field.ID)
		}
		seen[field.ID] = true

		if err := field.FieldType.CheckValue(in.Value); err != nil {
			return nil, invalid("%s: %v", field.Name, err)
		}

		values = append(values, models.AssetFieldValue{
			FieldDefinitionID: field.ID,
			Value:             in.Value,
		})
	}
	return values, nil
}
