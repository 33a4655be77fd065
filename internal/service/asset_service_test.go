package service

import (
	"testing"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monitorFields() []models.FieldDefinition {
	return []models.FieldDefinition{
		{Name: "Marca", FieldType: models.FieldTypeText},
		{Name: "Polegadas", FieldType: models.FieldTypeNumber},
		{Name: "Compra", FieldType: models.FieldTypeDate},
	}
}

func TestAssetCreateAndUpdateReplacesValues(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	category, fields := env.createCategory(t, editor, "Monitores", monitorFields()...)

	created, err := s.Create(editor, &dto.AssetRequest{
		Patrimonio: "1001",
		Category:   category.ID,
		FieldValues: []dto.FieldValueInput{
			{FieldDefinition: fields[0].ID, Value: "Dell"},
			{FieldDefinition: fields[1].ID, Value: "24"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "disponivel", created.Status)
	assert.Equal(t, editor.UserID, created.Owner)
	assert.Len(t, created.FieldValues, 2)

	updated, err := s.Update(created.ID, &dto.AssetRequest{
		Patrimonio: "1001",
		Status:     "em_uso",
		Category:   category.ID,
		FieldValues: []dto.FieldValueInput{
			{FieldDefinition: fields[2].ID, Value: "2024-03-01"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "em_uso", updated.Status)
	require.Len(t, updated.FieldValues, 1)
	assert.Equal(t, fields[2].ID, updated.FieldValues[0].FieldDefinition)

	cleared, err := s.Update(created.ID, &dto.AssetRequest{Patrimonio: "1001", Category: category.ID})
	require.NoError(t, err)
	assert.Empty(t, cleared.FieldValues)
}

func TestAssetRejectsForeignAndInvalidValues(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	category, fields := env.createCategory(t, editor, "Monitores", monitorFields()...)
	_, otherFields := env.createCategory(t, editor, "Cadeiras", models.FieldDefinition{Name: "Cor", FieldType: models.FieldTypeText})

	_, err := s.Create(editor, &dto.AssetRequest{
		Patrimonio:  "1001",
		Category:    category.ID,
		FieldValues: []dto.FieldValueInput{{FieldDefinition: otherFields[0].ID, Value: "azul"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(editor, &dto.AssetRequest{
		Patrimonio:  "1001",
		Category:    category.ID,
		FieldValues: []dto.FieldValueInput{{FieldDefinition: fields[1].ID, Value: "grande"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(editor, &dto.AssetRequest{
		Patrimonio: "1001",
		Category:   category.ID,
		FieldValues: []dto.FieldValueInput{
			{FieldDefinition: fields[0].ID, Value: "Dell"},
			{FieldDefinition: fields[0].ID, Value: "LG"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(editor, &dto.AssetRequest{Patrimonio: "1001", Category: 9999})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(editor, &dto.AssetRequest{Patrimonio: "1001", Category: category.ID, Status: "quebrado"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	var n int64
	require.NoError(t, env.db.Model(&models.Asset{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAssetDuplicatePatrimonio(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	category, _ := env.createCategory(t, editor, "Monitores")

	first, err := s.Create(editor, &dto.AssetRequest{Patrimonio: "1001", Category: category.ID})
	require.NoError(t, err)
	second, err := s.Create(editor, &dto.AssetRequest{Patrimonio: "1002", Category: category.ID})
	require.NoError(t, err)

	_, err = s.Create(editor, &dto.AssetRequest{Patrimonio: "1001", Category: category.ID})
	assert.ErrorIs(t, err, ErrConflict)

	taken := "1001"
	_, err = s.Patch(second.ID, &dto.AssetPatchRequest{Patrimonio: &taken})
	assert.ErrorIs(t, err, ErrConflict)

	same, err := s.Update(first.ID, &dto.AssetRequest{Patrimonio: "1001", Category: category.ID})
	require.NoError(t, err)
	assert.Equal(t, "1001", same.Patrimonio)
}

func TestAssetPatch(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	monitors, fields := env.createCategory(t, editor, "Monitores", monitorFields()...)
	chairs, _ := env.createCategory(t, editor, "Cadeiras")

	created, err := s.Create(editor, &dto.AssetRequest{
		Patrimonio:  "1001",
		Category:    monitors.ID,
		FieldValues: []dto.FieldValueInput{{FieldDefinition: fields[0].ID, Value: "Dell"}},
	})
	require.NoError(t, err)

	status := "manutencao"
	patched, err := s.Patch(created.ID, &dto.AssetPatchRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "manutencao", patched.Status)
	assert.Len(t, patched.FieldValues, 1, "values are kept when field_values is absent")

	moved, err := s.Patch(created.ID, &dto.AssetPatchRequest{Category: &chairs.ID})
	require.NoError(t, err)
	assert.Equal(t, chairs.ID, moved.Category)
	assert.Empty(t, moved.FieldValues)

	_, err = s.Patch(9999, &dto.AssetPatchRequest{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssetListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	monitors, _ := env.createCategory(t, editor, "Monitores")
	chairs, _ := env.createCategory(t, editor, "Cadeiras")

	a, err := s.Create(editor, &dto.AssetRequest{Patrimonio: "1", Category: monitors.ID})
	require.NoError(t, err)
	_, err = s.Create(editor, &dto.AssetRequest{Patrimonio: "2", Category: chairs.ID, Status: "inativo"})
	require.NoError(t, err)

	items, total, err := s.List(dto.AssetFilter{CategoryID: monitors.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "1", items[0].Patrimonio)

	items, total, err = s.List(dto.AssetFilter{Status: "inativo"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Inativo/Descartado", items[0].StatusLabel)

	require.NoError(t, s.Delete(a.ID))
	assert.ErrorIs(t, s.Delete(a.ID), ErrNotFound)
}

func TestAssetUpdateKeepsStatusWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	s := env.assetService()
	editor := env.createUser(t, "editor", models.RoleEditor)
	category, _ := env.createCategory(t, editor, "Monitores")

	created, err := s.Create(editor, &dto.AssetRequest{Patrimonio: "1", Category: category.ID, Status: "manutencao"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, &dto.AssetRequest{Patrimonio: "1-renamed", Category: category.ID})
	require.NoError(t, err)
	assert.Equal(t, "1-renamed", updated.Patrimonio)
	assert.Equal(t, "manutencao", updated.Status)

	stored, err := env.assets.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusMaintenance, stored.Status)

	_, err = s.Update(created.ID, &dto.AssetRequest{Patrimonio: "1-renamed", Category: category.ID, Status: "quebrado"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
