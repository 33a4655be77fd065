package repository

import (
	"context"
	"testing"
	"time"

	"patrimonio-go/internal/config"
	"patrimonio-go/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := models.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, true)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

type fixture struct {
	user     *models.User
	category *models.Category
	fields   []models.FieldDefinition
	asset    *models.Asset
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	users := NewUserRepository(db)
	categories := NewCategoryRepository(db)
	fieldsRepo := NewFieldDefinitionRepository(db)
	assets := NewAssetRepository(db)

	user := &models.User{Username: "maria", PasswordHash: "x"}
	require.NoError(t, users.Create(user))

	category := &models.Category{Name: "Monitores", OwnerID: user.ID}
	require.NoError(t, categories.Create(category))

	fields := []models.FieldDefinition{
		{CategoryID: category.ID, Name: "Marca", FieldType: models.FieldTypeText},
		{CategoryID: category.ID, Name: "Polegadas", FieldType: models.FieldTypeNumber},
	}
	for i := range fields {
		require.NoError(t, fieldsRepo.Create(&fields[i]))
	}

	asset := &models.Asset{
		Patrimonio: "1001",
		CategoryID: category.ID,
		OwnerID:    user.ID,
		Status:     models.StatusAvailable,
		FieldValues: []models.AssetFieldValue{
			{FieldDefinitionID: fields[0].ID, Value: "Dell"},
			{FieldDefinitionID: fields[1].ID, Value: "24"},
		},
	}
	require.NoError(t, assets.Create(asset))

	return fixture{user: user, category: category, fields: fields, asset: asset}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestAssetUpdateReplacesFieldValues(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	assets := NewAssetRepository(db)

	f.asset.Status = models.StatusInUse
	err := assets.Update(f.asset, []models.AssetFieldValue{
		{FieldDefinitionID: f.fields[1].ID, Value: "27"},
	})
	require.NoError(t, err)

	got, err := assets.GetByID(f.asset.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInUse, got.Status)
	require.Len(t, got.FieldValues, 1)
	assert.Equal(t, f.fields[1].ID, got.FieldValues[0].FieldDefinitionID)
	assert.Equal(t, "27", got.FieldValues[0].Value)
	assert.Equal(t, int64(1), count(t, db, &models.AssetFieldValue{}))
}

func TestAssetUpdateNilValuesKeepsThem(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	assets := NewAssetRepository(db)

	f.asset.Patrimonio = "1002"
	require.NoError(t, assets.Update(f.asset, nil))

	got, err := assets.GetByID(f.asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "1002", got.Patrimonio)
	assert.Len(t, got.FieldValues, 2)
}

func TestAssetUpdateEmptyValuesClearsThem(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	assets := NewAssetRepository(db)

	require.NoError(t, assets.Update(f.asset, []models.AssetFieldValue{}))

	got, err := assets.GetByID(f.asset.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FieldValues)
}

func TestAssetListFilters(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	assets := NewAssetRepository(db)
	categories := NewCategoryRepository(db)

	other := &models.Category{Name: "Cadeiras", OwnerID: f.user.ID}
	require.NoError(t, categories.Create(other))
	require.NoError(t, assets.Create(&models.Asset{
		Patrimonio: "2001", CategoryID: other.ID, OwnerID: f.user.ID, Status: models.StatusMaintenance,
	}))

	all, total, err := assets.List(AssetFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	byCategory, total, err := assets.List(AssetFilter{CategoryID: f.category.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "1001", byCategory[0].Patrimonio)
	assert.Len(t, byCategory[0].FieldValues, 2)

	byStatus, total, err := assets.List(AssetFilter{Status: models.StatusMaintenance}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "2001", byStatus[0].Patrimonio)
}

func TestCategoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	require.NoError(t, NewCategoryRepository(db).Delete(f.category.ID))

	assert.Zero(t, count(t, db, &models.Category{}))
	assert.Zero(t, count(t, db, &models.FieldDefinition{}))
	assert.Zero(t, count(t, db, &models.Asset{}))
	assert.Zero(t, count(t, db, &models.AssetFieldValue{}))
	assert.Equal(t, int64(1), count(t, db, &models.User{}))
}

func TestFieldDefinitionDeleteRemovesValues(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	require.NoError(t, NewFieldDefinitionRepository(db).Delete(f.fields[0].ID))

	got, err := NewAssetRepository(db).GetByID(f.asset.ID)
	require.NoError(t, err)
	require.Len(t, got.FieldValues, 1)
	assert.Equal(t, f.fields[1].ID, got.FieldValues[0].FieldDefinitionID)
}

func TestAssetDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	require.NoError(t, NewAssetRepository(db).Delete(f.asset.ID))

	assert.Zero(t, count(t, db, &models.Asset{}))
	assert.Zero(t, count(t, db, &models.AssetFieldValue{}))
	assert.Equal(t, int64(2), count(t, db, &models.FieldDefinition{}))
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	require.NoError(t, NewUserRepository(db).Delete(f.user.ID))

	assert.Zero(t, count(t, db, &models.User{}))
	assert.Zero(t, count(t, db, &models.Profile{}))
	assert.Zero(t, count(t, db, &models.Category{}))
	assert.Zero(t, count(t, db, &models.Asset{}))
	assert.Zero(t, count(t, db, &models.AssetFieldValue{}))
}

func TestUserRepositoryProfileUpdates(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	user := &models.User{Username: "joao", PasswordHash: "x"}
	require.NoError(t, users.Create(user))

	_, err := users.GetAdmin()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, users.UpdateRole(user.ID, models.RoleAdmin))
	require.NoError(t, users.UpdateSecret(user.ID, "Cor favorita?", "hash"))

	admin, err := users.GetAdmin()
	require.NoError(t, err)
	assert.Equal(t, user.ID, admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Profile.Role)
	require.NotNil(t, admin.Profile.SecretQuestion)
	assert.Equal(t, "Cor favorita?", *admin.Profile.SecretQuestion)

	taken, err := users.ExistsByUsername("joao", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = users.ExistsByUsername("joao", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestTokenBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewTokenBlacklistRepository(client)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
