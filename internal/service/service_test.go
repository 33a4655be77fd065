package service

import (
	"context"
	"io"
	"testing"
	"time"

	"patrimonio-go/internal/config"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	logger     *logrus.Logger
	jwt        *utils.JWTManager
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	fields     *repository.FieldDefinitionRepository
	assets     *repository.AssetRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := models.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, true)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Admin: config.AdminConfig{Username: "admin", Password: "admin123"},
	}

	return &testEnv{
		db:         db,
		cfg:        cfg,
		logger:     logger,
		jwt:        utils.NewJWTManager("test-secret", "HS256", 15*time.Minute, time.Hour),
		users:      repository.NewUserRepository(db),
		categories: repository.NewCategoryRepository(db),
		fields:     repository.NewFieldDefinitionRepository(db),
		assets:     repository.NewAssetRepository(db),
	}
}

func (e *testEnv) authService() *AuthService {
	return NewAuthService(e.users, e.jwt, e.cfg, e.logger)
}

func (e *testEnv) assetService() *AssetService {
	return NewAssetService(e.assets, e.categories, e.fields)
}

func (e *testEnv) fieldService() *FieldDefinitionService {
	return NewFieldDefinitionService(e.fields, e.categories)
}

// createUser stores a user with the given role and returns it as an actor
func (e *testEnv) createUser(t *testing.T, username string, role models.Role) Actor {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		IsActive:     true,
		Profile:      models.Profile{Role: role},
	}
	require.NoError(t, e.users.Create(user))
	return Actor{UserID: user.ID, Username: username, Role: role}
}

func (e *testEnv) createCategory(t *testing.T, owner Actor, name string, fields ...models.FieldDefinition) (*models.Category, []models.FieldDefinition) {
	t.Helper()
	category := &models.Category{Name: name, OwnerID: owner.UserID}
	require.NoError(t, e.categories.Create(category))
	for i := range fields {
		fields[i].CategoryID = category.ID
		require.NoError(t, e.fields.Create(&fields[i]))
	}
	return category, fields
}

// fakeLimiter allows a fixed number of attempts
type fakeLimiter struct {
	limit  int
	counts map[string]int
	resets int
}

func newFakeLimiter(limit int) *fakeLimiter {
	return &fakeLimiter{limit: limit, counts: make(map[string]int)}
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.counts[key]++
	return l.counts[key] <= l.limit, nil
}

func (l *fakeLimiter) Reset(_ context.Context, key string) error {
	delete(l.counts, key)
	l.resets++
	return nil
}

// memoryBlacklist in-process TokenBlacklist
type memoryBlacklist map[string]bool

func (b memoryBlacklist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	b[jti] = true
	return nil
}

func (b memoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return b[jti], nil
}
