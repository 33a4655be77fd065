package repository

import (
	"patrimonio-go/internal/models"

	"gorm.io/gorm"
)

// UserRepository user and profile data access
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user; its profile is created alongside
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID loads a user with its profile
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername loads a user with its profile
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether the username is taken, ignoring excludeID
func (r *UserRepository) ExistsByUsername(username string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// GetAdmin returns any administrator
func (r *UserRepository) GetAdmin() (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.role = ?", models.RoleAdmin).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns a page of users ordered by id
func (r *UserRepository) List(offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Profile").Order("id ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// UpdateUsername changes the username
func (r *UserRepository) UpdateUsername(id uint, username string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("username", username).Error
}

// UpdatePassword stores a new password hash
func (r *UserRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}

// UpdateRole changes the role stored in the user's profile
func (r *UserRepository) UpdateRole(userID uint, role models.Role) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("role", role).Error
}

// UpdateSecret stores the secret question and hashed answer
func (r *UserRepository) UpdateSecret(userID uint, question string, answerHash string) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"secret_question": question,
		"secret_answer":   answerHash,
	}).Error
}

// UpdateSecretQuestion changes only the secret question
func (r *UserRepository) UpdateSecretQuestion(userID uint, question string) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("secret_question", question).Error
}

// Delete removes a user with its profile and everything it owns
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&models.Category{}).Select("id").Where("owner_id = ?", id)
		if err := deleteCategories(tx, categoryIDs); err != nil {
			return err
		}

		assetIDs := tx.Model(&models.Asset{}).Select("id").Where("owner_id = ?", id)
		if err := deleteAssets(tx, assetIDs); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
