package service

import (
	"fmt"
	"strings"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/utils"

	"github.com/sirupsen/logrus"
)

// UserService user administration
type UserService struct {
	userRepo *repository.UserRepository
	logger   *logrus.Logger
}

// NewUserService creates the user service
func NewUserService(userRepo *repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// List returns a page of users
func (s *UserService) List(page dto.Pagination) ([]dto.AdminUserInfo, int64, error) {
	page.Normalize()

	users, total, err := s.userRepo.List(page.Offset(), page.PerPage)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.AdminUserInfo, len(users))
	for i := range users {
		items[i] = dto.NewAdminUserInfo(&users[i])
	}
	return items, total, nil
}

// Get returns one user
func (s *UserService) Get(id uint) (*dto.AdminUserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	info := dto.NewAdminUserInfo(user)
	return &info, nil
}

// Update changes username and password recovery data. A new secret answer
// needs a question, either sent along or already stored.
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) (*dto.AdminUserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.ExistsByUsername(*req.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("username %w", ErrConflict)
		}
		if err := s.userRepo.UpdateUsername(user.ID, *req.Username); err != nil {
			return nil, err
		}
	}

	question := ""
	if req.SecretQuestion != nil {
		question = strings.TrimSpace(*req.SecretQuestion)
	}

	switch {
	case req.SecretAnswer != nil && *req.SecretAnswer != "":
		if question == "" && user.Profile.HasSecretQuestion() {
			question = *user.Profile.SecretQuestion
		}
		if question == "" {
			return nil, invalid("secret_question is required to set a secret answer")
		}
		answerHash, err := utils.HashPassword(*req.SecretAnswer)
		if err != nil {
			return nil, fmt.Errorf("hash secret answer: %w", err)
		}
		if err := s.userRepo.UpdateSecret(user.ID, question, answerHash); err != nil {
			return nil, err
		}
	case question != "":
		if err := s.userRepo.UpdateSecretQuestion(user.ID, question); err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete removes a user. Administrators cannot delete their own account.
func (s *UserService) Delete(actor Actor, id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return notFound(err, "user")
	}

	if user.ID == actor.UserID {
		return fmt.Errorf("%w: you cannot delete your own account", ErrForbidden)
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"actor_id": actor.UserID,
	}).Info("user deleted")
	return nil
}

// UpdateRole changes the role of another user
func (s *UserService) UpdateRole(actor Actor, id uint, role string) (*dto.AdminUserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}

	if user.ID == actor.UserID {
		return nil, fmt.Errorf("%w: you cannot change your own role", ErrForbidden)
	}

	newRole := models.Role(role)
	if !newRole.Valid() {
		return nil, invalid("role must be viewer, editor or admin")
	}

	if err := s.userRepo.UpdateRole(user.ID, newRole); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"from":     user.Profile.Role,
		"to":       newRole,
		"actor_id": actor.UserID,
	}).Info("user role changed")

	return s.Get(id)
}
