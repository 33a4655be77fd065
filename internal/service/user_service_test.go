package service

import (
	"testing"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDeleteSelfForbidden(t *testing.T) {
	env := newTestEnv(t)
	s := NewUserService(env.users, env.logger)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	other := env.createUser(t, "joao", models.RoleViewer)

	assert.ErrorIs(t, s.Delete(admin, admin.UserID), ErrForbidden)
	assert.ErrorIs(t, s.Delete(admin, 9999), ErrNotFound)

	require.NoError(t, s.Delete(admin, other.UserID))
	_, err := s.Get(other.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateRole(t *testing.T) {
	env := newTestEnv(t)
	s := NewUserService(env.users, env.logger)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	other := env.createUser(t, "joao", models.RoleViewer)

	_, err := s.UpdateRole(admin, 9999, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateRole(admin, admin.UserID, "bogus")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.UpdateRole(admin, other.UserID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)

	info, err := s.UpdateRole(admin, other.UserID, "editor")
	require.NoError(t, err)
	assert.Equal(t, "editor", info.Role)
	assert.Equal(t, "Editor", info.RoleLabel)
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	s := NewUserService(env.users, env.logger)
	env.createUser(t, "maria", models.RoleViewer)
	other := env.createUser(t, "joao", models.RoleViewer)

	taken := "maria"
	_, err := s.Update(other.UserID, &dto.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrConflict)

	name := "joao.silva"
	question := "Cidade natal?"
	info, err := s.Update(other.UserID, &dto.UpdateUserRequest{Username: &name, SecretQuestion: &question})
	require.NoError(t, err)
	assert.Equal(t, "joao.silva", info.Username)
	assert.Equal(t, "Cidade natal?", info.SecretQuestion)
}

func TestUserList(t *testing.T) {
	env := newTestEnv(t)
	s := NewUserService(env.users, env.logger)
	env.createUser(t, "a1", models.RoleViewer)
	env.createUser(t, "a2", models.RoleViewer)
	env.createUser(t, "a3", models.RoleViewer)

	page, total, err := s.List(dto.Pagination{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)
}

func TestUserUpdateSecretAnswer(t *testing.T) {
	env := newTestEnv(t)
	s := NewUserService(env.users, env.logger)
	auth := env.authService()
	user := register(t, auth, "maria")
	bare := env.createUser(t, "joao", models.RoleViewer)

	answer := "bolt"
	_, err := s.Update(user.ID, &dto.UpdateUserRequest{SecretAnswer: &answer})
	require.NoError(t, err)

	stored, err := env.users.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nome do primeiro pet?", *stored.Profile.SecretQuestion, "existing question is kept")
	assert.NoError(t, utils.CheckPassword("bolt", *stored.Profile.SecretAnswer))

	_, err = s.Update(bare.UserID, &dto.UpdateUserRequest{SecretAnswer: &answer})
	assert.ErrorIs(t, err, ErrInvalidInput)

	question := "Cor favorita?"
	info, err := s.Update(bare.UserID, &dto.UpdateUserRequest{SecretQuestion: &question, SecretAnswer: &answer})
	require.NoError(t, err)
	assert.Equal(t, "Cor favorita?", info.SecretQuestion)

	q, err := auth.GetSecretQuestion("joao")
	require.NoError(t, err)
	assert.Equal(t, "Cor favorita?", q)
}
