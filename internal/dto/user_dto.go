package dto

import "patrimonio-go/internal/models"

// UserInfo public user representation
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AdminUserInfo user representation for administrators
type AdminUserInfo struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	RoleLabel      string `json:"role_label"`
	SecretQuestion string `json:"secret_question"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

// UpdateUserRequest admin update of a user. Role is changed through UpdateRoleRequest.
type UpdateUserRequest struct {
	Username       *string `json:"username" binding:"omitempty,username"`
	SecretQuestion *string `json:"secret_question" binding:"omitempty,max=255"`
	SecretAnswer   *string `json:"secret_answer" binding:"omitempty,max=72"`
}

// UpdateRoleRequest role change
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// NewUserInfo builds a UserInfo from a user with its profile loaded
func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Profile.Role),
	}
}

// NewAdminUserInfo builds an AdminUserInfo from a user with its profile loaded
func NewAdminUserInfo(u *models.User) AdminUserInfo {
	info := AdminUserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Profile.Role),
		RoleLabel: u.Profile.Role.Label(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
	}
	if u.Profile.SecretQuestion != nil {
		info.SecretQuestion = *u.Profile.SecretQuestion
	}
	return info
}
