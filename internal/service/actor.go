package service

import "patrimonio-go/internal/models"

// Actor the authenticated user performing a request
type Actor struct {
	UserID   uint
	Username string
	Role     models.Role
}

// IsAdmin reports whether the actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
