package models

import (
	"time"

	"gorm.io/gorm"
)

// Role capability tier of a user. Tiers are strictly ordered.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants every capability of min
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && roleRank[r] >= roleRank[min]
}

// Label human readable role name
func (r Role) Label() string {
	switch r {
	case RoleViewer:
		return "Visualizador"
	case RoleEditor:
		return "Editor"
	case RoleAdmin:
		return "Administrador"
	}
	return string(r)
}

// User account
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// associations
	Profile    Profile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
	Categories []Category `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Assets     []Asset    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name
func (User) TableName() string {
	return "users"
}

// AfterCreate gives every new user a profile. A profile supplied with the user
// is saved by gorm's association handling before this hook runs.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if u.Profile.ID != 0 {
		return nil
	}

	profile := Profile{UserID: u.ID, Role: RoleViewer}
	if err := tx.Create(&profile).Error; err != nil {
		return err
	}
	u.Profile = profile
	return nil
}

// Profile role and password recovery data of a user
type Profile struct {
	ID             uint    `gorm:"primarykey" json:"-"`
	UserID         uint    `gorm:"uniqueIndex;not null" json:"-"`
	Role           Role    `gorm:"size:20;not null;default:viewer" json:"role"`
	SecretQuestion *string `gorm:"size:255" json:"secret_question"`
	SecretAnswer   *string `gorm:"size:128" json:"-"`
}

// TableName table name
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate defaults the role to viewer
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.Role == "" {
		p.Role = RoleViewer
	}
	return nil
}

// HasSecretQuestion reports whether password recovery is configured
func (p *Profile) HasSecretQuestion() bool {
	return p.SecretQuestion != nil && *p.SecretQuestion != ""
}
