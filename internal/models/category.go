package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldType storage type of a custom attribute
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
)

// DateLayout layout accepted for date field values
const DateLayout = "2006-01-02"

// decimalPattern plain decimal numbers, comma or dot separator
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)$`)

// Valid reports whether t is a known field type
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate:
		return true
	}
	return false
}

// Label human readable type name
func (t FieldType) Label() string {
	switch t {
	case FieldTypeText:
		return "Texto"
	case FieldTypeNumber:
		return "Número"
	case FieldTypeDate:
		return "Data"
	}
	return string(t)
}

// CheckValue validates a stored text value against the field type.
// Empty values are accepted for every type.
func (t FieldType) CheckValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	switch t {
	case FieldTypeNumber:
		if !decimalPattern.MatchString(value) {
			return fmt.Errorf("%q is not a number", value)
		}
	case FieldTypeDate:
		if _, err := time.Parse(DateLayout, value); err != nil {
			return fmt.Errorf("%q is not a date (YYYY-MM-DD)", value)
		}
	}
	return nil
}

// Category named grouping of assets that declares their custom fields
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	OwnerID   uint      `gorm:"index;not null" json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// associations
	Owner            *User             `gorm:"foreignKey:OwnerID" json:"-"`
	FieldDefinitions []FieldDefinition `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"field_definitions"`
	Assets           []Asset           `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name
func (Category) TableName() string {
	return "categories"
}

// FieldDefinition custom attribute declared by a category
type FieldDefinition struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CategoryID uint      `gorm:"index;not null" json:"category"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	FieldType  FieldType `gorm:"size:20;not null;default:text" json:"field_type"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName table name
func (FieldDefinition) TableName() string {
	return "field_definitions"
}
