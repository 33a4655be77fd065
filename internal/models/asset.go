package models

import (
	"time"
)

// AssetStatus lifecycle status of an asset
type AssetStatus string

const (
	StatusAvailable   AssetStatus = "disponivel"
	StatusInUse       AssetStatus = "em_uso"
	StatusMaintenance AssetStatus = "manutencao"
	StatusRetired     AssetStatus = "inativo"
)

// Valid reports whether s is a known status
func (s AssetStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

// Label human readable status name
func (s AssetStatus) Label() string {
	switch s {
	case StatusAvailable:
		return "Disponível"
	case StatusInUse:
		return "Em Uso"
	case StatusMaintenance:
		return "Em Manutenção"
	case StatusRetired:
		return "Inativo/Descartado"
	}
	return string(s)
}

// Asset inventory item identified by its patrimonio tag
type Asset struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	Patrimonio string      `gorm:"uniqueIndex;size:100;not null" json:"patrimonio"`
	CategoryID uint        `gorm:"index;not null" json:"category"`
	OwnerID    uint        `gorm:"index;not null" json:"owner"`
	Status     AssetStatus `gorm:"size:20;not null;default:disponivel" json:"status"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// associations
	Category    *Category         `gorm:"foreignKey:CategoryID" json:"-"`
	Owner       *User             `gorm:"foreignKey:OwnerID" json:"-"`
	FieldValues []AssetFieldValue `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"field_values"`
}

// TableName table name
func (Asset) TableName() string {
	return "assets"
}

// AssetFieldValue value of one custom field for one asset
type AssetFieldValue struct {
	ID                uint   `gorm:"primarykey" json:"-"`
	AssetID           uint   `gorm:"index;not null" json:"-"`
	FieldDefinitionID uint   `gorm:"index;not null" json:"field_definition"`
	Value             string `gorm:"type:text;not null" json:"value"`

	FieldDefinition *FieldDefinition `gorm:"foreignKey:FieldDefinitionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name
func (AssetFieldValue) TableName() string {
	return "asset_field_values"
}
