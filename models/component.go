package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestedComponent is one chemical component with its toll value.
type TestedComponent struct {
	ComponentName string  `json:"componentName"`
	Value         float64 `json:"value"`
	IsPaid        bool    `json:"isPaid"`
}

// TestedComponentSet groups the components tested for one sector.
// SectorName is a denormalized label, not a reference to a Sector row; the
// original system stored it that way and the API shape keeps parity.
type TestedComponentSet struct {
	ID         uuid.UUID                            `gorm:"type:uuid;primaryKey"        json:"id"`
	SectorName string                               `gorm:"column:sector_name;not null" json:"sectorName"`
	Components datatypes.JSONSlice[TestedComponent] `gorm:"column:components;type:jsonb" json:"components"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TestedComponentSet) TableName() string { return "tested_components" }

func (t *TestedComponentSet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
