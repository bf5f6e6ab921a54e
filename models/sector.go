package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sector is one industrial sector with the component labels tested for it.
// The two label sequences are display-ordered; duplicates are allowed.
type Sector struct {
	ID                       uuid.UUID                   `gorm:"type:uuid;primaryKey"                       json:"id"`
	SectorName               string                      `gorm:"column:sector_name;not null"                json:"sectorName"`
	TollCollectionWastewater datatypes.JSONSlice[string] `gorm:"column:toll_collection_wastewater;type:jsonb" json:"tollCollectionWastewater"`
	ChargeFeeBackgroundInfo  datatypes.JSONSlice[string] `gorm:"column:charge_fee_background_info;type:jsonb" json:"chargeFeeBackgroundInfo"`
	Description              string                      `gorm:"column:description;default:''"              json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Sector) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
