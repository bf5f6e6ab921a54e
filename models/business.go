package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business is an individual monitored business. InstitutionID and SectorID are
// weak references: deleting the referenced row leaves them dangling, and reads
// resolve a dangling reference to an absent summary rather than an error.
type Business struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"            json:"id"`
	BusinessName   string     `gorm:"column:business_name;not null"   json:"businessName"`
	Phone          string     `gorm:"column:phone"                    json:"phone"`
	WorkNumber     string     `gorm:"column:work_number"              json:"workNumber"`
	SenderTo       string     `gorm:"column:sender_to"                json:"senderTo"`
	PayerNumber    string     `gorm:"column:payer_number"             json:"payerNumber"`
	Email          string     `gorm:"column:email"                    json:"email"`
	FactoryAddress string     `gorm:"column:factory_address"          json:"factoryAddress"`
	InstitutionID  *uuid.UUID `gorm:"column:institution_id;type:uuid" json:"-"`
	SectorID       *uuid.UUID `gorm:"column:sector_id;type:uuid"      json:"-"`

	Institution *CouncilOrCompany `gorm:"foreignKey:InstitutionID" json:"-"`
	Sector      *Sector           `gorm:"foreignKey:SectorID"      json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// CouncilSummary is the joined council shape embedded in business reads.
type CouncilSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// SectorSummary is the joined sector shape embedded in business reads.
type SectorSummary struct {
	ID         uuid.UUID `json:"id"`
	SectorName string    `json:"sectorName"`
}

// BusinessView is the read representation of a business with its references
// resolved. A null summary means the reference is absent or dangling.
type BusinessView struct {
	Business
	InstitutionID *CouncilSummary `json:"institutionId"`
	SectorID      *SectorSummary  `json:"sectorId"`
}

// Resolve builds the read view from a business with preloaded relations.
func (b Business) Resolve() BusinessView {
	view := BusinessView{Business: b}
	if b.Institution != nil {
		view.InstitutionID = &CouncilSummary{
			ID:   b.Institution.ID,
			Name: b.Institution.Name,
			Type: b.Institution.Type,
		}
	}
	if b.Sector != nil {
		view.SectorID = &SectorSummary{
			ID:         b.Sector.ID,
			SectorName: b.Sector.SectorName,
		}
	}
	return view
}
