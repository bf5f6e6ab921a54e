package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Council types
const (
	CouncilTypeCorporation = "corporation"
	CouncilTypeCouncil     = "council"
)

// Word-document upload fields on a council record. The multipart form uses
// these exact names, and they are the only file fields the API accepts.
var CouncilFileFields = []string{
	"wordfilenoticeletter",
	"wordfileboth",
	"wordfileunusualwastewater",
	"wordfileforbiddenwastewater",
	"wordfilepaymentletter",
}

// CouncilOrCompany is a regulatory council or corporation. The five word-file
// columns hold server-relative filenames of uploaded letter templates.
type CouncilOrCompany struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"           json:"id"`
	Type              string    `gorm:"column:type;not null"           json:"type"`
	Name              string    `gorm:"column:name;not null"           json:"name"`
	Signature         string    `gorm:"column:signature"               json:"signature"`
	Copies            string    `gorm:"column:copies"                  json:"copies"`
	YearsOfMonitoring string    `gorm:"column:years_of_monitoring"     json:"yearsofmonitoring"`
	LabName           string    `gorm:"column:lab_name"                json:"labName"`

	WordFileNoticeLetter        string `gorm:"column:word_file_notice_letter"        json:"wordfilenoticeletter"`
	WordFileBoth                string `gorm:"column:word_file_both"                 json:"wordfileboth"`
	WordFileUnusualWastewater   string `gorm:"column:word_file_unusual_wastewater"   json:"wordfileunusualwastewater"`
	WordFileForbiddenWastewater string `gorm:"column:word_file_forbidden_wastewater" json:"wordfileforbiddenwastewater"`
	WordFilePaymentLetter       string `gorm:"column:word_file_payment_letter"       json:"wordfilepaymentletter"`

	// Treatment-plant names. Replaced wholesale on every update.
	Mts datatypes.JSONSlice[string] `gorm:"column:mts;type:jsonb" json:"mts"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CouncilOrCompany) TableName() string { return "councils_and_companies" }

func (c *CouncilOrCompany) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// SetFile records an uploaded filename on the matching file field.
// Unknown field names are ignored.
func (c *CouncilOrCompany) SetFile(field, filename string) {
	switch field {
	case "wordfilenoticeletter":
		c.WordFileNoticeLetter = filename
	case "wordfileboth":
		c.WordFileBoth = filename
	case "wordfileunusualwastewater":
		c.WordFileUnusualWastewater = filename
	case "wordfileforbiddenwastewater":
		c.WordFileForbiddenWastewater = filename
	case "wordfilepaymentletter":
		c.WordFilePaymentLetter = filename
	}
}
