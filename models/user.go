package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"              json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null"     json:"username"`
	PasswordHash string    `gorm:"size:255;not null"                 json:"-"`
	Role         string    `gorm:"size:50;not null;default:'user'"   json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
