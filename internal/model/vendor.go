package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a registered vendor. Email is the natural key: two
// records sharing an email are the same vendor. Image holds the stored
// file path once the upload is persisted, or nil when the write failed.
type Vendor struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Email       *string   `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Image       *string   `json:"image,omitempty" gorm:"size:512"`
	Website     *string   `json:"website,omitempty" gorm:"size:512"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Status      bool      `json:"status" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
