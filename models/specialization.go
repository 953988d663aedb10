package models

import (
	"time"
)

// Specialization is a catalog entry for a medical discipline (cardiology, neurology...)
type Specialization struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpecializationCreate model for adding a specialization
type SpecializationCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (Specialization) TableName() string {
	return "specializations"
}
