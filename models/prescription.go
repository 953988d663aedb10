package models

import (
	"time"
)

// Prescription belongs to a medical record.
type Prescription struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MedicalRecordID string    `json:"medicalRecordId" gorm:"column:medical_record_id;type:uuid;not null"`
	Medication      string    `json:"medication" gorm:"not null"`
	Dosage          string    `json:"dosage" gorm:"not null"`
	Instructions    string    `json:"instructions"`
	StartDate       time.Time `json:"startDate" gorm:"not null"`
	EndDate         time.Time `json:"endDate" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PrescriptionCreate model for one prescription line inside a medical record
type PrescriptionCreate struct {
	Medication   string    `json:"medication" binding:"required"`
	Dosage       string    `json:"dosage" binding:"required"`
	Instructions string    `json:"instructions"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
