package models

import (
	"time"
)

// PatientProfile carries the medical details a patient fills in once.
type PatientProfile struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string    `json:"userId" gorm:"column:user_id;type:uuid;uniqueIndex;not null"`
	BloodType        string    `json:"bloodType"`
	EmergencyContact string    `json:"emergencyContact"`
	InsuranceInfo    string    `json:"insuranceInfo"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
