package models

import (
	"time"
)

// AIAnalysis stores a symptom triage summary generated for a patient. It is
// read-only for doctors on their dashboard.
type AIAnalysis struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PatientID            string    `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	Symptoms             string    `json:"symptoms" gorm:"not null"`
	SeverityScore        int       `json:"severityScore" gorm:"not null"`
	DiseaseSummary       string    `json:"diseaseSummary" gorm:"not null"`
	SuggestedMedications string    `json:"suggestedMedications" gorm:"not null"`
	AdditionalNotes      string    `json:"additionalNotes"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (AIAnalysis) TableName() string {
	return "ai_analyses"
}
